package backend

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"

	serrors "github.com/asokolsky/secretsettings/pkg/errors"
)

// FileBackend holds the resolved location of a local settings file. It is the
// shared base of INIBackend and YAMLBackend.
type FileBackend struct {
	path string
	log  Logger
}

// NewFileBackend locates name and, if requested, checks its permissions.
func NewFileBackend(name string, opts ...Option) (*FileBackend, error) {
	o := newOptions(opts)

	path, err := Locate(name)
	if err != nil {
		return nil, err
	}
	o.log.Debugf("Located settings file %s as %s", name, path)

	if o.checkPermissions {
		if err := CheckPermissions(path); err != nil {
			return nil, err
		}
		o.log.Debugf("Permissions of %s are restricted to the owner", path)
	}

	return &FileBackend{path: path, log: o.log}, nil
}

// Path returns the absolute path of the settings file.
func (b *FileBackend) Path() string {
	return b.path
}

func (b *FileBackend) read() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, serrors.Wrap(serrors.KindParse, err, "Failed to parse '%s': %v", b.path, err)
	}
	return data, nil
}

// Locate resolves name to the absolute path of an existing regular file.
// Names starting with `~` are home relative; names starting with `/`, `./` or
// `..` are used as given; any other name is searched in the current directory
// and then in the home directory.
func Locate(name string) (string, error) {
	for _, candidate := range candidates(name) {
		if isFile(candidate) {
			if abs, err := filepath.Abs(candidate); err == nil {
				return abs, nil
			}
		}
	}
	return "", serrors.New(serrors.KindNotFound, "Failed to find '%s'", name)
}

func candidates(name string) []string {
	switch {
	case strings.HasPrefix(name, "~"):
		expanded, err := homedir.Expand(name)
		if err != nil {
			// ~user forms are not supported.
			return nil
		}
		return []string{expanded}

	case strings.HasPrefix(name, "/"), strings.HasPrefix(name, "./"), strings.HasPrefix(name, ".."):
		return []string{name}
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(wd, name))
	}
	if home, err := homedir.Dir(); err == nil {
		dirs = append(dirs, filepath.Join(home, name))
	}
	return dirs
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CheckPermissions fails if path is readable by group or others. Windows does
// not expose POSIX mode bits, so the check always passes there.
func CheckPermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return serrors.Wrap(serrors.KindPermission, err, "Failed to stat '%s': %v", path, err)
	}
	if info.Mode().Perm()&0o044 != 0 {
		return serrors.New(serrors.KindPermission, "'%s' is readable by group or others", path)
	}
	return nil
}
