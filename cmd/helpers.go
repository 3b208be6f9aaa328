package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/asokolsky/secretsettings/internal/configs"
	cerrors "github.com/asokolsky/secretsettings/internal/errors"
	"github.com/asokolsky/secretsettings/internal/ui"
	"github.com/asokolsky/secretsettings/internal/utils"
	"github.com/asokolsky/secretsettings/pkg/backend"
	"github.com/asokolsky/secretsettings/pkg/settings"
)

// Flags shared by every command that reads a settings file or a key.
var (
	settingsFile     string
	checkPermissions bool
	keyPrompt        bool
	keyRealm         string
	keyName          string
)

const defaultKeyName = "key"

func resetSettingsFlags() {
	settingsFile = ""
	checkPermissions = false
	keyPrompt = false
	keyRealm = ""
	keyName = defaultKeyName
}

// addSettingsFlags registers --file and --check-permissions on cmd.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&settingsFile, "file", "f", "", "settings file (default from config, else secrets.ini)")
	cmd.Flags().BoolVar(&checkPermissions, "check-permissions", false, "reject settings files readable by group or others")
}

// addKeyFlags registers the flags that select where the key comes from. When
// prompt is false the key is always required and --key is not offered.
func addKeyFlags(cmd *cobra.Command, prompt bool) {
	if prompt {
		cmd.Flags().BoolVarP(&keyPrompt, "key", "k", false, "decrypt, reading the key from the terminal or stdin")
	}
	cmd.Flags().StringVar(&keyRealm, "key-realm", "", "read the key from this realm of the settings file")
	cmd.Flags().StringVar(&keyName, "key-name", defaultKeyName, "name of the key entry in --key-realm")
}

func effectiveFile(cmd *cobra.Command) string {
	if cmd.Flags().Changed("file") || Config == nil {
		if settingsFile == "" {
			return backend.DefaultINIFile
		}
		return settingsFile
	}
	if Config.Defaults.File == "" {
		return backend.DefaultINIFile
	}
	return Config.Defaults.File
}

func effectiveCheckPermissions(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("check-permissions") || Config == nil {
		return checkPermissions
	}
	return Config.Defaults.CheckPermissions
}

func effectiveRealm(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("realm") || Config == nil {
		return flagValue
	}
	return Config.Defaults.Realm
}

func effectiveOutput(cmd *cobra.Command, flagValue string) (string, error) {
	output := flagValue
	if !cmd.Flags().Changed("output") && Config != nil {
		output = Config.Defaults.Output
	}
	switch output {
	case configs.OutputYAML, configs.OutputJSON:
		return output, nil
	}
	return "", fmt.Errorf("%w: %q", cerrors.ErrInvalidOutput, output)
}

// openSettings detects the backend for the settings file selected by flags
// and config.
func openSettings(cmd *cobra.Command) (*settings.Settings, error) {
	file := effectiveFile(cmd)
	check := effectiveCheckPermissions(cmd)
	Logger.Infof("Opening settings file %s", file)
	Logger.Debugf("Permission check enabled: %t", check)

	return settings.NewFromPath(file,
		backend.WithCheckPermissions(check),
		backend.WithLogger(Logger),
	)
}

// resolveKey returns the decryption key selected by the key flags, or nil
// when no decryption was asked for. A required key falls back to reading
// from stdin. s may be nil if no settings file has been opened yet.
func resolveKey(cmd *cobra.Command, s *settings.Settings, required bool) ([]byte, error) {
	if keyPrompt && keyRealm != "" {
		return nil, cerrors.ErrKeyFlagsConflict
	}

	if keyRealm != "" {
		if s == nil {
			var err error
			if s, err = openSettings(cmd); err != nil {
				return nil, err
			}
		}
		Logger.Infof("Reading key %s from realm %s", keyName, keyRealm)
		if _, err := s.Load(keyRealm, nil); err != nil {
			return nil, err
		}
		key, err := s.String(keyName)
		if err != nil {
			return nil, err
		}
		if key == "" {
			return nil, cerrors.ErrEmptyKey
		}
		return []byte(key), nil
	}

	if keyPrompt || required {
		Logger.Debugf("Reading key from stdin")
		return utils.ReadSecret("Key: ", cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	return nil, nil
}

// render writes data to w as YAML or JSON.
func render(w io.Writer, data any, output string) error {
	var out []byte
	var err error
	switch output {
	case configs.OutputJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	default:
		out, err = yaml.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", output, err)
	}
	_, err = io.WriteString(w, ui.EnsureNewline(string(out)))
	return err
}

// startSpinner creates and starts a spinner on stderr with the given message
// when not in verbose or debug mode. Defer the returned cleanup; it stops the
// spinner and prints FinalMSG, with a trailing newline, to stdout.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Debugf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(cmd.OutOrStdout(), finalMsg)
		}
	}

	return s, cleanup
}
