package configs

import (
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
}

// UserSecretSettings points at the CLI configuration directory. Tests replace
// it with a temporary directory.
var UserSecretSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// No home directory: the CLI still works, just without a config file.
		UserSecretSettings = &UserSettings{}
		return
	}

	UserSecretSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "secretsettings"),
	}
}

// ConfigPath returns the path of config.toml, or "" if there is no user
// config directory.
func ConfigPath() string {
	if UserSecretSettings == nil || UserSecretSettings.UserConfigsPath == "" {
		return ""
	}
	return filepath.Join(UserSecretSettings.UserConfigsPath, "config.toml")
}
