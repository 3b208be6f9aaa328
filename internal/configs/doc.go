// Package configs manages the secretsettings CLI configuration.
//
// The configuration is a TOML file at
// <user config dir>/secretsettings/config.toml (for example
// ~/.config/secretsettings/config.toml on Linux, honoring XDG_CONFIG_HOME):
//
//	[defaults]
//	file = "secrets.ini"
//	realm = "settings"
//	check_permissions = false
//	output = "yaml"
//
// Values from the file are defaults only; command-line flags override them.
// A missing file is not an error, LoadConfig then returns DefaultConfig().
package configs
