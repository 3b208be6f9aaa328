package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage secretsettings defaults",
	Long: `Provides commands for managing the CLI defaults stored in config.toml.

The defaults are used when the matching flag is not given:
  file               settings file for show, get, encrypt and decrypt
  realm              realm for show and get
  check_permissions  reject settings files readable by group or others
  output             yaml or json for show

Examples:
  # Write a config file
  secretsettings config init --file ~/app/secrets.yaml --realm database

  # Print the config in effect
  secretsettings config show`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}
