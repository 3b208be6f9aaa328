package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/asokolsky/secretsettings/internal/configs"
	logger "github.com/asokolsky/secretsettings/internal/logging"
	"github.com/asokolsky/secretsettings/internal/ui"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// Config holds the CLI defaults loaded from config.toml.
	Config *configs.Config

	RootCmd = &cobra.Command{
		Use:   "secretsettings",
		Short: "Read settings files with encrypted fields",
		Long: `secretsettings reads realms from INI and YAML settings files and decrypts
fields named encrypted-<name> with a symmetric AES key.

The key is never stored. It is read from the terminal, piped on stdin, or
taken from another realm of the same settings file with --key-realm.

Examples:
  # Print a realm as stored in the file
  secretsettings show database -f secrets.ini

  # Print it decrypted, prompting for the key
  secretsettings show database -f secrets.ini --key

  # Read the key from the [secrets] realm of the same file
  secretsettings get password -r database -f secrets.ini --key-realm secrets

  # Produce a value for an encrypted-<name> field
  secretsettings encrypt 'my password'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Writer:  cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)

			config, err := configs.LoadConfig()
			if err != nil {
				// config init --force must be able to replace a broken file.
				if cmd != configInitCmd {
					return Logger.ErrorfAndReturn("Failed to load config: %w", err)
				}
				Logger.Warnf("Ignoring config: %v", err)
				config = configs.DefaultConfig()
			}
			Config = config
			Logger.Debugf("Loaded config from %s", configs.ConfigPath())
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewFigure("secretsettings", "small", true)
			fmt.Fprint(cmd.OutOrStdout(), ui.Success.Sprint(banner.String()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Hint.Sprint("→")+" Run "+ui.Code.Sprint("secretsettings --help")+" to see available commands")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables and flags to their defaults.
func ResetGlobalState() {
	verbose = false
	debug = false
	Config = nil
	resetSettingsFlags()
	resetShowState()
	resetGetState()
	resetEncryptState()
	resetConfigInitState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marks of every flag so that values
// from a previous Execute do not count as set by the user.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
