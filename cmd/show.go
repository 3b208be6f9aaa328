package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asokolsky/secretsettings/internal/ui"
)

var (
	showOutput string
	showRaw    bool
)

func init() {
	addSettingsFlags(showCmd)
	addKeyFlags(showCmd, true)
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "output format: yaml or json")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "also print the realm as stored, before decryption")
}

// resetShowState resets the show command's global state for testing.
func resetShowState() {
	showOutput = "yaml"
	showRaw = false
}

var showCmd = &cobra.Command{
	Use:   "show [realm]",
	Short: "Print a realm, or every realm, of a settings file",
	Long: `Prints one realm of a settings file, or all realms when none is given.

Without a key, encrypted-<name> fields are printed as stored. With --key or
--key-realm every encrypted-<name> field is decrypted and printed as <name>
next to the original.

Examples:
  # All realms of ./secrets.ini or ~/secrets.ini
  secretsettings show

  # One realm, decrypted with a key typed at the terminal
  secretsettings show database -f ~/app/secrets.yaml --key

  # Pipe the key in and print JSON
  echo "$KEY" | secretsettings show database --key -o json

  # Show the realm before and after decryption
  secretsettings show database --raw --key-realm secrets`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		realm := effectiveRealm(cmd, "")
		if len(args) == 1 {
			realm = args[0]
		}
		Logger.Infof("Starting show command for realm %q", realm)

		output, err := effectiveOutput(cmd, showOutput)
		if err != nil {
			return err
		}

		s, err := openSettings(cmd)
		if err != nil {
			return err
		}

		if showRaw {
			raw, err := s.Load(realm, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Sprint("as stored"))
			if err := render(cmd.OutOrStdout(), raw, output); err != nil {
				return err
			}
		}

		key, err := resolveKey(cmd, s, false)
		if err != nil {
			return err
		}
		if key == nil && showRaw {
			return nil
		}

		spinner, cleanup := startSpinner(cmd, "Loading settings...")
		data, err := s.Load(realm, key)
		if err != nil {
			cleanup()
			return err
		}
		if key != nil {
			Logger.Infof("Decrypted %s", describeRealm(realm))
			if showRaw {
				spinner.FinalMSG = ui.Muted.Sprint("decrypted")
			}
		}
		cleanup()

		return render(cmd.OutOrStdout(), data, output)
	},
}

func describeRealm(realm string) string {
	if realm == "" {
		return "all realms"
	}
	return "realm " + ui.Realm.Sprint(realm)
}
