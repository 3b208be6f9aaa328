package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asokolsky/secretsettings/internal/utils"
	serrors "github.com/asokolsky/secretsettings/pkg/errors"
)

var getRealm string

func init() {
	addSettingsFlags(getCmd)
	addKeyFlags(getCmd, true)
	getCmd.Flags().StringVarP(&getRealm, "realm", "r", "", "realm to read the value from (default from config)")
}

// resetGetState resets the get command's global state for testing.
func resetGetState() {
	getRealm = ""
}

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a single value from a realm",
	Long: `Prints the value of one setting. Strings are printed as is, other values
in YAML notation, so the output can be used in scripts:

  export DB_PASSWORD="$(secretsettings get password -r database --key-realm secrets)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		realm := effectiveRealm(cmd, getRealm)
		if realm == "" {
			return fmt.Errorf("no realm given, use --realm or set realm in the config")
		}
		Logger.Infof("Starting get command for %s in realm %s", name, realm)

		s, err := openSettings(cmd)
		if err != nil {
			return err
		}
		key, err := resolveKey(cmd, s, false)
		if err != nil {
			return err
		}
		if _, err := s.Load(realm, key); err != nil {
			return err
		}

		value, err := s.Value(name)
		if errors.Is(err, serrors.ErrKeyNotFound) {
			return fmt.Errorf("%w in realm %s, available:%s", err, realm, utils.FormatList(utils.SortedKeys(s.Secrets())))
		}
		if err != nil {
			return err
		}

		if str, ok := value.(string); ok {
			fmt.Fprintln(cmd.OutOrStdout(), str)
			return nil
		}
		return render(cmd.OutOrStdout(), value, "yaml")
	},
}
