package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asokolsky/secretsettings/pkg/secrets"
)

func init() {
	addSettingsFlags(decryptCmd)
	addKeyFlags(decryptCmd, false)
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <ciphertext>",
	Short: "Decrypt a single base64 encoded value",
	Long: `Decrypts the value of an encrypted-<name> field and prints the plaintext.

The key is read from the terminal without echo, from the first line of
stdin, or from --key-realm.

Examples:
  secretsettings decrypt dOcV7/WfKO9RaK0Y6BbeQg==
  echo 1234567890123456 | secretsettings decrypt dOcV7/WfKO9RaK0Y6BbeQg==`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		key, err := resolveKey(cmd, nil, true)
		if err != nil {
			return err
		}

		plaintext, err := secrets.DecryptString(args[0], key)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), plaintext)
		return nil
	},
}
