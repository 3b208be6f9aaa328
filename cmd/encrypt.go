package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cerrors "github.com/asokolsky/secretsettings/internal/errors"
	"github.com/asokolsky/secretsettings/internal/utils"
	"github.com/asokolsky/secretsettings/pkg/secrets"
)

var encryptField string

func init() {
	addSettingsFlags(encryptCmd)
	addKeyFlags(encryptCmd, false)
	encryptCmd.Flags().StringVar(&encryptField, "field", "", "print an INI line for encrypted-<field> instead of the bare value")
}

// resetEncryptState resets the encrypt command's global state for testing.
func resetEncryptState() {
	encryptField = ""
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [plaintext]",
	Short: "Encrypt a value for an encrypted-<name> field",
	Long: `Encrypts a value with AES-CBC and prints it base64 encoded, ready to be
stored under an encrypted-<name> key of a settings file.

The key is read first: from the terminal without echo, from the first line
of stdin, or from --key-realm. Without a plaintext argument the value is
read after the key, from the terminal or from the rest of stdin.

Examples:
  secretsettings encrypt 'BigB1gSecret'
  printf '%s\n%s\n' "$KEY" 'BigB1gSecret' | secretsettings encrypt
  secretsettings encrypt --key-realm secrets --field password 'BigB1gSecret'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		key, err := resolveKey(cmd, nil, true)
		if err != nil {
			return err
		}
		if err := secrets.ValidateKey(key); err != nil {
			return err
		}

		var plaintext string
		switch {
		case len(args) == 1:
			plaintext = args[0]
		case utils.IsTerminal(cmd.InOrStdin()):
			b, err := utils.ReadSecret("Value: ", cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			plaintext = string(b)
		default:
			if plaintext, err = utils.ReadInput(cmd.InOrStdin()); err != nil {
				return err
			}
		}
		if plaintext == "" {
			return cerrors.ErrEmptyInput
		}

		encrypted, err := secrets.EncryptString(plaintext, key)
		if err != nil {
			return err
		}
		Logger.Debugf("Encrypted %d bytes", len(plaintext))

		if encryptField != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s = %s\n", secrets.EncryptedPrefix, encryptField, encrypted)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), encrypted)
		return nil
	},
}
