package cmd

import (
	"github.com/spf13/cobra"

	"github.com/asokolsky/secretsettings/internal/configs"
	cerrors "github.com/asokolsky/secretsettings/internal/errors"
	"github.com/asokolsky/secretsettings/internal/ui"
)

var (
	configInitFile             string
	configInitRealm            string
	configInitCheckPermissions bool
	configInitOutput           string
	configInitForce            bool
)

func init() {
	configInitCmd.Flags().StringVarP(&configInitFile, "file", "f", "secrets.ini", "default settings file")
	configInitCmd.Flags().StringVarP(&configInitRealm, "realm", "r", "", "default realm")
	configInitCmd.Flags().BoolVar(&configInitCheckPermissions, "check-permissions", false, "check settings file permissions by default")
	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", configs.OutputYAML, "default output format: yaml or json")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitFile = "secrets.ini"
	configInitRealm = ""
	configInitCheckPermissions = false
	configInitOutput = configs.OutputYAML
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the given defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		if configs.ConfigExists() && !configInitForce {
			return cerrors.ErrConfigExists
		}

		config := &configs.Config{
			Defaults: configs.Defaults{
				File:             configInitFile,
				Realm:            configInitRealm,
				CheckPermissions: configInitCheckPermissions,
				Output:           configInitOutput,
			},
		}

		spinner, cleanup := startSpinner(cmd, "Writing config...")
		defer cleanup()

		if err := configs.SaveConfig(config); err != nil {
			spinner.FinalMSG = ui.Failure("Failed to write config", err)
			return err
		}
		Logger.Debugf("Wrote %+v", config.Defaults)

		spinner.FinalMSG = ui.Done("Wrote " + ui.Path.Sprint(configs.ConfigPath()))
		return nil
	},
}
