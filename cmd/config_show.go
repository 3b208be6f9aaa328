package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/asokolsky/secretsettings/internal/configs"
	"github.com/asokolsky/secretsettings/internal/ui"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config in effect",
	Long: `Prints the defaults in effect as TOML. When no config file exists the
built-in defaults are printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		path := configs.ConfigPath()
		if configs.ConfigExists() {
			fmt.Fprintf(cmd.ErrOrStderr(), "# %s\n", ui.Path.Sprint(path))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Muted.Sprint("no config file, showing built-in defaults"))
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Hint.Sprint("→")+" Run "+ui.Code.Sprint("secretsettings config init")+" to create one")
		}

		config := Config
		if config == nil {
			config = configs.DefaultConfig()
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(config)
	},
}
