package main

import (
	"fmt"
	"os"

	"github.com/asokolsky/secretsettings/cmd"
	"github.com/asokolsky/secretsettings/internal/ui"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Failure("secretsettings failed", err))
		os.Exit(1)
	}
}
