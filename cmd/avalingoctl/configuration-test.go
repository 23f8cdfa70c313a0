package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomasbusse/avalingo/pkg/config"
)

// configurationTestCmd represents the configuration test command
var configurationTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Validate the configuration file and environment",
	Long: `Validate the current state of the configuration file and environment
variables without starting the server.

Example:
  avalingoctl configuration test`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration is invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Configuration is valid")
	},
}

func init() {
	configurationCmd.AddCommand(configurationTestCmd)
}
