package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "avalingoctl",
	Short: "Avalingo server command line interface",
	Long: `avalingoctl manages the Avalingo server: running it, migrating and
seeding the database, loading question banks and issuing tokens.`,
}

func main() {
	// A .env file is a development convenience; absence is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
