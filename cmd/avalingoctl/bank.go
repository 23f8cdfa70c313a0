package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// bankCmd represents the bank command
var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the question bank",
	Long:  `Manage the question bank documents and their database records.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'bank' requires a subcommand (load, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(bankCmd)
}
