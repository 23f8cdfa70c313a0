package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomasbusse/avalingo/pkg/bank"
	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/db"
	"github.com/tomasbusse/avalingo/pkg/metrics"
)

// bankLoadCmd represents the bank load command
var bankLoadCmd = &cobra.Command{
	Use:   "load [path]",
	Short: "Load question bank documents into the database",
	Long: `Load question bank documents into the database.

The path may be a single YAML document or a directory of documents. With no
path, the configured bank_path is used. Every document is parsed and
validated before anything is written; one bad document aborts the whole
load.

Example:
  avalingoctl bank load ./bank
  avalingoctl bank load ./bank/grammar-b1.yml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.Get().BankPath
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			fmt.Fprintln(os.Stderr, "No path given and bank_path is not configured")
			os.Exit(1)
		}

		result, err := loadBank(path)
		if err != nil {
			metrics.BankLoads.WithLabelValues("error").Inc()
			fmt.Fprintln(os.Stderr, "Bank load failed:", err)
			os.Exit(1)
		}
		metrics.BankLoads.WithLabelValues("success").Inc()
		fmt.Printf("Loaded %d question(s) from %d file(s)\n", result.Questions, result.Files)
	},
}

func init() {
	bankCmd.AddCommand(bankLoadCmd)
}

func loadBank(path string) (*bank.Result, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	loader := bank.NewLoader(bank.NewGormStore(database))

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return loader.LoadDir(path)
	}
	return loader.LoadFile(path)
}
