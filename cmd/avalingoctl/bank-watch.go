package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tomasbusse/avalingo/pkg/bank"
	"github.com/tomasbusse/avalingo/pkg/db"
	"github.com/tomasbusse/avalingo/pkg/metrics"
)

// bankWatchCmd represents the bank watch command
var bankWatchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and reload bank documents when they change",
	Long: `Watch a directory of question bank documents and reload a document
whenever it is written.

A document that fails validation is reported and skipped; the questions
already in the database stay untouched.

Example:
  avalingoctl bank watch ./bank`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchBank(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch bank: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	bankCmd.AddCommand(bankWatchCmd)
}

func isBankDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}

func watchBank(dir string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}
	loader := bank.NewLoader(bank.NewGormStore(database))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	fmt.Printf("Watching %s for question bank changes\n", dir)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isBankDocument(event.Name) {
				continue
			}

			fmt.Printf("[%s] %s changed, reloading...\n", time.Now().Format(time.RFC3339), event.Name)
			result, err := loader.LoadFile(event.Name)
			if err != nil {
				metrics.BankLoads.WithLabelValues("error").Inc()
				fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
				continue
			}
			metrics.BankLoads.WithLabelValues("success").Inc()
			fmt.Printf("Loaded %d question(s) from %s\n", result.Questions, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
