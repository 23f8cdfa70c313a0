package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomasbusse/avalingo/db/seed"
	"github.com/tomasbusse/avalingo/pkg/db"
)

// dbSeedCmd represents the db seed command
var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the built-in roles and permission catalog",
	Long: `Seed the built-in roles and permission catalog.

Seeding is idempotent; existing roles and permission definitions are
updated in place. Run it after migrations on a fresh database and after
upgrades that ship new built-in roles.

Example:
  avalingoctl db seed`,
	Run: func(cmd *cobra.Command, args []string) {
		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		if err := seed.Apply(database); err != nil {
			fmt.Fprintln(os.Stderr, "Seeding failed:", err)
			os.Exit(1)
		}
		fmt.Println("Seeded built-in roles and permission catalog")
	},
}

func init() {
	dbCmd.AddCommand(dbSeedCmd)
}
