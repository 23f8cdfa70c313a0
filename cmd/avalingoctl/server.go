package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/db"
	"github.com/tomasbusse/avalingo/pkg/server"
	"github.com/tomasbusse/avalingo/pkg/server/endpoints"
	"github.com/tomasbusse/avalingo/pkg/server/middleware"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Avalingo application server",
	Long: `Run the Avalingo application server

To run the server requires the environment variables AVALINGO_JWT_SECRET and
DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		jwtSecret, ok := os.LookupEnv("AVALINGO_JWT_SECRET")
		if !ok || jwtSecret == "" {
			fmt.Fprintln(os.Stderr, "AVALINGO_JWT_SECRET environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		if cfg.TelemetryEnabled {
			if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
				if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
					fmt.Fprintf(os.Stderr, "Telemetry init failed: %v\n", err)
					os.Exit(1)
				}
				log.Println("Error telemetry enabled")
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		auth := middleware.NewTokenAuthenticator([]byte(jwtSecret), cfg.UserTokenTTL())

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, cfg, auth, host, port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
