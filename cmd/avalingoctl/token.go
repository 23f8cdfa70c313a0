package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/server/middleware"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Issue an API token for a user",
	Long: `Issue a signed API token for a user, valid for the configured TTL.

Requires the AVALINGO_JWT_SECRET environment variable to match the running
server.

Example:
  avalingoctl token alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		secret, ok := os.LookupEnv("AVALINGO_JWT_SECRET")
		if !ok || secret == "" {
			fmt.Fprintln(os.Stderr, "AVALINGO_JWT_SECRET environment variable is required")
			os.Exit(1)
		}

		auth := middleware.NewTokenAuthenticator([]byte(secret), config.Get().UserTokenTTL())
		token, err := auth.IssueToken(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to issue token:", err)
			os.Exit(1)
		}
		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
