package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gujjar-pranav/portfolio/internal/cli"
	"github.com/gujjar-pranav/portfolio/internal/cli/client"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio CLI - talk to the portfolio service",
		Long: `Portfolio CLI provides commands to query the portfolio service.

Environment variables:
  PORTFOLIO_API_URL   API base URL (default: http://localhost:8080)`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env)")
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.AskCmd())
	rootCmd.AddCommand(client.ChatCmd())
	rootCmd.AddCommand(client.ReposCmd())
	rootCmd.AddCommand(client.TopicsCmd())
	rootCmd.AddCommand(client.ShowCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
