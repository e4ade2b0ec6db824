package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gujjar-pranav/portfolio/internal/cli"
	"github.com/gujjar-pranav/portfolio/internal/cli/admin"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfoliod",
		Short: "Portfolio daemon",
		Long:  "Portfolio daemon serving the site content, GitHub repository data, and the chat assistant API",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())
	rootCmd.AddCommand(admin.KBCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
