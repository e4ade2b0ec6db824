package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type repoResponse struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Language    string `json:"language,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ReposCmd creates the repos command.
func ReposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List the owner's public GitHub repositories",
		Long:  "Lists public repositories newest-updated first, forks excluded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runRepos(cmd, outputJSON)
		},
	}
	return cmd
}

func runRepos(cmd *cobra.Command, outputJSON bool) error {
	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient.Get("/github/repos")
	if err != nil {
		return err
	}

	var repos []repoResponse
	if err := json.Unmarshal(resp.Data, &repos); err != nil {
		return fmt.Errorf("failed to parse repos: %w", err)
	}

	if outputJSON {
		out, err := json.MarshalIndent(repos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if len(repos) == 0 {
		fmt.Println("No repositories found.")
		return nil
	}

	for _, r := range repos {
		language := r.Language
		if language == "" {
			language = "-"
		}
		fmt.Printf("%-40s %-12s ★ %-5d %s\n", r.Name, language, r.Stars, r.UpdatedAt)
	}
	return nil
}
