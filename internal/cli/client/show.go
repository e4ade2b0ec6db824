package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var showSections = []string{"profile", "projects", "experience", "education", "certifications", "skills"}

// ShowCmd creates the show command for portfolio sections.
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "show <section>",
		Short:     "Show a portfolio section",
		Long:      "Prints one portfolio section as JSON. Sections: profile, projects, experience, education, certifications, skills.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: showSections,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
	return cmd
}

func runShow(cmd *cobra.Command, section string) error {
	valid := false
	for _, s := range showSections {
		if s == section {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown section %q (valid: %v)", section, showSections)
	}

	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient.Get("/portfolio/" + section)
	if err != nil {
		return err
	}

	var pretty interface{}
	if err := json.Unmarshal(resp.Data, &pretty); err != nil {
		return fmt.Errorf("failed to parse section: %w", err)
	}

	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
