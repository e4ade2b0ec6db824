package admin

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gujjar-pranav/portfolio/internal/knowledge"
)

// KBCmd returns the kb command for inspecting the compiled-in knowledge base
func KBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect the knowledge base",
		Long:  "List and show the compiled-in knowledge base entries the assistant answers from",
	}

	cmd.AddCommand(KBListCmd())
	cmd.AddCommand(KBShowCmd())

	return cmd
}

func KBListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge base entries",
		Long:  "List every knowledge base entry with its ID, title, and keyword count",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, _ := cmd.Flags().GetString("output")
			return runKBList(knowledge.Default(), outputFormat, os.Stdout)
		},
	}

	cmd.Flags().StringP("output", "", "text", "Output format (text or json)")

	return cmd
}

func runKBList(kb *knowledge.Base, outputFormat string, w io.Writer) error {
	entries := kb.Entries()

	if outputFormat == "json" {
		data := make([]map[string]interface{}, 0, len(entries))
		for _, entry := range entries {
			data = append(data, map[string]interface{}{
				"id":       entry.ID,
				"title":    entry.Title,
				"keywords": entry.Keywords,
			})
		}
		jsonBytes, _ := json.MarshalIndent(data, "", "  ")
		fmt.Fprintln(w, string(jsonBytes))
		return nil
	}

	fmt.Fprintf(w, "%d entries\n\n", len(entries))
	for _, entry := range entries {
		fmt.Fprintf(w, "%-16s %s (%d keywords)\n", entry.ID, entry.Title, len(entry.Keywords))
	}
	return nil
}

func KBShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one knowledge base entry",
		Long:  "Show a single knowledge base entry by ID, including its answer text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, _ := cmd.Flags().GetString("output")
			return runKBShow(knowledge.Default(), args[0], outputFormat, os.Stdout)
		},
	}

	cmd.Flags().StringP("output", "", "text", "Output format (text or json)")

	return cmd
}

func runKBShow(kb *knowledge.Base, id, outputFormat string, w io.Writer) error {
	entry, err := kb.Get(id)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		data := map[string]interface{}{
			"id":       entry.ID,
			"title":    entry.Title,
			"keywords": entry.Keywords,
			"answer":   entry.Answer,
		}
		if entry.Link != "" {
			data["link"] = entry.Link
		}
		if entry.Demo != "" {
			data["demo"] = entry.Demo
		}
		jsonBytes, _ := json.MarshalIndent(data, "", "  ")
		fmt.Fprintln(w, string(jsonBytes))
		return nil
	}

	fmt.Fprintf(w, "ID: %s\n", entry.ID)
	fmt.Fprintf(w, "Title: %s\n", entry.Title)
	fmt.Fprintf(w, "Keywords: %s\n", strings.Join(entry.Keywords, ", "))
	if entry.Link != "" {
		fmt.Fprintf(w, "Link: %s\n", entry.Link)
	}
	if entry.Demo != "" {
		fmt.Fprintf(w, "Demo: %s\n", entry.Demo)
	}
	fmt.Fprintf(w, "\n%s\n", entry.Answer)
	return nil
}
