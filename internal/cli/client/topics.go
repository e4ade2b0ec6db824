package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type topicsResponse struct {
	Topics []string `json:"topics"`
}

// TopicsCmd creates the topics command.
func TopicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Show example questions the assistant understands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopics(cmd)
		},
	}
	return cmd
}

func runTopics(cmd *cobra.Command) error {
	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient.Get("/chat/topics")
	if err != nil {
		return err
	}

	var topics topicsResponse
	if err := json.Unmarshal(resp.Data, &topics); err != nil {
		return fmt.Errorf("failed to parse topics: %w", err)
	}

	for _, topic := range topics.Topics {
		fmt.Printf("  %s\n", topic)
	}
	return nil
}
