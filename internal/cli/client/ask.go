package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type askRequest struct {
	Text string `json:"text"`
}

type replyResponse struct {
	Reply string `json:"reply"`
}

// AskCmd creates the one-shot ask command.
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the portfolio assistant a single question",
		Long:  "Sends one question to the assistant and prints the reply. No session state is kept.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runAsk(cmd, strings.Join(args, " "), outputJSON)
		},
	}
	return cmd
}

func runAsk(cmd *cobra.Command, question string, outputJSON bool) error {
	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient.Post("/chat/ask", askRequest{Text: question})
	if err != nil {
		return err
	}

	var reply replyResponse
	if err := json.Unmarshal(resp.Data, &reply); err != nil {
		return fmt.Errorf("failed to parse reply: %w", err)
	}

	if outputJSON {
		out, err := json.MarshalIndent(reply, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(reply.Reply)
	return nil
}
