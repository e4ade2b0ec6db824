package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type sessionResponse struct {
	ID       string            `json:"id"`
	Messages []messageResponse `json:"messages"`
}

type messageResponse struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatCmd creates the interactive chat command.
func ChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Opens an interactive session with the portfolio assistant.

Commands inside the session:
  /reset   clear the conversation
  /quit    exit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, os.Stdin, os.Stdout)
		},
	}
	return cmd
}

func runChat(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient.Post("/chat/sessions", nil)
	if err != nil {
		return err
	}

	var session sessionResponse
	if err := json.Unmarshal(resp.Data, &session); err != nil {
		return fmt.Errorf("failed to parse session: %w", err)
	}
	defer apiClient.Delete("/chat/sessions/" + session.ID)

	for _, m := range session.Messages {
		fmt.Fprintf(out, "%s\n\n", m.Text)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		switch text {
		case "":
			continue
		case "/quit", "/exit":
			return scanner.Err()
		case "/reset":
			if _, err := apiClient.Post("/chat/sessions/"+session.ID+"/reset", nil); err != nil {
				return err
			}
			fmt.Fprintln(out, "(conversation cleared)")
			continue
		}

		resp, err := apiClient.Post("/chat/sessions/"+session.ID+"/messages", askRequest{Text: text})
		if err != nil {
			// Keep the session alive on API errors; the user can retry.
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		var reply replyResponse
		if err := json.Unmarshal(resp.Data, &reply); err != nil {
			return fmt.Errorf("failed to parse reply: %w", err)
		}
		fmt.Fprintf(out, "%s\n\n", reply.Reply)
	}

	return scanner.Err()
}
