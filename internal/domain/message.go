package domain

import (
	"fmt"
	"time"
)

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single entry in a session's append-only history
type ChatMessage struct {
	Role      Role
	Text      string
	CreatedAt time.Time
}

// NewChatMessage creates a new ChatMessage instance
func NewChatMessage(role Role, text string, createdAt time.Time) *ChatMessage {
	return &ChatMessage{
		Role:      role,
		Text:      text,
		CreatedAt: createdAt,
	}
}

// ValidateChatMessage validates a ChatMessage instance
func ValidateChatMessage(m *ChatMessage) error {
	if m == nil {
		return fmt.Errorf("chat message cannot be nil")
	}

	if m.Role != RoleUser && m.Role != RoleAssistant {
		return ErrInvalidMessageRole
	}

	if m.Text == "" {
		return fmt.Errorf("chat message Text is required")
	}

	return nil
}
