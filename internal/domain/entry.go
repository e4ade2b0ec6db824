package domain

import "fmt"

// Entry represents a single knowledge base entry: a canned answer plus the
// trigger phrases that should surface it. Entries are immutable after startup.
type Entry struct {
	ID       string
	Title    string
	Keywords []string
	Answer   string
	Link     string // optional repository URL, rendering only
	Demo     string // optional live demo URL, rendering only
}

// NewEntry creates a new Entry instance
func NewEntry(id, title string, keywords []string, answer string) *Entry {
	return &Entry{
		ID:       id,
		Title:    title,
		Keywords: keywords,
		Answer:   answer,
	}
}

// ValidateEntry validates an Entry instance
func ValidateEntry(e *Entry) error {
	if e == nil {
		return fmt.Errorf("entry cannot be nil")
	}

	if e.ID == "" {
		return fmt.Errorf("entry ID is required")
	}

	if e.Title == "" {
		return fmt.Errorf("entry Title is required")
	}

	if e.Answer == "" {
		return fmt.Errorf("entry Answer is required")
	}

	return nil
}

// Links holds the static profile and contact URLs used by canned replies.
// Initialized once at startup and never mutated.
type Links struct {
	GitHubProfile   string
	LinkedIn        string
	ResumePDF       string
	ResumeFilename  string
	WhatsApp        string
	Phone           string
	Email           string
	LinkedInCerts   string
	GitHubCertsRepo string
}

// ValidateLinks validates a Links instance
func ValidateLinks(l *Links) error {
	if l == nil {
		return fmt.Errorf("links cannot be nil")
	}

	if l.GitHubProfile == "" {
		return fmt.Errorf("links GitHubProfile is required")
	}

	if l.LinkedIn == "" {
		return fmt.Errorf("links LinkedIn is required")
	}

	return nil
}
