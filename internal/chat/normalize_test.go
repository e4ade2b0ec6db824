package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "GitHub", "github"},
		{"strip punctuation", "what's up?!", "what s up"},
		{"keep dots plus minus", "review-sense-ai v2.0 c++", "review-sense-ai v2.0 c++"},
		{"collapse whitespace", "  repo   list \t\n", "repo list"},
		{"unicode stripped", "café — projects", "caf projects"},
		{"digits kept", "top 10 repos", "top 10 repos"},
		{"empty", "", ""},
		{"only junk", "?!@#", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"GitHub LINK!!",
		"  repo   details   review-sense-ai ",
		"what is the weather",
		"c++ and .net",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", input)
	}
}
