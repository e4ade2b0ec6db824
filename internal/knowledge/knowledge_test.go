package knowledge

import (
	"testing"

	"github.com/gujjar-pranav/portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBase(t *testing.T) {
	base := Default()

	assert.Greater(t, base.Len(), 10)
	require.NoError(t, domain.ValidateLinks(base.Links()))

	// Every entry the router depends on by ID must exist.
	for _, id := range []string{"about", "projects", "contact", "links", "education", "certifications", "skills"} {
		entry, ok := base.ByID(id)
		require.True(t, ok, "missing entry %q", id)
		assert.NoError(t, domain.ValidateEntry(entry))
	}
}

func TestDefaultBaseUniqueIDs(t *testing.T) {
	base := Default()

	seen := make(map[string]bool)
	for _, entry := range base.Entries() {
		assert.False(t, seen[entry.ID], "duplicate entry id %q", entry.ID)
		seen[entry.ID] = true
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	links := DefaultLinks()
	entries := []*domain.Entry{
		domain.NewEntry("about", "About", nil, "a"),
		domain.NewEntry("about", "About again", nil, "b"),
	}

	_, err := New(links, entries)
	assert.ErrorIs(t, err, domain.ErrDuplicateEntryID)
}

func TestNewRejectsInvalidEntry(t *testing.T) {
	links := DefaultLinks()
	entries := []*domain.Entry{{ID: "x", Title: ""}}

	_, err := New(links, entries)
	assert.Error(t, err)
}

func TestByIDMiss(t *testing.T) {
	base := Default()
	_, ok := base.ByID("no-such-entry")
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	base := Default()

	entry, err := base.Get("about")
	require.NoError(t, err)
	assert.Equal(t, "about", entry.ID)

	_, err = base.Get("no-such-entry")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}
