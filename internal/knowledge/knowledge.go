// Package knowledge holds the static knowledge base the chat engine answers
// from. The base is constructed once at startup and never mutated.
package knowledge

import (
	"fmt"

	"github.com/gujjar-pranav/portfolio/internal/domain"
)

// Base is an ordered, immutable collection of knowledge entries with
// unique IDs. Order matters: the fuzzy matcher breaks ties by index order.
type Base struct {
	links   *domain.Links
	entries []*domain.Entry
	byID    map[string]*domain.Entry
}

// New creates a Base from the given links and entries. It fails on invalid
// entries or duplicate IDs.
func New(links *domain.Links, entries []*domain.Entry) (*Base, error) {
	if err := domain.ValidateLinks(links); err != nil {
		return nil, fmt.Errorf("invalid links: %w", err)
	}

	byID := make(map[string]*domain.Entry, len(entries))
	for _, entry := range entries {
		if err := domain.ValidateEntry(entry); err != nil {
			return nil, fmt.Errorf("invalid entry: %w", err)
		}
		if _, exists := byID[entry.ID]; exists {
			return nil, fmt.Errorf("entry %q: %w", entry.ID, domain.ErrDuplicateEntryID)
		}
		byID[entry.ID] = entry
	}

	return &Base{
		links:   links,
		entries: entries,
		byID:    byID,
	}, nil
}

// MustNew creates a Base and panics on invalid data. Intended for the
// compiled-in default base, where invalid data is a programming error.
func MustNew(links *domain.Links, entries []*domain.Entry) *Base {
	base, err := New(links, entries)
	if err != nil {
		panic(err)
	}
	return base
}

// Links returns the static profile and contact URLs.
func (b *Base) Links() *domain.Links {
	return b.links
}

// Entries returns all entries in authoring order.
func (b *Base) Entries() []*domain.Entry {
	return b.entries
}

// ByID returns the entry with the given ID, if present.
func (b *Base) ByID(id string) (*domain.Entry, bool) {
	entry, ok := b.byID[id]
	return entry, ok
}

// Get returns the entry with the given ID or domain.ErrEntryNotFound.
func (b *Base) Get(id string) (*domain.Entry, error) {
	entry, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", id, domain.ErrEntryNotFound)
	}
	return entry, nil
}

// Len returns the number of entries.
func (b *Base) Len() int {
	return len(b.entries)
}
