package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gujjar-pranav/portfolio/internal/domain"
)

var (
	// ErrEmptyMessage is returned when the submitted text is blank.
	ErrEmptyMessage = errors.New("chat: message text is empty")
	// ErrStaleReply is returned when a reply resolves after the session
	// was reset; the caller must discard it instead of rendering it.
	ErrStaleReply = errors.New("chat: reply arrived after session reset")
)

// Session owns one conversation: an append-only message history seeded
// with the greeting. Sessions are in-memory only and discarded on reset.
type Session struct {
	ID string

	mu         sync.Mutex
	generation int
	messages   []domain.ChatMessage
	router     *Router
	now        func() time.Time
}

// NewSession creates a fresh session with a generated ID.
func NewSession(router *Router) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		router: router,
		now:    time.Now,
	}
	s.messages = []domain.ChatMessage{{
		Role:      domain.RoleAssistant,
		Text:      Greeting(),
		CreatedAt: s.now(),
	}}
	return s
}

// Send appends the user message, routes it, and appends the reply. The
// router may block on the repository fetch; if the session is reset while
// that fetch is outstanding, the late reply is dropped and ErrStaleReply
// returned.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	generation := s.generation
	s.messages = append(s.messages, domain.ChatMessage{
		Role:      domain.RoleUser,
		Text:      text,
		CreatedAt: s.now(),
	})
	s.mu.Unlock()

	reply := s.router.Handle(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return "", ErrStaleReply
	}

	s.messages = append(s.messages, domain.ChatMessage{
		Role:      domain.RoleAssistant,
		Text:      reply,
		CreatedAt: s.now(),
	})
	return reply, nil
}

// Messages returns a copy of the history in order.
func (s *Session) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset discards the history, reseeds the greeting, and bumps the
// generation so in-flight replies are dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.messages = []domain.ChatMessage{{
		Role:      domain.RoleAssistant,
		Text:      Greeting(),
		CreatedAt: s.now(),
	}}
}

// Store holds live sessions by ID. Sessions are never persisted.
type Store struct {
	mu       sync.RWMutex
	router   *Router
	sessions map[string]*Session
}

// NewStore creates an empty session store over the given router.
func NewStore(router *Router) *Store {
	return &Store{
		router:   router,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session and registers it.
func (st *Store) Create() *Session {
	session := NewSession(st.router)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = session
	return session
}

// Get returns the session with the given ID, if it exists.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Delete removes a session. Removing an unknown ID is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Ask answers a one-shot query with no session state.
func (st *Store) Ask(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}
	return st.router.Handle(ctx, text), nil
}
