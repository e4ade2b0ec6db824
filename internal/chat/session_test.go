package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gujjar-pranav/portfolio/internal/domain"
	"github.com/gujjar-pranav/portfolio/internal/knowledge"
)

// blockingRepoSource parks List until released, simulating a slow fetch.
type blockingRepoSource struct {
	entered  chan struct{}
	released chan struct{}
}

func newBlockingRepoSource() *blockingRepoSource {
	return &blockingRepoSource{
		entered:  make(chan struct{}),
		released: make(chan struct{}),
	}
}

func (s *blockingRepoSource) List(ctx context.Context) ([]domain.RepoSummary, error) {
	close(s.entered)
	<-s.released
	return testRepos(1), nil
}

func newTestRouter() *Router {
	return NewRouter(knowledge.Default(), new(mockRepoSource))
}

func TestNewSessionSeedsGreeting(t *testing.T) {
	session := NewSession(newTestRouter())

	require.NotEmpty(t, session.ID)
	messages := session.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, domain.RoleAssistant, messages[0].Role)
	assert.Equal(t, Greeting(), messages[0].Text)
}

func TestSessionSendAppendsInOrder(t *testing.T) {
	session := NewSession(newTestRouter())

	reply, err := session.Send(context.Background(), "projects")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)

	messages := session.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, domain.RoleUser, messages[1].Role)
	assert.Equal(t, "projects", messages[1].Text)
	assert.Equal(t, domain.RoleAssistant, messages[2].Role)
	assert.Equal(t, reply, messages[2].Text)
}

func TestSessionSendRejectsBlank(t *testing.T) {
	session := NewSession(newTestRouter())

	_, err := session.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, session.Messages(), 1, "nothing appended")
}

func TestSessionResetReseedsGreeting(t *testing.T) {
	session := NewSession(newTestRouter())

	_, err := session.Send(context.Background(), "education")
	require.NoError(t, err)
	require.Len(t, session.Messages(), 3)

	session.Reset()

	messages := session.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, Greeting(), messages[0].Text)
}

func TestResetDropsInFlightReply(t *testing.T) {
	source := newBlockingRepoSource()
	session := NewSession(NewRouter(knowledge.Default(), source))

	type result struct {
		reply string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		reply, err := session.Send(context.Background(), "repo list")
		done <- result{reply, err}
	}()

	<-source.entered
	session.Reset()
	close(source.released)

	res := <-done
	assert.ErrorIs(t, res.err, ErrStaleReply)
	assert.Empty(t, res.reply)

	// The late reply must not appear after the fresh greeting.
	messages := session.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, Greeting(), messages[0].Text)
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(newTestRouter())

	session := store.Create()
	got, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, got)

	store.Delete(session.ID)
	_, ok = store.Get(session.ID)
	assert.False(t, ok)

	// Deleting again is a no-op.
	store.Delete(session.ID)
}

func TestStoreGetUnknownID(t *testing.T) {
	store := NewStore(newTestRouter())
	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestStoreAsk(t *testing.T) {
	store := NewStore(newTestRouter())

	reply, err := store.Ask(context.Background(), "github")
	require.NoError(t, err)
	assert.Equal(t, "GitHub: https://github.com/Gujjar-Pranav", reply)

	_, err = store.Ask(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
