package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gujjar-pranav/portfolio/internal/api/handlers"
	"github.com/gujjar-pranav/portfolio/internal/chat"
	"github.com/gujjar-pranav/portfolio/internal/domain"
	"github.com/gujjar-pranav/portfolio/internal/knowledge"
)

type MockRepoSource struct {
	mock.Mock
}

func (m *MockRepoSource) List(ctx context.Context) ([]domain.RepoSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RepoSummary), args.Error(1)
}

func newTestServer(source *MockRepoSource) http.Handler {
	kb := knowledge.Default()
	store := chat.NewStore(chat.NewRouter(kb, source))

	return NewRouter(RouterConfig{
		ChatHandler:      handlers.NewChatHandler(store),
		RepoHandler:      handlers.NewRepoHandler(source),
		PortfolioHandler: handlers.NewPortfolioHandler(kb),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(new(MockRepoSource))

	w := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestChatSessionFlow(t *testing.T) {
	h := newTestServer(new(MockRepoSource))

	// Create a session.
	w := doJSON(t, h, http.MethodPost, "/chat/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID       string `json:"id"`
			Messages []struct {
				Role string `json:"role"`
				Text string `json:"text"`
			} `json:"messages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)
	require.Len(t, created.Data.Messages, 1)

	// Send a message.
	w = doJSON(t, h, http.MethodPost, "/chat/sessions/"+created.Data.ID+"/messages", map[string]string{"text": "download cv"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Download Resume")

	// History now has greeting + user + assistant.
	w = doJSON(t, h, http.MethodGet, "/chat/sessions/"+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data struct {
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Len(t, fetched.Data.Messages, 3)

	// Reset back to the greeting.
	w = doJSON(t, h, http.MethodPost, "/chat/sessions/"+created.Data.ID+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Delete.
	w = doJSON(t, h, http.MethodDelete, "/chat/sessions/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, h, http.MethodGet, "/chat/sessions/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatAskEndpoint(t *testing.T) {
	h := newTestServer(new(MockRepoSource))

	w := doJSON(t, h, http.MethodPost, "/chat/ask", map[string]string{"text": "linkedin"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "LinkedIn: https://")
}

func TestChatTopicsEndpoint(t *testing.T) {
	h := newTestServer(new(MockRepoSource))

	w := doJSON(t, h, http.MethodGet, "/chat/topics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "repo list")
}

func TestGitHubReposEndpoint(t *testing.T) {
	source := new(MockRepoSource)
	source.On("List", mock.Anything).Return([]domain.RepoSummary{
		{Name: "alpha", URL: "https://github.com/Gujjar-Pranav/alpha"},
	}, nil).Once()

	h := newTestServer(source)
	w := doJSON(t, h, http.MethodGet, "/github/repos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"alpha"`)
}

func TestGitHubReposEndpointUnavailable(t *testing.T) {
	source := new(MockRepoSource)
	source.On("List", mock.Anything).Return(nil, errors.New("down")).Once()

	h := newTestServer(source)
	w := doJSON(t, h, http.MethodGet, "/github/repos", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPortfolioEndpoints(t *testing.T) {
	h := newTestServer(new(MockRepoSource))

	for _, path := range []string{
		"/portfolio/profile",
		"/portfolio/projects",
		"/portfolio/experience",
		"/portfolio/education",
		"/portfolio/certifications",
		"/portfolio/skills",
	} {
		w := doJSON(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"data"`, path)
	}
}

func TestOversizedBodyRejected(t *testing.T) {
	h := newTestServer(new(MockRepoSource))

	big := bytes.Repeat([]byte("a"), 65*1024)
	body, err := json.Marshal(map[string]string{"text": string(big)})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat/ask", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
