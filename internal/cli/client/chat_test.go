package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatTestServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()

	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/chat/sessions":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": sessionResponse{
					ID:       "sess-1",
					Messages: []messageResponse{{Role: "assistant", Text: "Hi! Ask me anything."}},
				},
			})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/messages"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": replyResponse{Reply: "GitHub: https://github.com/Gujjar-Pranav"},
			})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/reset"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": sessionResponse{ID: "sess-1"},
			})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return srv, &requests
}

func TestRunChat_SendAndQuit(t *testing.T) {
	srv, requests := chatTestServer(t)
	defer srv.Close()
	t.Setenv(envAPIURL, srv.URL)

	in := strings.NewReader("github\n/quit\n")
	var out bytes.Buffer

	err := runChat(nil, in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Hi! Ask me anything.")
	assert.Contains(t, out.String(), "GitHub: https://github.com/Gujjar-Pranav")

	assert.Contains(t, *requests, "POST /chat/sessions")
	assert.Contains(t, *requests, "POST /chat/sessions/sess-1/messages")
	assert.Contains(t, *requests, "DELETE /chat/sessions/sess-1", "session cleaned up on exit")
}

func TestRunChat_Reset(t *testing.T) {
	srv, requests := chatTestServer(t)
	defer srv.Close()
	t.Setenv(envAPIURL, srv.URL)

	in := strings.NewReader("/reset\n/quit\n")
	var out bytes.Buffer

	err := runChat(nil, in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "(conversation cleared)")
	assert.Contains(t, *requests, "POST /chat/sessions/sess-1/reset")
}

func TestRunChat_BlankLinesIgnored(t *testing.T) {
	srv, requests := chatTestServer(t)
	defer srv.Close()
	t.Setenv(envAPIURL, srv.URL)

	in := strings.NewReader("\n\n/quit\n")
	var out bytes.Buffer

	err := runChat(nil, in, &out)
	require.NoError(t, err)

	for _, req := range *requests {
		assert.NotContains(t, req, "/messages")
	}
}
