package handlers

import (
	"context"
	"net/http"

	"github.com/gujjar-pranav/portfolio/internal/api"
	"github.com/gujjar-pranav/portfolio/internal/domain"
	"github.com/gujjar-pranav/portfolio/internal/telemetry"
)

type RepoSource interface {
	List(ctx context.Context) ([]domain.RepoSummary, error)
}

type RepoHandler struct {
	source RepoSource
}

func NewRepoHandler(source RepoSource) *RepoHandler {
	return &RepoHandler{source: source}
}

type RepoResponse struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Language    string `json:"language,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

func reposToResponse(repos []domain.RepoSummary) []RepoResponse {
	out := make([]RepoResponse, 0, len(repos))
	for _, r := range repos {
		out = append(out, RepoResponse{
			Name:        r.Name,
			URL:         r.URL,
			Description: r.Description,
			Stars:       r.Stars,
			Language:    r.Language,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return out
}

// List returns the owner's public repositories, newest-updated first,
// forks excluded.
func (h *RepoHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.StartSpan(r.Context(), "repos.list", telemetry.SpanAttributes{
		Operation: "list_repos",
	})
	defer span.End()

	repos, err := h.source.List(ctx)
	if err != nil {
		span.SetError(err)
		api.HandleError(w, domain.ErrRepoDataUnavailable)
		return
	}

	api.Success(w, http.StatusOK, reposToResponse(repos))
}
