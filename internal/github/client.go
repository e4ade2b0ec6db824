// Package github fetches and normalizes the site owner's public
// repositories. It is the only package that talks to the GitHub API;
// everything downstream consumes domain.RepoSummary values.
package github

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/gujjar-pranav/portfolio/internal/domain"
)

const (
	listPageSize = 100

	// listMaxRepos bounds the total list regardless of how many
	// repositories the owner has.
	listMaxRepos = 100
)

// repositoriesLister is the slice of the GitHub API the client uses.
type repositoriesLister interface {
	ListByUser(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)
}

// Client lists a single user's public repositories, newest-updated first,
// with forks filtered out.
type Client struct {
	owner string
	repos repositoriesLister
}

// NewClient creates a Client for the given GitHub user. An empty token
// means unauthenticated requests, which is fine for public data but
// subject to much lower rate limits.
func NewClient(owner, token string) *Client {
	api := gh.NewClient(nil)
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		api = gh.NewClient(oauth2.NewClient(context.Background(), ts))
	}
	return &Client{owner: owner, repos: api.Repositories}
}

// List fetches the owner's repositories sorted by last update and returns
// them as normalized summaries, at most listMaxRepos of them. Forks are
// dropped at this boundary so no caller ever sees one.
func (c *Client) List(ctx context.Context) ([]domain.RepoSummary, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: listPageSize},
	}

	var out []domain.RepoSummary
	for {
		repos, resp, err := c.repos.ListByUser(ctx, c.owner, opts)
		if err != nil {
			return nil, fmt.Errorf("list repos for %s: %w", c.owner, err)
		}

		for _, r := range repos {
			if r.GetFork() {
				continue
			}
			out = append(out, summarize(r))
			if len(out) == listMaxRepos {
				return out, nil
			}
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

func summarize(r *gh.Repository) domain.RepoSummary {
	return domain.RepoSummary{
		Name:        r.GetName(),
		URL:         r.GetHTMLURL(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		Language:    r.GetLanguage(),
		UpdatedAt:   formatUpdatedAt(r.GetUpdatedAt().Time),
	}
}

func formatUpdatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 Jan 2006")
}
