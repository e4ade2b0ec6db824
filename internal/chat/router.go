// Package chat implements the portfolio assistant: intent routing over a
// static knowledge base, fuzzy matching for typo tolerance, and reply
// formatting for a markdown-capable presentation layer.
package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/gujjar-pranav/portfolio/internal/domain"
	"github.com/gujjar-pranav/portfolio/internal/fuzzy"
	"github.com/gujjar-pranav/portfolio/internal/knowledge"
)

// RepoSource supplies the normalized repository list from the GitHub
// boundary. An error means "no data"; the router recovers it into a
// user-visible reply and never propagates it.
type RepoSource interface {
	List(ctx context.Context) ([]domain.RepoSummary, error)
}

// Fuzzy index weights mirror the matching behavior of the site's chat
// widget: titles weigh slightly more than keyword lists; repository name
// and description weigh equally.
const (
	kbTitleWeight   = 0.55
	kbKeywordWeight = 0.45
	repoFieldWeight = 0.5
)

// Router evaluates the intent cascade for a single user query. It is
// stateless and safe for concurrent use; the knowledge base it reads is
// immutable.
type Router struct {
	kb    *knowledge.Base
	repos RepoSource
	rules []Rule

	// kbSearch is swappable in tests to prove which paths bypass it.
	kbSearch func(query string) (*domain.Entry, bool)
}

// NewRouter creates a Router over the given knowledge base and repository
// source and builds the fuzzy index once.
func NewRouter(kb *knowledge.Base, repos RepoSource) *Router {
	r := &Router{
		kb:       kb,
		repos:    repos,
		kbSearch: buildKBSearch(kb),
	}

	// Priority order is behavior: the loose "repo" list rule must come
	// after the detail rule, and the verbatim projects rule before the
	// fuzzy fallbacks.
	r.rules = []Rule{
		{Name: "github-link", Match: isGitHubOnly, Handle: r.handleGitHubLink},
		{Name: "linkedin-link", Match: isLinkedIn, Handle: r.handleLinkedInLink},
		{Name: "cv-download", Match: isCV, Handle: r.handleCVDownload},
		{Name: "repo-details", Match: wantsRepoDetails, Handle: r.handleRepoDetails},
		{Name: "repo-list", Match: wantsRepoList, Handle: r.handleRepoList},
		{Name: "contact", Match: mentionsContact, Handle: r.handleContact},
		{Name: "projects", Match: isProjectsQuery, Handle: r.handleProjects},
		{Name: "short-generic", Match: isShortGeneric, Handle: r.handleFuzzySearch},
		{Name: "fallback", Match: matchAny, Handle: r.handleFuzzySearch},
	}

	return r
}

// Handle normalizes the user text, walks the rule cascade, and returns the
// first matching rule's reply. Every path terminates in a user-visible
// string; no error escapes.
func (r *Router) Handle(ctx context.Context, text string) string {
	n := Normalize(text)
	for _, rule := range r.rules {
		if rule.Match(n) {
			return rule.Handle(ctx, n)
		}
	}
	// The fallback rule matches everything, so this is unreachable.
	return OutOfScopeReply()
}

// Rules exposes the cascade in priority order, letting the ordering be
// tested independently of handler logic.
func (r *Router) Rules() []Rule {
	return r.rules
}

func buildKBSearch(kb *knowledge.Base) func(string) (*domain.Entry, bool) {
	entries := kb.Entries()
	ix := fuzzy.NewIndex(fuzzy.DefaultThreshold)
	for _, entry := range entries {
		ix.Add(
			fuzzy.FieldValues{Weight: kbTitleWeight, Values: []string{entry.Title}},
			fuzzy.FieldValues{Weight: kbKeywordWeight, Values: entry.Keywords},
		)
	}

	return func(query string) (*domain.Entry, bool) {
		result, ok := ix.Best(query)
		if !ok {
			return nil, false
		}
		return entries[result.Index], true
	}
}

func (r *Router) handleGitHubLink(_ context.Context, _ string) string {
	return "GitHub: " + r.kb.Links().GitHubProfile
}

func (r *Router) handleLinkedInLink(_ context.Context, _ string) string {
	return "LinkedIn: " + r.kb.Links().LinkedIn
}

func (r *Router) handleCVDownload(_ context.Context, _ string) string {
	return FormatCVLink(r.kb.Links())
}

func (r *Router) handleRepoList(ctx context.Context, _ string) string {
	repos, err := r.repos.List(ctx)
	if err != nil {
		return RepoFetchFailedReply(r.kb.Links().GitHubProfile)
	}
	return FormatRepoList(repos, MaxListedRepos, r.kb.Links().GitHubProfile)
}

func (r *Router) handleRepoDetails(ctx context.Context, n string) string {
	name := extractRepoName(n)
	if name == "" {
		// Prompt before fetching: no name means no lookup to do.
		return RepoNamePrompt()
	}

	repo, err := r.resolveRepo(ctx, name)
	switch {
	case errors.Is(err, domain.ErrRepoDataUnavailable):
		return RepoFetchFailedReply(r.kb.Links().GitHubProfile)
	case errors.Is(err, domain.ErrAmbiguousRepoName):
		return RepoNotFoundReply()
	}
	return FormatRepoDetails(repo)
}

// resolveRepo fuzzy-matches the requested name against the repository
// list. A fetch failure classifies as domain.ErrRepoDataUnavailable and a
// name no repository plausibly matches as domain.ErrAmbiguousRepoName.
func (r *Router) resolveRepo(ctx context.Context, name string) (domain.RepoSummary, error) {
	repos, err := r.repos.List(ctx)
	if err != nil {
		return domain.RepoSummary{}, fmt.Errorf("%w: %w", domain.ErrRepoDataUnavailable, err)
	}

	ix := fuzzy.NewIndex(fuzzy.DefaultThreshold)
	for _, repo := range repos {
		ix.Add(
			fuzzy.FieldValues{Weight: repoFieldWeight, Values: []string{repo.Name}},
			fuzzy.FieldValues{Weight: repoFieldWeight, Values: []string{repo.Description}},
		)
	}

	result, ok := ix.Best(name)
	if !ok {
		return domain.RepoSummary{}, fmt.Errorf("%q: %w", name, domain.ErrAmbiguousRepoName)
	}
	return repos[result.Index], nil
}

func (r *Router) handleContact(_ context.Context, _ string) string {
	if entry, ok := r.kb.ByID("contact"); ok {
		return entry.Answer
	}

	links := r.kb.Links()
	return "WhatsApp: " + links.WhatsApp + "\nCall: " + links.Phone + "\nEmail: " + links.Email
}

func (r *Router) handleProjects(_ context.Context, _ string) string {
	if entry, ok := r.kb.ByID("projects"); ok {
		return entry.Answer
	}
	return "Ask a project name for details."
}

func (r *Router) handleFuzzySearch(_ context.Context, n string) string {
	if entry, ok := r.kbSearch(n); ok {
		return entry.Answer
	}
	return OutOfScopeReply()
}
