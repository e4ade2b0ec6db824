package chat

import (
	"context"
	"strings"
)

// Rule is one step of the intent cascade: a named predicate plus its
// handler. Rules are evaluated in order with first-match-wins semantics,
// so the list itself defines the routing priority.
type Rule struct {
	Name   string
	Match  func(norm string) bool
	Handle func(ctx context.Context, norm string) string
}

// All predicates operate on normalized text only (see Normalize).

var githubOnlyPhrases = []string{
	"github",
	"github link",
	"github profile",
	"github url",
}

func isGitHubOnly(n string) bool {
	for _, p := range githubOnlyPhrases {
		if n == p {
			return true
		}
	}
	return false
}

func isLinkedIn(n string) bool {
	return n == "linkedin" ||
		strings.Contains(n, "linkedin link") ||
		strings.Contains(n, "linkedin url")
}

func isCV(n string) bool {
	return n == "cv" || n == "resume" ||
		strings.Contains(n, "download cv") ||
		strings.Contains(n, "download resume")
}

// Detail phrases are ordered longest-first so extractRepoName strips the
// most specific matching trigger.
var repoDetailPhrases = []string{
	"details of repository",
	"details of repo",
	"repository details",
	"repo details",
	"about repository",
	"about repo",
}

func wantsRepoDetails(n string) bool {
	for _, p := range repoDetailPhrases {
		if strings.Contains(n, p) {
			return true
		}
	}
	return false
}

// extractRepoName strips the matched detail trigger out of the normalized
// text; whatever remains is treated as the requested repository name.
func extractRepoName(n string) string {
	for _, p := range repoDetailPhrases {
		n = strings.Replace(n, p, "", 1)
	}
	return strings.TrimSpace(n)
}

// The list rule is deliberately loose: any occurrence of the bare
// substring "repo" qualifies. It runs after the detail rule, so detail
// queries are never swallowed by it; swapping that order changes
// observable behavior.
var repoListContains = []string{
	"repo list",
	"repos list",
	"list repos",
	"show repos",
	"show repositories",
	"github repos",
	"githhub repo list",
	"repo",
}

var repoListExact = []string{
	"all repo",
	"all repos",
	"all repositories",
}

func wantsRepoList(n string) bool {
	for _, p := range repoListContains {
		if strings.Contains(n, p) {
			return true
		}
	}
	for _, p := range repoListExact {
		if n == p {
			return true
		}
	}
	return false
}

var contactKeywords = []string{"contact", "whatsapp", "call", "phone", "email"}

func mentionsContact(n string) bool {
	for _, k := range contactKeywords {
		if strings.Contains(n, k) {
			return true
		}
	}
	return false
}

// isProjectsQuery catches the queries that should return the canned
// projects answer verbatim, bypassing fuzzy search to avoid near-miss
// ambiguity with the per-project entries.
func isProjectsQuery(n string) bool {
	return n == "projects" || n == "project" || strings.Contains(n, "project list")
}

var shortGenericQueries = []string{"project", "projects", "repo", "repos"}

func isShortGeneric(n string) bool {
	for _, q := range shortGenericQueries {
		if n == q {
			return true
		}
	}
	return false
}

func matchAny(string) bool {
	return true
}
