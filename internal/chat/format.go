package chat

import (
	"fmt"
	"strings"

	"github.com/gujjar-pranav/portfolio/internal/domain"
)

// Replies use simple markup the presentation layer renders: **bold**,
// bullet lists, and [label](url) links.

// MaxListedRepos caps how many repositories a "repo list" reply shows.
const MaxListedRepos = 25

// FormatRepoList renders up to max repositories as a bulleted list with a
// profile link footer. The input is expected newest-updated first.
func FormatRepoList(repos []domain.RepoSummary, max int, profileURL string) string {
	if max > 0 && len(repos) > max {
		repos = repos[:max]
	}

	lines := make([]string, 0, len(repos))
	for _, r := range repos {
		line := fmt.Sprintf("- **%s** (%s)\n  %s", r.Name, repoMeta(r), r.URL)
		if r.Description != "" {
			line += "\n  " + r.Description
		}
		lines = append(lines, line)
	}

	return "**Latest GitHub repos (real-time):**\n\n" +
		strings.Join(lines, "\n\n") +
		"\n\nFull profile: " + profileURL
}

// FormatRepoDetails renders the full detail block for one repository.
func FormatRepoDetails(r domain.RepoSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)\n\n- Repo: %s\n", r.Name, repoMeta(r), r.URL)
	if r.Description != "" {
		fmt.Fprintf(&b, "- About: %s\n", r.Description)
	}
	fmt.Fprintf(&b, "- Updated: %s", r.UpdatedAt)
	return b.String()
}

// repoMeta renders the "language · star count" fragment, with an em-dash
// standing in for a missing language.
func repoMeta(r domain.RepoSummary) string {
	language := r.Language
	if language == "" {
		language = "—"
	}
	return fmt.Sprintf("%s · ★ %d", language, r.Stars)
}

// FormatCVLink renders the resume download reply.
func FormatCVLink(links *domain.Links) string {
	return fmt.Sprintf("**Download Resume (PDF):** [%s](%s)", links.ResumeFilename, links.ResumePDF)
}

// RepoFetchFailedReply is the recovery message when the repository data
// source could not supply data. It always carries the static profile URL.
func RepoFetchFailedReply(profileURL string) string {
	return "I couldn't fetch repos right now.\n\nGitHub profile: " + profileURL
}

// RepoNamePrompt asks the user to name a repository.
func RepoNamePrompt() string {
	return "Tell me the repo name.\nExample: \"repo details review-sense-ai\""
}

// RepoNotFoundReply is returned when no repository clears the similarity
// threshold for a requested name.
func RepoNotFoundReply() string {
	return "I couldn't find that repo. Try \"repo list\" or paste the repo name."
}

// OutOfScopeReply lists the supported topic categories and example
// queries. Returned whenever no rule or similarity search produces a
// qualifying hit.
func OutOfScopeReply() string {
	return "I can help with Pranav's portfolio topics:\n\n" +
		"- **Projects** (details + GitHub/demo links)\n" +
		"- **Skills / strengths**\n" +
		"- **Experience / achievements (ROI)**\n" +
		"- **Education / certifications**\n" +
		"- **Contact / relocation**\n" +
		"- **Links** (GitHub, LinkedIn, CV)\n\n" +
		"Try: \"projects\", \"ReviewSense AI\", \"education\", \"certifications\", \"repo list\", \"download cv\", \"contact\"."
}

// Greeting is the assistant message every fresh session starts with.
func Greeting() string {
	return "Hi! I'm **Pranav's portfolio assistant** (free + offline).\n\n" +
		"Ask about **projects, repo list/details, skills, strengths, achievements, experience, " +
		"education, certifications, contact, GitHub/LinkedIn, or CV download**."
}

// Topics returns the example queries surfaced by the help panel.
func Topics() []string {
	return []string{
		"projects",
		"review sense ai",
		"diabatic app",
		"repo list",
		"repo details review-sense-ai",
		"education",
		"certifications",
		"contact whatsapp",
		"download cv",
		"links",
	}
}
