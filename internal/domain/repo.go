package domain

// RepoSummary is the normalized shape of one GitHub repository as produced
// by the data source boundary. The chat engine treats it as read-only.
// Forks are filtered out at the boundary, so Fork is false for every
// summary the engine ever sees.
type RepoSummary struct {
	Name        string
	URL         string
	Description string
	Stars       int
	Language    string
	UpdatedAt   string
	Fork        bool
}
