// Package fuzzy provides a small weighted approximate-string index used to
// match free-text queries against knowledge entries and repository names.
// Scores are distances on a 0-1 scale where 0 is an exact match; candidates
// above the configured threshold are treated as no-match.
package fuzzy

import (
	"math"
	"sort"
	"strings"
)

// DefaultThreshold is the maximum acceptable distance for a candidate to
// count as a match.
const DefaultThreshold = 0.45

// FieldValues is one weighted field of a document: a weight plus one or
// more phrasings (a title, or a list of trigger keywords).
type FieldValues struct {
	Weight float64
	Values []string
}

// Result is a single search hit. Index refers to the position of the
// document in insertion order.
type Result struct {
	Index int
	Score float64
}

type document struct {
	fields []FieldValues
}

// Index is an immutable-after-build approximate search index. Ties are
// broken by insertion order: the earlier document wins.
type Index struct {
	threshold float64
	docs      []document
}

// NewIndex creates an empty index with the given acceptance threshold.
// A non-positive threshold falls back to DefaultThreshold.
func NewIndex(threshold float64) *Index {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Index{threshold: threshold}
}

// Add appends a document with the given weighted fields. Values are
// normalized to lowercase before comparison.
func (ix *Index) Add(fields ...FieldValues) {
	doc := document{fields: make([]FieldValues, 0, len(fields))}
	for _, f := range fields {
		values := make([]string, 0, len(f.Values))
		for _, v := range f.Values {
			v = collapseSpaces(strings.ToLower(strings.TrimSpace(v)))
			if v != "" {
				values = append(values, v)
			}
		}
		doc.fields = append(doc.fields, FieldValues{Weight: f.Weight, Values: values})
	}
	ix.docs = append(ix.docs, doc)
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Search returns all documents whose score clears the threshold, best
// first. The sort is stable, so equal scores keep insertion order.
func (ix *Index) Search(query string) []Result {
	query = collapseSpaces(strings.ToLower(strings.TrimSpace(query)))
	if query == "" || len(ix.docs) == 0 {
		return nil
	}

	var results []Result
	for i, doc := range ix.docs {
		score := scoreDocument(query, doc)
		if score <= ix.threshold {
			results = append(results, Result{Index: i, Score: score})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score < results[b].Score
	})
	return results
}

// Best returns the single best hit, if any clears the threshold.
func (ix *Index) Best(query string) (Result, bool) {
	results := ix.Search(query)
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}

// scoreDocument combines per-field scores as a product of powers, the same
// shape Fuse-style weighted matching uses: an unmatched field contributes a
// neutral 1, a perfect field match drives the whole score to 0.
func scoreDocument(query string, doc document) float64 {
	score := 1.0
	for _, f := range doc.fields {
		if len(f.Values) == 0 || f.Weight <= 0 {
			continue
		}
		best := 1.0
		for _, v := range f.Values {
			if s := distance(query, v); s < best {
				best = s
			}
		}
		score *= math.Pow(best, f.Weight)
	}
	return score
}

// distance returns the normalized edit distance between query and value in
// [0,1], tolerating partial phrasing: the better of whole-string distance
// and the best token-window alignment in either direction.
func distance(query, value string) float64 {
	if query == value {
		return 0
	}

	best := normalizedLevenshtein(query, value)

	qTokens := strings.Fields(query)
	vTokens := strings.Fields(value)
	if w := bestWindow(qTokens, value, len(vTokens)); w < best {
		best = w
	}
	if w := bestWindow(vTokens, query, len(qTokens)); w < best {
		best = w
	}
	return best
}

// bestWindow slides a window of size tokens over haystack and returns the
// lowest normalized distance between any window and needle.
func bestWindow(haystack []string, needle string, size int) float64 {
	if size <= 0 || size > len(haystack) {
		return 1.0
	}

	best := 1.0
	for i := 0; i+size <= len(haystack); i++ {
		window := strings.Join(haystack[i:i+size], " ")
		if s := normalizedLevenshtein(window, needle); s < best {
			best = s
		}
	}
	return best
}

// normalizedLevenshtein computes edit distance scaled by the longer length.
func normalizedLevenshtein(s1, s2 string) float64 {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 1
	}

	dist := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	return float64(dist) / float64(maxLen)
}

// levenshteinDistance computes the edit distance between two strings using
// the two-row dynamic programming form.
func levenshteinDistance(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	len1, len2 := len(r1), len(r2)

	prev := make([]int, len2+1)
	curr := make([]int, len2+1)
	for j := 0; j <= len2; j++ {
		prev[j] = j
	}

	for i := 1; i <= len1; i++ {
		curr[0] = i
		for j := 1; j <= len2; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len2]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
