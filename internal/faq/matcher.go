package faq

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the maximum normalized edit distance accepted by the
// fuzzy pass, on a 0 (identical) to 1 (nothing in common) scale.
const DefaultThreshold = 0.4

// MatchResult is the outcome of a lookup. Matched is false when neither pass
// found an acceptable entry; Answer is only meaningful when Matched is true.
type MatchResult struct {
	Matched bool
	Answer  string
}

// Matcher resolves normalized queries against a Store: first by substring
// containment in store order, then by fuzzy distance against every key.
type Matcher struct {
	store     *Store
	threshold float64
}

// NewMatcher creates a Matcher over the given store. A non-positive threshold
// falls back to DefaultThreshold.
func NewMatcher(store *Store, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{store: store, threshold: threshold}
}

// Match looks up raw user text. The input is normalized internally, so
// callers may pass the message content as received.
//
// An empty normalized query never matches: without the guard the containment
// pass would hand every empty message the first FAQ answer, since every key
// trivially "contains" nothing. Empty queries fall through to no-match.
func (m *Matcher) Match(raw string) MatchResult {
	query := Normalize(raw)
	if query == "" {
		return MatchResult{}
	}

	for _, e := range m.store.Entries() {
		if strings.Contains(query, e.Key) {
			return MatchResult{Matched: true, Answer: e.Answer}
		}
	}

	best := -1
	bestScore := 1.0
	for i, e := range m.store.Entries() {
		score := distance(query, e.Key)
		if score < bestScore {
			best = i
			bestScore = score
		}
	}
	if best >= 0 && bestScore <= m.threshold {
		return MatchResult{Matched: true, Answer: m.store.Entries()[best].Answer}
	}
	return MatchResult{}
}

// distance is the Levenshtein edit distance between a and b normalized by the
// longer length, so it ranges from 0 (equal) to 1 (fully dissimilar).
func distance(a, b string) float64 {
	if a == b {
		return 0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
