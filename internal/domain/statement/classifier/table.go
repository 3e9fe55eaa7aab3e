// Package classifier decides, per candidate record, whether it is a
// withdrawal, which payment method it used, and which spending category it
// belongs to, and applies the final exclusion sweep.
//
// The keyword tables are ordered (predicate, result) lists with a default
// tail. Matching is backed by an Aho-Corasick automaton so a description is
// scanned once regardless of how many keywords are loaded; list order is
// encoded as priority so first-match-wins semantics are preserved exactly.
package classifier

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

type tableEntry struct {
	result   string
	keywords []string
}

// table is an ordered keyword lookup with a fixed fallback result.
type table struct {
	matcher  *ahocorasick.Matcher
	owner    []int // pattern index -> entry index
	entries  []tableEntry
	fallback string
}

func newTable(entries []tableEntry, fallback string) *table {
	var patterns []string
	var owner []int
	for ei, e := range entries {
		for _, kw := range e.keywords {
			patterns = append(patterns, strings.ToLower(kw))
			owner = append(owner, ei)
		}
	}
	return &table{
		matcher:  ahocorasick.NewStringMatcher(patterns),
		owner:    owner,
		entries:  entries,
		fallback: fallback,
	}
}

// lookup returns the result of the earliest entry whose keywords appear in
// the description, or the fallback when nothing matches.
func (t *table) lookup(description string) string {
	hits := t.matcher.Match([]byte(strings.ToLower(description)))
	if len(hits) == 0 {
		return t.fallback
	}
	best := len(t.entries)
	for _, h := range hits {
		if h >= 0 && h < len(t.owner) && t.owner[h] < best {
			best = t.owner[h]
		}
	}
	if best == len(t.entries) {
		return t.fallback
	}
	return t.entries[best].result
}
