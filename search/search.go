// Package search provides fuzzy lookup of a leaf by its window title, used
// by the exhibitor's JumpToTitle command. It is adapted from the teacher's
// fuzzy file-path search, ranking by match score with a frecency boost
// supplied by the caller instead of by path depth.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Candidate is one leaf title eligible for a JumpToTitle match, along with
// an opaque key the caller uses to map a match back to a frame.
type Candidate struct {
	Key   any
	Title string
}

// Match is a ranked search result.
type Match struct {
	Key            any
	Title          string
	Score          int
	MatchedIndexes []int
}

// Frecency maps a title to a recency/frequency score; higher is more
// recently/frequently focused. A nil Frecency disables the boost.
type Frecency func(title string) int

// Titles fuzzy-matches query against every candidate's Title, ranking
// matches by fuzzy score plus any frecency boost, descending. An exact
// title match is always ranked first regardless of frecency, so
// JumpToTitle("exact title") always picks that leaf as its jump target.
func Titles(candidates []Candidate, query string, frecency Frecency) []Match {
	if query == "" {
		return nil
	}

	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.Title
	}

	found := fuzzy.Find(query, titles)

	matches := make([]Match, 0, len(found))
	for _, m := range found {
		boost := 0
		if frecency != nil {
			boost = frecency(m.Str)
		}
		matches = append(matches, Match{
			Key:            candidates[m.Index].Key,
			Title:          m.Str,
			Score:          m.Score + boost,
			MatchedIndexes: m.MatchedIndexes,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		ei, ej := strings.EqualFold(matches[i].Title, query), strings.EqualFold(matches[j].Title, query)
		if ei != ej {
			return ei // exact match always first
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}
