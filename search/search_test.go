package search

import "testing"

func TestTitlesEmptyQueryReturnsNothing(t *testing.T) {
	got := Titles([]Candidate{{Key: 1, Title: "terminal"}}, "", nil)
	if got != nil {
		t.Fatalf("expected nil for empty query, got %v", got)
	}
}

func TestTitlesExactMatchAlwaysRankedFirst(t *testing.T) {
	candidates := []Candidate{
		{Key: 1, Title: "firefox - mozilla"},
		{Key: 2, Title: "term"},
		{Key: 3, Title: "terminal"},
	}

	got := Titles(candidates, "terminal", nil)
	if len(got) == 0 {
		t.Fatalf("expected at least one match")
	}
	if got[0].Key != 3 {
		t.Fatalf("expected exact title match ranked first, got key=%v title=%q", got[0].Key, got[0].Title)
	}
}

func TestTitlesFrecencyBoostsRanking(t *testing.T) {
	candidates := []Candidate{
		{Key: 1, Title: "editro"},
		{Key: 2, Title: "editor"},
	}

	frecency := func(title string) int {
		if title == "editro" {
			return 1000
		}
		return 0
	}

	got := Titles(candidates, "edit", frecency)
	if len(got) < 2 {
		t.Fatalf("expected both candidates to fuzzy-match 'edit', got %d", len(got))
	}
	if got[0].Key != 1 {
		t.Fatalf("expected frecency-boosted candidate ranked first, got key=%v", got[0].Key)
	}
}
