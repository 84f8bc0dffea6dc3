package store

import (
	"database/sql"
	"fmt"
	"time"
)

// FocusRecord is one title's focus-recency record.
type FocusRecord struct {
	Title       string
	Frequency   int
	LastFocused time.Time
}

// RecordFocus bumps title's frequency and last-focused timestamp, inserting
// it if this is its first time being focused. Called after a successful
// JumpToTitle so future searches favor recently/frequently reached windows.
func RecordFocus(db *sql.DB, title string) error {
	query := `
		INSERT INTO focus_history (title, frequency, last_focused)
		VALUES (?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(title) DO UPDATE SET
			frequency = frequency + 1,
			last_focused = CURRENT_TIMESTAMP
	`
	_, err := db.Exec(query, title)
	if err != nil {
		return fmt.Errorf("failed to record focus for %q: %w", title, err)
	}
	return nil
}

// RecentTitles returns up to limit focus records, most recently focused
// first.
func RecentTitles(db *sql.DB, limit int) ([]FocusRecord, error) {
	query := `SELECT title, frequency, last_focused FROM focus_history ORDER BY last_focused DESC LIMIT ?`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent titles: %w", err)
	}
	defer rows.Close()

	var items []FocusRecord
	for rows.Next() {
		var item FocusRecord
		if err := rows.Scan(&item.Title, &item.Frequency, &item.LastFocused); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FrecencyScores builds a search.Frecency-shaped lookup (title -> frequency)
// out of the stored focus history, for biasing JumpToTitle's ranking.
func FrecencyScores(db *sql.DB) (map[string]int, error) {
	records, err := RecentTitles(db, -1)
	if err != nil {
		return nil, err
	}
	scores := make(map[string]int, len(records))
	for _, r := range records {
		scores[r.Title] = r.Frequency
	}
	return scores, nil
}
