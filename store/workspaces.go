package store

import (
	"database/sql"
	"fmt"
)

// SetWorkspaceName associates name with the workspace on output outputIndex,
// overwriting any prior name.
func SetWorkspaceName(db *sql.DB, outputIndex int, name string) error {
	query := `
		INSERT INTO workspace_names (output_index, name) VALUES (?, ?)
		ON CONFLICT(output_index) DO UPDATE SET name = excluded.name
	`
	_, err := db.Exec(query, outputIndex, name)
	if err != nil {
		return fmt.Errorf("failed to set workspace name for output %d: %w", outputIndex, err)
	}
	return nil
}

// WorkspaceName returns the stored name for the workspace on outputIndex, and
// whether one was found.
func WorkspaceName(db *sql.DB, outputIndex int) (string, bool, error) {
	query := `SELECT name FROM workspace_names WHERE output_index = ?`
	var name string
	err := db.QueryRow(query, outputIndex).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get workspace name for output %d: %w", outputIndex, err)
	}
	return name, true, nil
}
