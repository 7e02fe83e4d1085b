package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/burrow/internal/db"
)

// NavigationState is the location the browser was showing.
type NavigationState struct {
	CurrentPath  string
	SelectedName string
	SavedAt      time.Time
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT current_path, selected_name, saved_at
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var selectedName sql.NullString
	var savedAt sql.NullInt64

	err := row.Scan(&state.CurrentPath, &selectedName, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SelectedName = dbutil.NullStringValue(selectedName)
	if savedAt.Valid {
		state.SavedAt = time.Unix(savedAt.Int64, 0)
	}

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	savedAt := state.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := db.Exec(`
		INSERT INTO navigation_state (id, current_path, selected_name, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_path = excluded.current_path,
			selected_name = excluded.selected_name,
			saved_at = excluded.saved_at
	`, state.CurrentPath, dbutil.NullString(state.SelectedName), savedAt.Unix())

	return err
}
