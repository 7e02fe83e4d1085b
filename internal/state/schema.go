package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/burrow/internal/db"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_path TEXT NOT NULL,
			selected_name TEXT
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	if _, err := db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (1)`); err != nil {
		return err
	}

	return migrateSchema(db)
}

func schemaVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version)
	return version, err
}

func migrateSchema(db *sql.DB) error {
	version, err := schemaVersion(db)
	if err != nil {
		return err
	}

	// v2: remember when the location was saved
	if version < 2 {
		err := dbutil.WithTx(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(`ALTER TABLE navigation_state ADD COLUMN saved_at INTEGER`); err != nil {
				return err
			}
			_, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (2)`)
			return err
		})
		if err != nil {
			return err
		}
	}

	return nil
}
