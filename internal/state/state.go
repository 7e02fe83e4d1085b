// Package state remembers where the browser was left so the next session can
// reopen the same directory with the same entry selected.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "burrow"
	dbFileName   = "state.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database. Navigation saves are debounced; Close
// flushes the last pending one.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *NavigationState
	lastErr   error
}

// Open opens the state database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens or creates the state database at dbPath. ":memory:" is
// accepted for throwaway state.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// DefaultPath returns $XDG_DATA_HOME/burrow/state.db.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Close flushes any pending save and closes the database. It also reports
// the failure of the last background save, if any.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	saveErr := m.lastErr
	m.saveMu.Unlock()

	if pending != nil {
		saveErr = saveNavigation(m.db, *pending)
	}

	return errors.Join(saveErr, m.db.Close())
}

// GetNavigation returns the saved location, or nil when none was saved.
func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// SaveNavigation records state after saveDebounce; a newer call replaces a
// pending one.
func (m *Manager) SaveNavigation(state NavigationState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			err := saveNavigation(m.db, *pending)
			m.saveMu.Lock()
			m.lastErr = err
			m.saveMu.Unlock()
		}
	})
}
