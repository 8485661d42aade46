package service

import (
	"fmt"
	"os"

	"folio/app/repositories"

	"github.com/dgraph-io/badger/v4"
)

// WriteSnapshot writes a backup of the app's store to path.
func (a *App) WriteSnapshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := repositories.Snapshot(a.db, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	return nil
}

// restoreSnapshot loads a snapshot written by WriteSnapshot into db.
func restoreSnapshot(db *badger.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat snapshot: %w", err)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("snapshot file is empty: %s", path)
	}

	if err := db.DropAll(); err != nil {
		return fmt.Errorf("failed to drop all keys: %w", err)
	}
	return repositories.Restore(db, f)
}
