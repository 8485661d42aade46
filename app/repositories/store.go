package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"

	"folio/app/models"

	"github.com/dgraph-io/badger/v4"
)

// Open opens the content store. An empty path keeps the store in memory.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return db, nil
}

// Seed replaces the store contents with the given collections, keeping their
// order. Duplicate IDs or slugs abort the seed with ErrDuplicateKey.
func Seed(ctx context.Context, db *badger.DB, projects []models.Project, posts []models.BlogPost) error {
	if err := db.DropAll(); err != nil {
		return fmt.Errorf("failed to drop all keys: %w", err)
	}

	return db.Update(func(txn *badger.Txn) error {
		for i := range projects {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := positionKey(ProjectKeyPrefix, i)
			if err := putIndexed(txn, indexKey(ProjectIndexPrefix, projects[i].ID), key, &projects[i]); err != nil {
				return fmt.Errorf("project %q: %w", projects[i].ID, err)
			}
		}
		for i := range posts {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := positionKey(PostKeyPrefix, i)
			if err := putIndexed(txn, indexKey(PostIndexPrefix, posts[i].Slug), key, &posts[i]); err != nil {
				return fmt.Errorf("post %q: %w", posts[i].Slug, err)
			}
		}
		return nil
	})
}

func putIndexed(txn *badger.Txn, index, key []byte, entity interface{}) error {
	_, err := txn.Get(index)
	if err == nil {
		return ErrDuplicateKey
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}

	data, err := marshalEntity(entity)
	if err != nil {
		return err
	}
	if err := txn.Set(key, data); err != nil {
		return err
	}
	return txn.Set(index, key)
}

// Snapshot writes a full backup of the store to w
func Snapshot(db *badger.DB, w io.Writer) error {
	if _, err := db.Backup(w, 0); err != nil {
		return fmt.Errorf("failed to backup store: %w", err)
	}
	return nil
}

// Restore loads a backup written by Snapshot into an empty store
func Restore(db *badger.DB, r io.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic occurred during restore: %v", p)
		}
	}()
	if err := db.Load(r, 16); err != nil {
		return fmt.Errorf("failed to restore store: %w", err)
	}
	return nil
}
