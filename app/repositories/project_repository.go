package repositories

import (
	"context"

	"folio/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerProjectRepository implements ProjectRepository using BadgerDB
type BadgerProjectRepository struct {
	db *badger.DB
}

// NewBadgerProjectRepository creates a new BadgerProjectRepository
func NewBadgerProjectRepository(db *badger.DB) *BadgerProjectRepository {
	return &BadgerProjectRepository{db: db}
}

// List returns every project in collection order
func (r *BadgerProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(ProjectKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var project models.Project
			if err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &project)
			}); err != nil {
				return err
			}
			projects = append(projects, project)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID retrieves a project by ID
func (r *BadgerProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var project models.Project
	err := r.db.View(func(txn *badger.Txn) error {
		return getIndexed(txn, indexKey(ProjectIndexPrefix, id), &project)
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}
