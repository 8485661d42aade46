package repositories

import (
	"context"

	"folio/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogPostRepository implements BlogPostRepository using BadgerDB
type BadgerBlogPostRepository struct {
	db *badger.DB
}

// NewBadgerBlogPostRepository creates a new BadgerBlogPostRepository
func NewBadgerBlogPostRepository(db *badger.DB) *BadgerBlogPostRepository {
	return &BadgerBlogPostRepository{db: db}
}

// List returns every post in collection order
func (r *BadgerBlogPostRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	posts := make([]models.BlogPost, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var post models.BlogPost
			if err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			}); err != nil {
				return err
			}
			posts = append(posts, post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBySlug retrieves a post by slug
func (r *BadgerBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var post models.BlogPost
	err := r.db.View(func(txn *badger.Txn) error {
		return getIndexed(txn, indexKey(PostIndexPrefix, slug), &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}
