package repositories

import (
	"errors"
	"fmt"

	"luminous/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves a window of posts ordered by ID
func (r *BadgerPostRepository) List(limit, offset int) ([]*models.Post, error) {
	if offset < 0 {
		offset = 0
	}
	posts := []*models.Post{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		// Skip offset items
		count := 0
		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if count < offset {
				count++
				continue
			}
			if limit > 0 && count-offset >= limit {
				break
			}

			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %w", err)
			}
			posts = append(posts, &post)
			count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Seed validates the catalog and upserts every post in a single transaction.
func (r *BadgerPostRepository) Seed(posts []*models.Post) error {
	if err := models.ValidateCatalog(posts); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		for _, post := range posts {
			data, err := marshalEntity(post)
			if err != nil {
				return err
			}
			if err := txn.Set(postKey(post.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes every post.
func (r *BadgerPostRepository) Clear() error {
	return r.db.DropPrefix([]byte(PostKeyPrefix))
}
