package repositories

import (
	"sort"

	"luminous/app/models"
)

// StaticPostRepository serves a fixed, validated post list from memory.
type StaticPostRepository struct {
	posts []*models.Post
	byID  map[int]*models.Post
}

// NewStaticPostRepository validates the catalog and takes a private copy of it.
func NewStaticPostRepository(posts []*models.Post) (*StaticPostRepository, error) {
	if err := models.ValidateCatalog(posts); err != nil {
		return nil, err
	}

	r := &StaticPostRepository{
		posts: make([]*models.Post, 0, len(posts)),
		byID:  make(map[int]*models.Post, len(posts)),
	}
	for _, p := range posts {
		c := p.Clone()
		r.posts = append(r.posts, c)
		r.byID[c.ID] = c
	}
	sort.SliceStable(r.posts, func(i, j int) bool {
		return r.posts[i].ID < r.posts[j].ID
	})
	return r, nil
}

// GetByID retrieves a post by ID
func (r *StaticPostRepository) GetByID(id int) (*models.Post, error) {
	post, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return post.Clone(), nil
}

// List retrieves a window of posts ordered by ID
func (r *StaticPostRepository) List(limit, offset int) ([]*models.Post, error) {
	start, end := window(len(r.posts), limit, offset)
	out := make([]*models.Post, 0, end-start)
	for _, p := range r.posts[start:end] {
		out = append(out, p.Clone())
	}
	return out, nil
}
