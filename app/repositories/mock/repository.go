package mock

import (
	"sort"
	"sync"

	"luminous/app/models"
	"luminous/app/repositories"
)

// PostRepository is an in-memory PostRepository whose failures can be scripted.
type PostRepository struct {
	posts map[int]*models.Post
	mutex sync.RWMutex

	// Err, when set, is returned by every call.
	Err   error
	Calls int
}

func NewPostRepository(posts ...*models.Post) *PostRepository {
	m := &PostRepository{posts: make(map[int]*models.Post)}
	for _, p := range posts {
		m.posts[p.ID] = p
	}
	return m
}

func (m *PostRepository) Put(post *models.Post) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts[post.ID] = post
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[int]*models.Post)
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}
	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})
	if offset >= len(posts) {
		return []*models.Post{}, nil
	}
	if offset < 0 {
		offset = 0
	}
	end := len(posts)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return posts[offset:end], nil
}
