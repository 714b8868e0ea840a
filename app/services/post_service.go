package services

import (
	"fmt"
	"math"

	"luminous/app/models"
	"luminous/app/repositories"
)

// DefaultPerPage is the page size used when the caller gives none.
const DefaultPerPage = 10

// MaxPerPage caps the page size a caller may request.
const MaxPerPage = 100

// PostService handles read access to blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves a paginated list of posts
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	// Pages whose offset does not fit in an int are past the end of any list.
	if page-1 > math.MaxInt/perPage {
		return []*models.Post{}, nil
	}

	offset := (page - 1) * perPage
	posts, err := s.postRepo.List(perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// AllPosts retrieves every post in id order
func (s *PostService) AllPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
