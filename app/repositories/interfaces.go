package repositories

import "luminous/app/models"

// PostRepository is the read-only post provider behind the landing page.
// List returns posts ordered by id; a limit <= 0 returns every post from offset on.
type PostRepository interface {
	GetByID(id int) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
}
