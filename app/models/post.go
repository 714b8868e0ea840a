package models

import (
	"errors"
	"fmt"
)

// ErrDuplicatePostID is returned when two posts in a catalog share an id.
var ErrDuplicatePostID = errors.New("duplicate post id")

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// Clone returns a copy of the post so callers cannot mutate shared records.
func (p *Post) Clone() *Post {
	c := *p
	return &c
}

// ValidateCatalog validates every post and checks that ids are unique.
func ValidateCatalog(posts []*Post) error {
	seen := make(map[int]struct{}, len(posts))
	for i, post := range posts {
		if post == nil {
			return fmt.Errorf("post at index %d is nil", i)
		}
		if err := post.Validate(); err != nil {
			return fmt.Errorf("post %d: %w", post.ID, err)
		}
		if _, ok := seen[post.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicatePostID, post.ID)
		}
		seen[post.ID] = struct{}{}
	}
	return nil
}
