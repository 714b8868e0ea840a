package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPost() *Post {
	return &Post{
		ID:       1,
		Title:    "Valid Title",
		Excerpt:  "A short excerpt",
		Date:     "June 15, 2023",
		Category: "Lifestyle",
		ReadTime: "5 min read",
	}
}

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Post)
		wantErr bool
	}{
		{
			name:    "valid post",
			mutate:  func(p *Post) {},
			wantErr: false,
		},
		{
			name:    "zero id",
			mutate:  func(p *Post) { p.ID = 0 },
			wantErr: true,
		},
		{
			name:    "empty title",
			mutate:  func(p *Post) { p.Title = "" },
			wantErr: true,
		},
		{
			name:    "empty excerpt",
			mutate:  func(p *Post) { p.Excerpt = "" },
			wantErr: true,
		},
		{
			name:    "unknown category",
			mutate:  func(p *Post) { p.Category = "Sports" },
			wantErr: true,
		},
		{
			name:    "missing read time",
			mutate:  func(p *Post) { p.ReadTime = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.mutate(post)
			err := post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostClone(t *testing.T) {
	post := validPost()
	clone := post.Clone()

	assert.Equal(t, post, clone)
	clone.Title = "Changed"
	assert.Equal(t, "Valid Title", post.Title)
}

func TestValidateCatalog(t *testing.T) {
	t.Run("default posts are valid", func(t *testing.T) {
		assert.NoError(t, ValidateCatalog(DefaultPosts()))
	})

	t.Run("duplicate id", func(t *testing.T) {
		a, b := validPost(), validPost()
		err := ValidateCatalog([]*Post{a, b})
		assert.True(t, errors.Is(err, ErrDuplicatePostID))
	})

	t.Run("nil post", func(t *testing.T) {
		err := ValidateCatalog([]*Post{validPost(), nil})
		assert.Error(t, err)
	})

	t.Run("invalid post", func(t *testing.T) {
		p := validPost()
		p.Category = ""
		assert.Error(t, ValidateCatalog([]*Post{p}))
	})
}

func TestDefaultPosts(t *testing.T) {
	posts := DefaultPosts()

	titles := make([]string, 0, len(posts))
	for i, p := range posts {
		assert.Equal(t, i+1, p.ID)
		assert.Contains(t, Categories, p.Category)
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{
		"The Art of Mindful Living",
		"Exploring Hidden Gems in South America",
		"The Future of Sustainable Tech",
		"Essential Cooking Techniques Everyone Should Know",
	}, titles)

	// Each call hands out independent records.
	posts[0].Title = "mutated"
	assert.Equal(t, "The Art of Mindful Living", DefaultPosts()[0].Title)
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette, 10)
	assert.Contains(t, Palette, DefaultGradient.From)
	assert.Contains(t, Palette, DefaultGradient.To)
}
