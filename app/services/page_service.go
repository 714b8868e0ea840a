package services

import (
	"fmt"
	"time"

	"luminous/app/models"
)

const (
	heroTitle = "Explore Our Latest Stories"
	heroText  = "Dive into a world of captivating stories, insightful perspectives, and thought-provoking ideas."
)

// PageOptions carries the configurable parts of the landing page.
type PageOptions struct {
	Brand       string
	Tagline     string
	VideoURL    string
	ExternalURL string

	GradientHeading bool
	SmoothScroll    bool
	ScrollSpeed     float64
}

// PageService composes the landing page view model.
type PageService struct {
	posts  *PostService
	opts   PageOptions
	scroll ScrollRedirect
	now    func() time.Time
}

// NewPageService creates a new PageService
func NewPageService(posts *PostService, opts PageOptions) *PageService {
	return &PageService{
		posts:  posts,
		opts:   opts,
		scroll: NewScrollRedirect(opts.ScrollSpeed),
		now:    time.Now,
	}
}

// SetClock replaces the clock used for the footer year.
func (s *PageService) SetClock(now func() time.Time) {
	s.now = now
}

// Build renders the page model from the post provider.
func (s *PageService) Build() (*models.Page, error) {
	posts, err := s.posts.AllPosts()
	if err != nil {
		return nil, fmt.Errorf("failed to build page: %w", err)
	}

	return &models.Page{
		Brand:      s.opts.Brand,
		Tagline:    s.opts.Tagline,
		Nav:        models.NavLinks,
		Categories: models.Categories,

		HeroTitle: heroTitle,
		HeroText:  heroText,
		Posts:     posts,

		Background: models.Background{
			VideoURL: s.opts.VideoURL,
			MimeType: "video/mp4",
		},
		ExternalURL: s.opts.ExternalURL,

		Gradient:     models.DefaultGradient,
		GradientLive: s.opts.GradientHeading,

		SmoothScroll: s.opts.SmoothScroll,
		ScrollSpeed:  s.scroll.Speed,

		Socials: models.SocialLinks,
		Year:    s.now().Year(),
	}, nil
}
