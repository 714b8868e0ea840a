package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Post represents a blog post card on the landing page.
type Post struct {
	ID       int    `json:"id" validate:"required,gt=0"`
	Title    string `json:"title" validate:"required,max=200"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Category string `json:"category" validate:"required,oneof=Lifestyle Travel Technology Food Health Culture"`
	ReadTime string `json:"readTime" validate:"required"`
}

// GradientPair is a two-stop gradient applied to the animated heading.
type GradientPair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Link is a navigation or footer anchor. Href "#" marks a decorative link.
type Link struct {
	Label string
	Href  string
}

// Page is the view model rendered by the landing page template.
type Page struct {
	Brand      string
	Tagline    string
	Nav        []Link
	Categories []string

	HeroTitle string
	HeroText  string
	Posts     []*Post

	Background  Background
	ExternalURL string

	Gradient     GradientPair
	GradientLive bool

	SmoothScroll bool
	ScrollSpeed  float64

	Socials []Link
	Year    int
}

// Background describes the decorative looping video behind the page.
type Background struct {
	VideoURL string
	MimeType string
}
