package controllers

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"html/template"
	"net/http"

	"luminous/app/services"
	"luminous/app/views"

	"golang.org/x/crypto/blake2b"
)

// PageController renders the landing page
type PageController struct {
	pageService *services.PageService
	templates   map[string]*template.Template
}

// NewPageController creates a new PageController with the embedded templates
func NewPageController(pageService *services.PageService) (*PageController, error) {
	index, err := views.Load("index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &PageController{
		pageService: pageService,
		templates:   map[string]*template.Template{"index": index},
	}, nil
}

// Index renders the landing page. Responses carry a content hash ETag.
func (pc *PageController) Index(w http.ResponseWriter, r *http.Request) {
	page, err := pc.pageService.Build()
	if err != nil {
		sendServerError(w, r, "Failed to build page", err)
		return
	}

	var buf bytes.Buffer
	if err := pc.templates["index"].ExecuteTemplate(&buf, "layout", page); err != nil {
		sendServerError(w, r, "Failed to render page", err)
		return
	}

	etag := contentETag(buf.Bytes())
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func contentETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}
