package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"luminous/app/repositories"
	"luminous/app/services"

	"github.com/gorilla/mux"
)

// PostController serves the read-only posts API
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	// Parse page parameter
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	// Parse per_page parameter
	perPage := services.DefaultPerPage
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = min(pp, services.MaxPerPage)
		}
	}

	posts, err := pc.postService.ListPosts(page, perPage)
	if err != nil {
		sendServerError(w, r, "Failed to fetch posts", err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts":    posts,
		"page":     page,
		"per_page": perPage,
	})
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendServerError(w, r, "Failed to fetch post", err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}
