package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"luminous/app/middleware"
)

// Helper methods for consistent response handling

func isAPIRequest(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api")
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if isAPIRequest(r) {
		sendJSON(w, status, map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}

// sendServerError logs err against the request id and answers with message only.
func sendServerError(w http.ResponseWriter, r *http.Request, message string, err error) {
	log.Printf("[%s] %s: %v", middleware.RequestIDFrom(r.Context()), message, err)
	sendError(w, r, message, http.StatusInternalServerError)
}
