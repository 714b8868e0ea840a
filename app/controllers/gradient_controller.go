package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"luminous/app/models"
	"luminous/app/services"
)

// GradientController delivers heading gradients to the browser
type GradientController struct {
	gradients *services.GradientService
}

// NewGradientController creates a new GradientController
func NewGradientController(gradients *services.GradientService) *GradientController {
	return &GradientController{gradients: gradients}
}

// Show returns one freshly drawn gradient pair
func (gc *GradientController) Show(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, gc.gradients.Draw())
}

// Stream pushes a gradient event on every tick as Server-Sent Events.
// The cycler is mounted for the lifetime of the connection.
func (gc *GradientController) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		sendError(w, r, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	cycler := gc.gradients.NewCycler()
	if err := writeGradientEvent(w, cycler.Current()); err != nil {
		return
	}
	flusher.Flush()

	err := cycler.Mount(func(pair models.GradientPair) {
		if err := writeGradientEvent(w, pair); err != nil {
			log.Printf("gradient stream write failed: %v", err)
			return
		}
		flusher.Flush()
	})
	if err != nil {
		log.Printf("gradient stream: %v", err)
		return
	}
	defer cycler.Unmount()

	<-r.Context().Done()
}

func writeGradientEvent(w io.Writer, pair models.GradientPair) error {
	data, err := json.Marshal(pair)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: gradient\ndata: %s\n\n", data)
	return err
}
