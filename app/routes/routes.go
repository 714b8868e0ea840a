package routes

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"luminous/app/config"
	"luminous/app/controllers"
	"luminous/app/middleware"
	"luminous/app/repositories"
	"luminous/app/services"
	"luminous/app/static"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(cfg *config.Config, posts repositories.PostRepository) (*mux.Router, error) {
	postService := services.NewPostService(posts)
	pageService := services.NewPageService(postService, cfg.PageOptions())
	gradientService := services.NewGradientService(cfg.GradientInterval)

	pageController, err := controllers.NewPageController(pageService)
	if err != nil {
		return nil, err
	}
	postController := controllers.NewPostController(postService)
	gradientController := controllers.NewGradientController(gradientService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
			return
		}
		http.NotFound(w, r)
	})

	// Serve embedded static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	// Web routes
	router.HandleFunc("/", pageController.Index).Methods("GET", "HEAD")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	api.HandleFunc("/posts", postController.Index).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")
	api.HandleFunc("/gradient", gradientController.Show).Methods("GET")
	api.HandleFunc("/gradient/stream", gradientController.Stream).Methods("GET")

	return router, nil
}

// StartServer serves handler on addr until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout.
func StartServer(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("server exited")
	return nil
}
