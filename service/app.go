package service

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"luminous/app/config"
	"luminous/app/models"
	"luminous/app/repositories"
	"luminous/app/routes"
)

// OpenPostRepository opens the post provider selected by cfg.Store.
// The returned close function releases the underlying store.
func OpenPostRepository(cfg *config.Config) (repositories.PostRepository, func() error, error) {
	switch cfg.Store {
	case config.StoreBadger:
		db, err := openDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open Badger DB at %s: %w", cfg.DBPath, err)
		}
		repo := repositories.NewBadgerPostRepository(db)
		if posts, err := repo.List(1, 0); err == nil && len(posts) == 0 {
			log.Printf("Badger store at %s has no posts; run 'luminous posts seed'", cfg.DBPath)
		}
		return repo, db.Close, nil
	default:
		repo, err := repositories.NewStaticPostRepository(models.DefaultPosts())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() error { return nil }, nil
	}
}

// RunAppServer starts the blog landing page server and blocks until it is interrupted.
func RunAppServer(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configFile := fs.String("config", "", "path to a config file (yaml, json or toml)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	posts, closeStore, err := OpenPostRepository(cfg)
	if err != nil {
		log.Printf("Failed to open post store: %v", err)
		return 1
	}
	defer closeStore()

	router, err := routes.SetupRoutes(cfg, posts)
	if err != nil {
		log.Printf("Failed to setup routes: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting Luminous Blog on %s (store: %s)", cfg.Addr, cfg.Store)
	if err := routes.StartServer(ctx, cfg.Addr, router, cfg.ShutdownTimeout); err != nil {
		log.Printf("Server error: %v", err)
		return 1
	}
	return 0
}
