package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"luminous/app/models"
	"luminous/app/repositories"
)

var (
	errCancelled = errors.New("operation cancelled")
	errNoStore   = errors.New("no post store exists, run 'luminous posts seed' first")
)

// HandleCommand handles posts subcommands and returns an exit code.
func HandleCommand(args []string) int {
	if len(args) < 1 {
		printPostsHelp()
		return 1
	}

	var err error
	switch args[0] {
	case "init":
		err = initStore()
	case "seed":
		err = seed()
	case "list":
		err = list()
	case "clean":
		err = clean()
	case "backup":
		err = backup()
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			return 1
		}
		err = restore(args[1])
	case "help":
		printPostsHelp()
		return 0
	default:
		fmt.Printf("Unknown posts command: %s\n\n", args[0])
		printPostsHelp()
		return 1
	}

	if errors.Is(err, errCancelled) {
		fmt.Println("Operation cancelled")
		return 1
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

// printPostsHelp prints help for posts subcommands.
func printPostsHelp() {
	helpText := `Usage: luminous posts <command>

Commands:
  init                            Create an empty post store
  seed                            Write the landing page posts into the store
  list                            Print the stored posts
  clean                           Delete every post and remove the store
  backup                          Export the stored posts as JSON
  restore [file]                  Replace the stored posts with a JSON export
  help                            Display this help message
`
	fmt.Println(helpText)
}

func storeExists() bool {
	_, err := os.Stat(dbPath)
	return err == nil
}

// withPosts opens the Badger store at dbPath for the duration of fn.
func withPosts(fn func(repo *repositories.BadgerPostRepository) error) error {
	db, err := openDB(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open post store at %s: %w", dbPath, err)
	}
	defer db.Close()
	return fn(repositories.NewBadgerPostRepository(db))
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}

func initStore() error {
	if storeExists() {
		return fmt.Errorf("post store already exists at %s, run 'luminous posts clean' first", dbPath)
	}
	err := withPosts(func(*repositories.BadgerPostRepository) error { return nil })
	if err != nil {
		return err
	}
	fmt.Printf("Initialized empty post store at %s\n", dbPath)
	return nil
}

func seed() error {
	posts := models.DefaultPosts()
	err := withPosts(func(repo *repositories.BadgerPostRepository) error {
		return repo.Seed(posts)
	})
	if err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}
	fmt.Printf("Seeded %d posts into %s\n", len(posts), dbPath)
	return nil
}

func storedPosts() ([]*models.Post, error) {
	if !storeExists() {
		return nil, errNoStore
	}
	var posts []*models.Post
	err := withPosts(func(repo *repositories.BadgerPostRepository) error {
		var err error
		posts, err = repo.List(0, 0)
		return err
	})
	return posts, err
}

func list() error {
	posts, err := storedPosts()
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("No posts stored")
		return nil
	}
	for _, p := range posts {
		fmt.Printf("%d\t%-10s\t%-14s\t%s\n", p.ID, p.Category, p.Date, p.Title)
	}
	return nil
}

// clean drops every post key before deleting the store directory.
func clean() error {
	if !storeExists() {
		fmt.Println("Post store is already clean (does not exist)")
		return nil
	}
	if !confirm("Delete every post and remove the store? This cannot be undone.") {
		return errCancelled
	}

	var removed int
	err := withPosts(func(repo *repositories.BadgerPostRepository) error {
		posts, err := repo.List(0, 0)
		if err != nil {
			return err
		}
		removed = len(posts)
		return repo.Clear()
	})
	if err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	if err := os.RemoveAll(dbPath); err != nil {
		return fmt.Errorf("failed to remove post store: %w", err)
	}
	fmt.Printf("Removed %d posts and deleted %s\n", removed, dbPath)
	return nil
}

// backup exports the stored posts to backupDir as a JSON array.
func backup() error {
	posts, err := storedPosts()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	file := filepath.Join(backupDir, fmt.Sprintf("posts_%d.json", time.Now().Unix()))
	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	fmt.Printf("Backed up %d posts to %s\n", len(posts), file)
	return nil
}

// restore validates a JSON export and replaces the stored posts with it.
func restore(file string) error {
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("backup file does not exist: %s", file)
	}
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	var posts []*models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return fmt.Errorf("invalid backup %s: %w", file, err)
	}
	if len(posts) == 0 {
		return fmt.Errorf("invalid backup %s: no posts", file)
	}
	if err := models.ValidateCatalog(posts); err != nil {
		return fmt.Errorf("invalid backup %s: %w", file, err)
	}

	if storeExists() && !confirm("Existing post store found. Replace its posts?") {
		return errCancelled
	}

	err = withPosts(func(repo *repositories.BadgerPostRepository) error {
		if err := repo.Clear(); err != nil {
			return err
		}
		return repo.Seed(posts)
	})
	if err != nil {
		return fmt.Errorf("failed to restore posts: %w", err)
	}
	fmt.Printf("Restored %d posts from %s\n", len(posts), file)
	return nil
}
