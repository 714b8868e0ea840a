package service

import (
	"github.com/dgraph-io/badger/v4"
)

// Database and backup paths - variables to allow testing with different paths
var (
	dbPath    = "data/badger"
	backupDir = "data/backups"
)

// SetDBPath points the posts commands at a different Badger directory.
func SetDBPath(path string) {
	if path != "" {
		dbPath = path
	}
}

func openDB(path string) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(path).WithLogger(nil))
}
