// Package storage provides the string-keyed store the session list is
// persisted in. It plays the role browser local storage plays for a web page:
// one opaque string per key, replaced wholesale on every write.
package storage

import (
	"fmt"

	"github.com/strrl/learning-journey/internal/config"
)

// Store is a string-keyed value store.
type Store interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)
	// Set replaces the value for key
	Set(key, value string) error
	// Close releases the underlying resources
	Close() error
}

// Open opens the store for the given driver at path.
func Open(driver, path string) (Store, error) {
	switch driver {
	case config.StoreFile, "":
		return OpenFile(path)
	case config.StoreDuckDB:
		return OpenDuckDB(path)
	case config.StoreSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store driver %q (want file, duckdb or sqlite)", driver)
	}
}
