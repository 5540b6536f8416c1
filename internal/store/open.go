package store

import (
	"fmt"
	"time"

	"github.com/budgetplanner/backend/internal/database"
	"github.com/rs/zerolog/log"
)

// Backend selects the implementation of the stores.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

// IsValid reports whether b is a known backend.
func (b Backend) IsValid() bool {
	return b == BackendMemory || b == BackendSQLite
}

// Open returns the Stores for the backend. dsn is only used by the
// SQLite backend.
func Open(backend Backend, dsn string, now func() time.Time) (Stores, error) {
	switch backend {
	case BackendMemory:
		log.Debug().Str("backend", string(backend)).Msg("Store")
		return NewMemoryStores(now), nil

	case BackendSQLite:
		if dsn == "" {
			dsn = database.MemoryDSN
		}
		log.Debug().Str("backend", string(backend)).Str("dsn", dsn).Msg("Store")

		db, err := database.Open(dsn)
		if err != nil {
			return Stores{}, err
		}
		return NewSQLStores(db, now), nil
	}

	return Stores{}, fmt.Errorf("unsupported storage backend: %q", backend)
}
