package storage

import (
	"context"

	"github.com/vidyasetu/scholarrank/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CatalogFilter narrows a vector search to entries compatible with the given
// structured attributes. The filter is applied inside the index scan, before
// similarity is computed, not post-hoc.
type CatalogFilter struct {
	// Category keeps entries open to this category (or open to all).
	// Empty disables the check.
	Category string

	// Region keeps entries with no regional restriction or one matching
	// this region. Empty disables the check.
	Region string

	// Income keeps entries with no income ceiling or a ceiling at or above
	// this value. Zero disables the check.
	Income int64
}

// Matches reports whether the entry passes the filter.
func (f CatalogFilter) Matches(entry *core.CatalogEntry) bool {
	if f.Category != "" && len(entry.Categories) > 0 {
		found := false
		for _, c := range entry.Categories {
			if c == f.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Region != "" && len(entry.Regions) > 0 {
		found := false
		for _, r := range entry.Regions {
			if r == f.Region {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Income > 0 && entry.MaxIncome > 0 && entry.MaxIncome < f.Income {
		return false
	}

	return true
}

// CatalogRepository provides operations for managing catalog entries.
//
// Entries are written only by the ingestion path; the request path reads.
// Readers always observe a consistent snapshot of the catalog.
type CatalogRepository interface {
	Repository

	// AddEntries adds one or more catalog entries to storage.
	// Assigns each entry a monotonically increasing Ordinal from a sequence,
	// preserving catalog insertion order for deterministic tie-breaking.
	// Sets InsertedAt timestamps. Returns the entries with ordinals populated.
	AddEntries(ctx context.Context, entries ...*core.CatalogEntry) ([]*core.CatalogEntry, error)

	// UpdateEntries updates existing catalog entries (embedding backfill).
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any entry doesn't exist.
	UpdateEntries(ctx context.Context, entries ...*core.CatalogEntry) ([]*core.CatalogEntry, error)

	// GetEntry retrieves a single catalog entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id string) (*core.CatalogEntry, error)

	// GetEntries retrieves multiple catalog entries by their IDs.
	// Returns only the entries that exist (no error for missing entries).
	GetEntries(ctx context.Context, ids ...string) ([]*core.CatalogEntry, error)

	// AllEntries retrieves every catalog entry ordered by insertion ordinal.
	AllEntries(ctx context.Context) ([]*core.CatalogEntry, error)

	// FindSimilar finds catalog entries similar to the given vector, applying
	// the filter before similarity computation (push-down).
	// Results are ordered by similarity score (highest first), up to limit.
	FindSimilar(ctx context.Context, vector []float32, filter CatalogFilter, limit int) ([]*core.SimilarityMatch, error)

	// Count returns the number of entries in the catalog.
	Count(ctx context.Context) (int, error)
}

// InteractionRepository provides operations for the interaction event log.
//
// The log is append-only: there is deliberately no update or delete operation,
// which keeps decayed-weight computations reproducible from the raw log.
// Events are partitioned by user identifier.
type InteractionRepository interface {
	Repository

	// AppendEvents appends one or more interaction events to the log.
	// Generates IDs from a sequence and sets InsertedAt timestamps.
	// Returns the events with IDs and timestamps populated.
	AppendEvents(ctx context.Context, events ...*core.InteractionEvent) ([]*core.InteractionEvent, error)

	// RecentEvents retrieves the most recent events for a user, newest first.
	// Returns up to limit events.
	RecentEvents(ctx context.Context, userID string, limit int) ([]*core.InteractionEvent, error)

	// CountEvents returns the number of logged events for a user.
	CountEvents(ctx context.Context, userID string) (int, error)
}
