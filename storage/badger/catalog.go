package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend    *Backend
	ordinalSeq *badger.Sequence
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	ordinalSeq, err := backend.GetSequence(catalogOrdinalSeq)
	if err != nil {
		return nil, err
	}

	return &CatalogRepository{
		backend:    backend,
		ordinalSeq: ordinalSeq,
	}, nil
}

// Close releases the ordinal sequence.
func (r *CatalogRepository) Close() error {
	return r.ordinalSeq.Release()
}

// FindSimilar delegates to the backend.
func (r *CatalogRepository) FindSimilar(ctx context.Context, vector []float32, filter storage.CatalogFilter, limit int) ([]*core.SimilarityMatch, error) {
	return r.backend.FindSimilar(ctx, vector, filter, limit)
}

// WithTransaction delegates to the backend.
func (r *CatalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEntries adds one or more catalog entries to storage.
func (r *CatalogRepository) AddEntries(ctx context.Context, entries ...*core.CatalogEntry) ([]*core.CatalogEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := core.ValidateCatalogEntry(entry); err != nil {
				return err
			}

			nextOrdinal, err := r.ordinalSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextOrdinal == 0 {
				nextOrdinal, err = r.ordinalSeq.Next()
				if err != nil {
					return err
				}
			}
			entry.Ordinal = nextOrdinal

			entry.InsertedAt = time.Now().UTC()
			entry.UpdatedAt = entry.InsertedAt

			// Store primary record
			key := makeCatalogKey(entry.ID)
			value := storage.MarshalCatalogEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update insertion-order index
			ordinalKey := makeCatalogOrdinalKey(entry.Ordinal)
			if err := tx.Set(ordinalKey, []byte(entry.ID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// UpdateEntries updates existing catalog entries.
func (r *CatalogRepository) UpdateEntries(ctx context.Context, entries ...*core.CatalogEntry) ([]*core.CatalogEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			key := makeCatalogKey(entry.ID)

			old, err := r.readEntry(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Ordinal is assigned once at insertion and never changes
			entry.Ordinal = old.Ordinal
			entry.InsertedAt = old.InsertedAt
			entry.UpdatedAt = time.Now().UTC()

			value := storage.MarshalCatalogEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// GetEntry retrieves a single catalog entry by ID.
func (r *CatalogRepository) GetEntry(ctx context.Context, id string) (*core.CatalogEntry, error) {
	var result *core.CatalogEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCatalogKey(id)
		var err error
		result, err = r.readEntry(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetEntries retrieves multiple catalog entries by their IDs.
func (r *CatalogRepository) GetEntries(ctx context.Context, ids ...string) ([]*core.CatalogEntry, error) {
	var result []*core.CatalogEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCatalogKey(id)
			entry, err := r.readEntry(tx, key)
			if err != nil {
				return err
			}
			if entry != nil {
				result = append(result, entry)
			}
		}
		return nil
	}, false)
	return result, err
}

// AllEntries retrieves every catalog entry ordered by insertion ordinal.
func (r *CatalogRepository) AllEntries(ctx context.Context) ([]*core.CatalogEntry, error) {
	var results []*core.CatalogEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogOrdinalPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entryID string
			if err := iter.Item().Value(func(val []byte) error {
				entryID = string(val)
				return nil
			}); err != nil {
				return err
			}

			entry, err := r.readEntry(tx, makeCatalogKey(entryID))
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
			}
		}
		return nil
	}, false)
	return results, err
}

// Count returns the number of entries in the catalog.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogOrdinalPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readEntry reads and unmarshals a catalog entry. Returns nil if missing.
func (r *CatalogRepository) readEntry(tx *badger.Txn, key []byte) (*core.CatalogEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.CatalogEntry
	err = item.Value(func(val []byte) error {
		var err error
		entry, err = storage.UnmarshalCatalogEntry(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
