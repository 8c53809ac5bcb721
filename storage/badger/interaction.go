package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/storage"
)

// InteractionRepository implements storage.InteractionRepository for BadgerDB.
//
// The event log is append-only: this type has no update or delete path, and
// the key layout partitions events by user so recency scans stay cheap.
type InteractionRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.InteractionRepository = (*InteractionRepository)(nil)

// NewInteractionRepository creates a new InteractionRepository.
func NewInteractionRepository(backend *Backend) (*InteractionRepository, error) {
	idSeq, err := backend.GetSequence(eventIDSeq)
	if err != nil {
		return nil, err
	}

	return &InteractionRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *InteractionRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *InteractionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AppendEvents appends one or more interaction events to the log.
func (r *InteractionRepository) AppendEvents(ctx context.Context, events ...*core.InteractionEvent) ([]*core.InteractionEvent, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, event := range events {
			if err := core.ValidateInteractionEvent(event); err != nil {
				return err
			}

			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			event.ID = core.ID(nextID)
			event.InsertedAt = time.Now().UTC()

			// Store primary record
			key := makeEventKey(event.ID)
			value := storage.MarshalInteractionEvent(event)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update per-user recency index
			userKey := makeEventUserKey(event.UserID, event.Timestamp.UnixMicro(), event.ID)
			if err := tx.Set(userKey, storage.MarshalID(event.ID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return events, err
}

// RecentEvents retrieves the most recent events for a user, newest first.
func (r *InteractionRepository) RecentEvents(ctx context.Context, userID string, limit int) ([]*core.InteractionEvent, error) {
	var results []*core.InteractionEvent
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		partition := makeEventUserPartition(userID)

		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = partition

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the end of the partition; with Reverse the iterator then
		// walks newest-to-oldest within this user's keys.
		seekKey := append(append([]byte{}, partition...), 0xff)

		for iter.Seek(seekKey); iter.Valid() && len(results) < limit; iter.Next() {
			var eventID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				eventID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			event, err := r.readEvent(tx, makeEventKey(eventID))
			if err != nil {
				return err
			}
			if event != nil {
				results = append(results, event)
			}
		}
		return nil
	}, false)

	return results, err
}

// CountEvents returns the number of logged events for a user.
func (r *InteractionRepository) CountEvents(ctx context.Context, userID string) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeEventUserPartition(userID)
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

// readEvent reads and unmarshals an interaction event. Returns nil if missing.
func (r *InteractionRepository) readEvent(tx *badger.Txn, key []byte) (*core.InteractionEvent, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var event *core.InteractionEvent
	err = item.Value(func(val []byte) error {
		var err error
		event, err = storage.UnmarshalInteractionEvent(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}
