package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/medibot/core"
	"github.com/poiesic/medibot/storage"
)

// ConversationRepository implements storage.ConversationRepository for BadgerDB.
type ConversationRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ConversationRepository = (*ConversationRepository)(nil)

// NewConversationRepository creates a new ConversationRepository.
func NewConversationRepository(backend *Backend) (*ConversationRepository, error) {
	idSeq, err := backend.GetSequence(logEntryIDSeq)
	if err != nil {
		return nil, err
	}

	return &ConversationRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ConversationRepository) Close() error {
	return r.idSeq.Release()
}

// AddLogEntries adds one or more conversation log entries to storage.
func (r *ConversationRepository) AddLogEntries(ctx context.Context, entries ...*core.LogEntry) ([]*core.LogEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			// Always generate new ID from sequence
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
			entry.Id = core.ID(nextID)

			if entry.Timestamp.IsZero() {
				entry.Timestamp = time.Now().UTC()
			}
			entry.InsertedAt = time.Now().UTC()

			// Store primary entry
			key := makeLogEntryKey(entry.Id)
			value := storage.MarshalLogEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index
			dateKey := makeLogDateKey(entry.Timestamp, entry.Id)
			if err := tx.Set(dateKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}

			// Update user index
			userKey := makeLogUserKey(entry.UserID, entry.Timestamp, entry.Id)
			if err := tx.Set(userKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// GetLogEntry retrieves a single log entry by ID.
func (r *ConversationRepository) GetLogEntry(ctx context.Context, id core.ID) (*core.LogEntry, error) {
	var result *core.LogEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeLogEntryKey(id)
		var err error
		result, err = r.readLogEntry(tx, key)
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

// GetRecentLogEntries retrieves the N most recent entries, ordered by timestamp descending.
func (r *ConversationRepository) GetRecentLogEntries(ctx context.Context, limit int) ([]*core.LogEntry, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var results []*core.LogEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent entries first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index
		startKey := makePartialLogDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))

		prefix := []byte(logEntryDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in the date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			entry, err := r.readIndexedEntry(tx, iter.Item())
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetLogEntriesByUser retrieves a user's entries, most recent first.
func (r *ConversationRepository) GetLogEntriesByUser(ctx context.Context, userID string, limit int) ([]*core.LogEntry, error) {
	if userID == "" || limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var results []*core.LogEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key for this user
		startKey := makeLogUserKey(userID, time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), core.ID(^uint64(0)))

		prefix := makePartialLogUserKey(userID)

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in this user's index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			entry, err := r.readIndexedEntry(tx, iter.Item())
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetLogEntriesByDateRange retrieves entries within a time range.
func (r *ConversationRepository) GetLogEntriesByDateRange(ctx context.Context, start, end time.Time) ([]*core.LogEntry, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.LogEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialLogDateKey(start)
		endKey := makePartialLogDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			entry, err := r.readIndexedEntry(tx, iter.Item())
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

// Helper methods

// readLogEntry reads a log entry from the transaction.
func (r *ConversationRepository) readLogEntry(tx *badger.Txn, key []byte) (*core.LogEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.LogEntry
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		entry, unmarshalErr = storage.UnmarshalLogEntry(val)
		return unmarshalErr
	})
	return entry, err
}

// readIndexedEntry resolves an index item to its full log entry.
func (r *ConversationRepository) readIndexedEntry(tx *badger.Txn, item *badger.Item) (*core.LogEntry, error) {
	var entryID core.ID
	if err := item.Value(func(val []byte) error {
		var err error
		entryID, err = storage.UnmarshalID(val)
		return err
	}); err != nil {
		return nil, err
	}
	return r.readLogEntry(tx, makeLogEntryKey(entryID))
}
