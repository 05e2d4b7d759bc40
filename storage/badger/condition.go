package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/medibot/core"
	"github.com/poiesic/medibot/storage"
)

// ConditionRepository implements storage.ConditionRepository for BadgerDB.
type ConditionRepository struct {
	backend *Backend
}

var _ storage.ConditionRepository = (*ConditionRepository)(nil)

// NewConditionRepository creates a new ConditionRepository.
func NewConditionRepository(backend *Backend) *ConditionRepository {
	return &ConditionRepository{backend: backend}
}

// Close releases resources. The backend itself is closed by its owner.
func (r *ConditionRepository) Close() error {
	return nil
}

// ReplaceConditions atomically replaces the stored condition set.
// Ordered index keys preserve insertion order across restarts.
func (r *ConditionRepository) ReplaceConditions(ctx context.Context, records ...*core.ConditionRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		// Drop the previous set
		prefix := []byte(conditionPrefix + ":")
		iter := tx.NewIterator(badger.IteratorOptions{Prefix: prefix})
		var stale [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			stale = append(stale, iter.Item().KeyCopy(nil))
		}
		iter.Close()
		for _, key := range stale {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		// Write the new set in order
		for i, record := range records {
			key := makeConditionKey(uint64(i))
			value := storage.MarshalConditionRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetConditions retrieves all stored condition records in insertion order.
func (r *ConditionRepository) GetConditions(ctx context.Context) ([]*core.ConditionRecord, error) {
	var results []*core.ConditionRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(conditionPrefix + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var record *core.ConditionRecord
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalConditionRecord(val)
				return err
			}); err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}
