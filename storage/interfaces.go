package storage

import (
	"context"
	"time"

	"github.com/poiesic/medibot/core"
)

// ConversationRepository provides operations for the conversation log.
// Implementations must be thread-safe and support concurrent access.
type ConversationRepository interface {
	// AddLogEntries adds one or more conversation log entries.
	// For entries with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the entries with generated IDs and timestamps populated.
	AddLogEntries(ctx context.Context, entries ...*core.LogEntry) ([]*core.LogEntry, error)

	// GetLogEntry retrieves a single log entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetLogEntry(ctx context.Context, id core.ID) (*core.LogEntry, error)

	// GetRecentLogEntries retrieves the N most recent entries, ordered by
	// timestamp descending. Returns up to limit entries.
	GetRecentLogEntries(ctx context.Context, limit int) ([]*core.LogEntry, error)

	// GetLogEntriesByUser retrieves a user's entries, most recent first.
	// Returns up to limit entries.
	GetLogEntriesByUser(ctx context.Context, userID string, limit int) ([]*core.LogEntry, error)

	// GetLogEntriesByDateRange retrieves entries within a time range.
	// Returns entries where start <= Timestamp < end, ordered by timestamp.
	GetLogEntriesByDateRange(ctx context.Context, start, end time.Time) ([]*core.LogEntry, error)

	// Close closes the repository and releases resources.
	Close() error
}

// ConditionRepository persists the condition records the knowledge base
// is built from, so the bot can rebuild its embeddings on startup
// without re-importing.
type ConditionRepository interface {
	// ReplaceConditions atomically replaces the stored condition set.
	ReplaceConditions(ctx context.Context, records ...*core.ConditionRecord) error

	// GetConditions retrieves all stored condition records in insertion
	// order.
	GetConditions(ctx context.Context) ([]*core.ConditionRecord, error)

	// Close closes the repository and releases resources.
	Close() error
}
