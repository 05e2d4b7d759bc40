package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/medibot/core"
)

// Key prefixes for different data types
const (
	logEntryPrefix     = "logent"
	logEntryDatePrefix = "logentd"
	logEntryUserPrefix = "logentu"
	logEntryIDSeq      = "logentseq"
	conditionPrefix    = "condrec"
)

// makeLogEntryKey generates a key for a log entry by ID.
func makeLogEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", logEntryPrefix, id))
}

// makeLogDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeLogDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := logEntryDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialLogDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialLogDateKey(timestamp time.Time) []byte {
	prefix := logEntryDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeLogUserKey generates a composite key for the user index.
// Format: prefix:userID\x00timestamp:id
// The NUL byte terminates the user ID so that one user's keys never
// prefix another's.
func makeLogUserKey(userID string, timestamp time.Time, id core.ID) []byte {
	prefix := logEntryUserPrefix + ":"
	totalSize := len(prefix) + len(userID) + 1 + 16
	buf := make([]byte, totalSize)
	offset := copy(buf, []byte(prefix))
	offset += copy(buf[offset:], []byte(userID))
	buf[offset] = 0x00
	offset++
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialLogUserKey generates the prefix covering all of a user's
// index keys.
func makePartialLogUserKey(userID string) []byte {
	prefix := logEntryUserPrefix + ":"
	totalSize := len(prefix) + len(userID) + 1
	buf := make([]byte, totalSize)
	offset := copy(buf, []byte(prefix))
	offset += copy(buf[offset:], []byte(userID))
	buf[offset] = 0x00
	return buf
}

// makeConditionKey generates an ordered key for the i-th stored
// condition record. BigEndian index keeps GetConditions in insertion
// order.
func makeConditionKey(index uint64) []byte {
	prefix := conditionPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, []byte(prefix))
	binary.BigEndian.PutUint64(buf[offset:], index)
	return buf
}
