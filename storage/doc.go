// Package storage defines the persistence interfaces for conversation
// logs and condition records, plus the binary serialization helpers
// shared by backend implementations.
package storage
