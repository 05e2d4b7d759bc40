package knowledge

import (
	"log/slog"
	"math"
	"strings"

	"github.com/poiesic/medibot/core"
)

// Base is an immutable knowledge base of validated conditions with
// precomputed, normalized embeddings. Once built it is safe for
// unbounded concurrent readers; replacing it means building a new Base
// and swapping it through a Store.
type Base struct {
	conditions []core.Condition
	dim        int
}

// Len returns the number of conditions.
func (b *Base) Len() int {
	if b == nil {
		return 0
	}
	return len(b.conditions)
}

// At returns the i-th condition in insertion order. The returned value
// must be treated as read-only.
func (b *Base) At(i int) *core.Condition {
	return &b.conditions[i]
}

// HasEmbeddings reports whether the conditions carry embedding vectors.
// A Base built without an embedding service (degraded mode) answers
// false and matching yields no results.
func (b *Base) HasEmbeddings() bool {
	return b != nil && b.dim > 0
}

// Dim returns the embedding dimension, or 0 when unembedded.
func (b *Base) Dim() int {
	if b == nil {
		return 0
	}
	return b.dim
}

// EmbeddingText renders a condition record as the text that gets
// embedded: the name followed by its symptom list.
func EmbeddingText(record *core.ConditionRecord) string {
	return record.Name + ". Symptoms: " + strings.Join(record.Symptoms, ", ")
}

// BuildUnembedded builds a Base without embeddings from the given
// records. Malformed records are skipped. Matching against such a base
// returns no results; the pipeline then runs on symptom keywords alone.
func BuildUnembedded(records []*core.ConditionRecord) *Base {
	return &Base{conditions: validateRecords(records, slog.Default())}
}

// validateRecords converts raw records into conditions, skipping and
// logging any that fail validation.
func validateRecords(records []*core.ConditionRecord, logger *slog.Logger) []core.Condition {
	conditions := make([]core.Condition, 0, len(records))
	for i, record := range records {
		if err := core.ValidateConditionRecord(record); err != nil {
			logger.Warn("skipping malformed condition record", "index", i, "err", err)
			continue
		}
		conditions = append(conditions, core.Condition{
			Id:       core.IDFromContent(record.Name),
			Name:     record.Name,
			Symptoms: record.Symptoms,
			Severity: core.Severity(strings.ToLower(record.Severity)),
			Advice:   record.Advice,
		})
	}
	return conditions
}

// normalizeVector normalizes a vector to unit length in place, so that
// cosine similarity against it reduces to a dot product. A zero vector
// is left unchanged.
func normalizeVector(v []float32) {
	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	if magnitude == 0 {
		return
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	for i, val := range v {
		v[i] = val / magnitude
	}
}
