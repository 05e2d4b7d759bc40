package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use and deterministic:
// identical input must produce identical vectors so that matching stays
// reproducible.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// DetectedIntent is the raw outcome of intent detection.
type DetectedIntent struct {
	// Name is the intent label, e.g. "greeting" or "symptom_query".
	// External services may report labels outside the core enum;
	// core.ParseIntent maps them onto it.
	Name string

	// Confidence is the detector's own confidence in the label, in [0,1].
	Confidence float32
}

// IntentDetector classifies the conversational intent of a user message.
// Implementations must be thread-safe for concurrent use.
type IntentDetector interface {
	// DetectIntent classifies the text into a conversational category.
	// Returns an error if the detection service is unavailable; callers
	// are expected to degrade to a local fallback rather than fail.
	DetectIntent(ctx context.Context, text string) (DetectedIntent, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and IntentDetector instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// IntentDetector returns the intent detection service.
	// The returned IntentDetector is safe for concurrent use.
	IntentDetector() IntentDetector

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
