package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/medibot/ai"
	"github.com/poiesic/medibot/core"
)

const (
	defaultBatchSize  = 32
	defaultMaxRetries = 3
	defaultRetryDelay = 1 * time.Second
)

// builder holds the configuration for a knowledge base build.
type builder struct {
	batchSize  int
	poolSize   int
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// BuildOption configures a knowledge base build.
type BuildOption func(*builder) error

// WithBatchSize sets how many condition texts are embedded per request.
// Default is 32.
func WithBatchSize(size int) BuildOption {
	return func(b *builder) error {
		if size < 1 {
			return fmt.Errorf("batch size must be greater than 0, got %d", size)
		}
		b.batchSize = size
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BuildOption {
	return func(b *builder) error {
		if size < 1 {
			size = 1
		}
		b.poolSize = size
		return nil
	}
}

// WithMaxRetries sets the retry attempts for a failed embedding batch.
// Default is 3.
func WithMaxRetries(attempts int) BuildOption {
	return func(b *builder) error {
		if attempts < 1 {
			return ErrInvalidMaxAttempts
		}
		b.maxRetries = attempts
		return nil
	}
}

// WithRetryDelay sets the base delay for exponential backoff between
// embedding retries. Default is 1s.
func WithRetryDelay(delay time.Duration) BuildOption {
	return func(b *builder) error {
		b.retryDelay = delay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// Build validates the records, embeds each condition exactly once in
// concurrent batches, normalizes the vectors, and returns an immutable
// Base. Malformed records are skipped without aborting the build; an
// embedding service failure aborts it (callers may then fall back to
// BuildUnembedded for keyword-only operation).
func Build(ctx context.Context, records []*core.ConditionRecord, embedder ai.Embedder, opts ...BuildOption) (*Base, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	b := &builder{
		batchSize:  defaultBatchSize,
		poolSize:   poolSize,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	conditions := validateRecords(records, b.logger)
	if len(conditions) == 0 {
		return &Base{}, nil
	}

	texts := make([]string, len(conditions))
	for i := range conditions {
		record := core.ConditionRecord{
			Name:     conditions[i].Name,
			Symptoms: conditions[i].Symptoms,
		}
		texts[i] = EmbeddingText(&record)
	}

	b.logger.Info("embedding knowledge base", "conditions", len(conditions), "batchSize", b.batchSize)

	pool, err := ants.NewPool(b.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	vectors := make([][]float32, len(texts))
	errs := make([]error, (len(texts)+b.batchSize-1)/b.batchSize)

	var wg sync.WaitGroup
	batch := 0
	for start := 0; start < len(texts); start += b.batchSize {
		end := start + b.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		start, end, batch := start, end, batch

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			errs[batch] = RetryWithBackoff(ctx, func() error {
				embedded, err := embedder.EmbedTexts(ctx, texts[start:end])
				if err != nil {
					return err
				}
				if len(embedded) != end-start {
					return fmt.Errorf("embedding result mismatch. expected %d, received %d", end-start, len(embedded))
				}
				copy(vectors[start:end], embedded)
				return nil
			}, b.maxRetries, b.retryDelay)
		})
		if submitErr != nil {
			wg.Done()
			errs[batch] = submitErr
		}
		batch++
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEmbeddingFailed, err)
		}
	}

	dim := len(vectors[0])
	for i := range conditions {
		if len(vectors[i]) != dim {
			return nil, fmt.Errorf("%w: condition %q has dimension %d, expected %d",
				ErrInconsistentDimensions, conditions[i].Name, len(vectors[i]), dim)
		}
		normalizeVector(vectors[i])
		conditions[i].Vector = vectors[i]
	}

	b.logger.Info("knowledge base ready", "conditions", len(conditions), "dimension", dim)
	return &Base{conditions: conditions, dim: dim}, nil
}
