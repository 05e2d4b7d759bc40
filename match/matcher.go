// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package match

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/poiesic/medibot/ai"
	"github.com/poiesic/medibot/core"
	"github.com/poiesic/medibot/knowledge"
)

const (
	// DefaultTopK is the maximum number of condition matches returned.
	DefaultTopK = 3

	// DefaultThreshold is the minimum similarity for a match to count.
	DefaultThreshold = 0.2

	// DefaultEmbedTimeout bounds a single query embedding call.
	DefaultEmbedTimeout = 10 * time.Second
)

// Matcher ranks knowledge base conditions against a user query by
// embedding similarity.
type Matcher struct {
	embedder     ai.Embedder
	topK         int
	threshold    float32
	embedTimeout time.Duration
	logger       *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithTopK sets the maximum number of matches returned.
// Default is 3.
func WithTopK(topK int) Option {
	return func(m *Matcher) error {
		if topK < 1 {
			topK = DefaultTopK
		}
		m.topK = topK
		return nil
	}
}

// WithThreshold sets the minimum similarity score for a match.
// Default is 0.2.
func WithThreshold(threshold float32) Option {
	return func(m *Matcher) error {
		m.threshold = threshold
		return nil
	}
}

// WithEmbedTimeout bounds the query embedding call. A timeout degrades
// the query to no matches rather than failing it.
// Default is 10s.
func WithEmbedTimeout(timeout time.Duration) Option {
	return func(m *Matcher) error {
		if timeout > 0 {
			m.embedTimeout = timeout
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a new matcher.
func NewMatcher(embedder ai.Embedder, opts ...Option) (*Matcher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	m := &Matcher{
		embedder:     embedder,
		topK:         DefaultTopK,
		threshold:    DefaultThreshold,
		embedTimeout: DefaultEmbedTimeout,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// BuildQuery renders the text that gets embedded for matching: the raw
// input followed by the extracted symptom list. Using the same shape as
// the knowledge base side keeps the two embeddings comparable.
func BuildQuery(text string, symptoms []string) string {
	if len(symptoms) == 0 {
		return text
	}
	return text + ". Symptoms: " + strings.Join(symptoms, ", ")
}

// Match embeds the query and returns up to topK conditions scoring at
// or above the threshold, ranked by similarity descending. Equal scores
// keep knowledge base order, so results are stable across calls.
//
// An unembedded or empty base, and any embedding service failure or
// timeout, yield an empty result rather than an error. The error return
// is reserved for internal contract violations such as a dimension
// mismatch between the query vector and the base.
func (m *Matcher) Match(ctx context.Context, text string, symptoms []string, base *knowledge.Base) ([]*core.ConditionMatch, error) {
	if base.Len() == 0 || !base.HasEmbeddings() {
		return []*core.ConditionMatch{}, nil
	}

	query := BuildQuery(text, symptoms)

	embedCtx, cancel := context.WithTimeout(ctx, m.embedTimeout)
	defer cancel()

	queryVector, err := m.embedder.EmbedText(embedCtx, query)
	if err != nil {
		m.logger.Warn("query embedding failed, returning no matches", "err", err)
		return []*core.ConditionMatch{}, nil
	}

	matches := make([]*core.ConditionMatch, 0, base.Len())
	for i := 0; i < base.Len(); i++ {
		condition := base.At(i)
		score, err := CosineSimilarity(queryVector, condition.Vector)
		if err != nil {
			return nil, err
		}
		matches = append(matches, &core.ConditionMatch{
			Condition: condition.Snapshot(),
			Score:     score,
		})
	}

	// Sort by score descending; stable so ties keep base order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > m.topK {
		matches = matches[:m.topK]
	}

	filtered := matches[:0]
	for _, match := range matches {
		if match.Score >= m.threshold {
			filtered = append(filtered, match)
		}
	}

	m.logger.Debug("condition matching complete", "candidates", base.Len(), "matches", len(filtered))
	return filtered, nil
}
