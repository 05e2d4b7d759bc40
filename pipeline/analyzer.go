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


package pipeline

import (
	"context"
	"log/slog"

	"github.com/poiesic/medibot/ai"
	"github.com/poiesic/medibot/core"
	"github.com/poiesic/medibot/extract"
	"github.com/poiesic/medibot/knowledge"
	"github.com/poiesic/medibot/match"
)

// Analyzer runs the full query analysis: symptom extraction, intent
// detection, condition matching and confidence scoring.
type Analyzer struct {
	extractor *extract.Extractor
	detector  ai.IntentDetector
	matcher   *match.Matcher
	store     *knowledge.Store
	logger    *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(
	extractor *extract.Extractor,
	detector ai.IntentDetector,
	matcher *match.Matcher,
	store *knowledge.Store,
	opts ...Option,
) (*Analyzer, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if detector == nil {
		return nil, ErrDetectorRequired
	}
	if matcher == nil {
		return nil, ErrMatcherRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	a := &Analyzer{
		extractor: extractor,
		detector:  detector,
		matcher:   matcher,
		store:     store,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Analyze runs a user query through the full pipeline. Intent detection
// and condition matching degrade rather than fail: a detector error
// falls back to a symptom query, and an embedding failure yields an
// empty match list. The error return is reserved for internal contract
// violations.
func (a *Analyzer) Analyze(ctx context.Context, input string) (*core.QueryAnalysis, error) {
	symptoms := a.extractor.Extract(input)

	intent := a.detectIntent(ctx, input)

	matches, err := a.matcher.Match(ctx, input, symptoms, a.store.Current())
	if err != nil {
		a.logger.Error("condition matching failed", "err", err)
		return nil, err
	}

	analysis := &core.QueryAnalysis{
		Input:             input,
		DetectedSymptoms:  symptoms,
		MatchedConditions: matches,
		Intent:            intent,
		Confidence:        match.Score(symptoms, matches),
	}

	a.logger.Debug("query analyzed",
		"intent", analysis.Intent,
		"symptoms", len(symptoms),
		"matches", len(matches),
		"confidence", analysis.Confidence)

	return analysis, nil
}

func (a *Analyzer) detectIntent(ctx context.Context, input string) core.Intent {
	detected, err := a.detector.DetectIntent(ctx, input)
	if err != nil {
		a.logger.Warn("intent detection failed, treating as symptom query", "err", err)
		return core.IntentSymptomQuery
	}
	return core.ParseIntent(detected.Name)
}
