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


package intent

import (
	"context"
	"log/slog"

	"github.com/poiesic/medibot/ai"
)

// fallbackDetector tries a primary detector and silently falls back to
// a secondary one when the primary fails.
type fallbackDetector struct {
	primary   ai.IntentDetector
	secondary ai.IntentDetector
	logger    *slog.Logger
}

var _ ai.IntentDetector = (*fallbackDetector)(nil)

// WithFallback combines a primary detector (typically network-backed)
// with a secondary one (typically a local Classifier). A failure of the
// primary is logged and absorbed; callers only see the secondary's
// result in that case.
func WithFallback(primary, secondary ai.IntentDetector) ai.IntentDetector {
	return &fallbackDetector{
		primary:   primary,
		secondary: secondary,
		logger:    slog.Default().With("component", "intent-fallback"),
	}
}

// DetectIntent implements ai.IntentDetector.
func (d *fallbackDetector) DetectIntent(ctx context.Context, text string) (ai.DetectedIntent, error) {
	detected, err := d.primary.DetectIntent(ctx, text)
	if err == nil {
		return detected, nil
	}
	d.logger.Warn("primary intent detector failed, using fallback", "err", err)
	return d.secondary.DetectIntent(ctx, text)
}
