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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/medibot/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// IntentDetector implements ai.IntentDetector using OpenAI-compatible chat APIs.
type IntentDetector struct {
	client llms.Model
	logger *slog.Logger
}

// detection is the structure expected in the LLM's JSON response.
type detection struct {
	Intent     string  `json:"intent"`
	Confidence float32 `json:"confidence"`
}

// newIntentDetector is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIntentDetector(config *ai.Config) (*IntentDetector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.IntentHost),
		openai.WithToken("none"),
		openai.WithModel(config.IntentModel),
	)
	if err != nil {
		return nil, err
	}

	return &IntentDetector{
		client: client,
		logger: slog.Default().With("component", "openai-intent"),
	}, nil
}

// NewIntentDetector creates a new intent detector using the provided configuration.
//
// Returns ai.IntentDetector interface to enforce abstraction.
func NewIntentDetector(config *ai.Config) (ai.IntentDetector, error) {
	return newIntentDetector(config)
}

// DetectIntent classifies the message using an LLM in JSON mode.
// Callers should treat errors as "service unavailable" and fall back to
// a local classifier rather than failing the request.
func (d *IntentDetector) DetectIntent(ctx context.Context, text string) (ai.DetectedIntent, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildIntentPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result detection
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := d.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			d.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return ai.DetectedIntent{}, err
		}

		if len(response.Choices) < 1 {
			d.logger.Debug("no choices returned from model")
			return ai.DetectedIntent{Name: "symptom_query", Confidence: 0}, nil
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			d.logger.Warn("error parsing intent response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		d.logger.Error("failed to parse intent response after retries", "err", lastErr)
		return ai.DetectedIntent{}, lastErr
	}

	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 1 {
		result.Confidence = 1
	}

	detected := ai.DetectedIntent{
		Name:       strings.ToLower(strings.TrimSpace(result.Intent)),
		Confidence: result.Confidence,
	}
	d.logger.Debug("detected intent", "intent", detected.Name, "confidence", detected.Confidence)
	return detected, nil
}
