package mock

import (
	"context"
	"strings"

	"github.com/poiesic/medibot/ai"
)

// MockIntentDetector is a test double for ai.IntentDetector.
// It allows custom behavior injection via function fields.
type MockIntentDetector struct {
	// DetectIntentFunc is called by DetectIntent if set.
	// If nil, uses default keyword-based behavior.
	DetectIntentFunc func(ctx context.Context, text string) (ai.DetectedIntent, error)

	callCount int
}

// NewMockIntentDetector creates a mock intent detector with default behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockIntentDetector() *MockIntentDetector {
	return &MockIntentDetector{}
}

// DetectIntent classifies the text with a trivial keyword check.
// Default behavior: "hello" maps to greeting, "thanks" to gratitude,
// everything else to symptom_query.
func (m *MockIntentDetector) DetectIntent(ctx context.Context, text string) (ai.DetectedIntent, error) {
	m.callCount++

	if m.DetectIntentFunc != nil {
		return m.DetectIntentFunc(ctx, text)
	}

	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "hello"):
		return ai.DetectedIntent{Name: "greeting", Confidence: 0.95}, nil
	case strings.Contains(lowered, "thanks"):
		return ai.DetectedIntent{Name: "gratitude", Confidence: 0.95}, nil
	default:
		return ai.DetectedIntent{Name: "symptom_query", Confidence: 0.75}, nil
	}
}

// CallCount returns the number of times DetectIntent was called.
func (m *MockIntentDetector) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockIntentDetector) Reset() {
	m.callCount = 0
	m.DetectIntentFunc = nil
}
