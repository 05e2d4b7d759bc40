package intent

import (
	"context"
	"strings"

	"github.com/poiesic/medibot/ai"
	"github.com/poiesic/medibot/core"
)

// Rule associates an intent with its trigger phrases and the confidence
// reported when one of them matches.
type Rule struct {
	Intent     core.Intent
	Triggers   []string
	Confidence float32
}

// DefaultRules returns the built-in priority-ordered rule set. The
// first rule whose trigger list matches wins, so a message containing
// both a greeting and a gratitude word classifies as a greeting.
func DefaultRules() []Rule {
	return []Rule{
		{Intent: core.IntentGreeting, Triggers: []string{"hello", "hi", "hey", "greetings"}, Confidence: 0.95},
		{Intent: core.IntentHelp, Triggers: []string{"help", "what can you do", "how do you work"}, Confidence: 0.90},
		{Intent: core.IntentGratitude, Triggers: []string{"thank", "thanks", "appreciate"}, Confidence: 0.95},
		{Intent: core.IntentFarewell, Triggers: []string{"bye", "goodbye", "see you"}, Confidence: 0.95},
	}
}

// Classifier is a rule-based intent classifier. It is pure, stateless,
// and deterministic, and implements ai.IntentDetector so it can stand
// in for a network-backed detection service.
type Classifier struct {
	rules []Rule
}

var _ ai.IntentDetector = (*Classifier)(nil)

// NewClassifier creates a classifier over the given rules, evaluated in
// order. A nil rule slice selects DefaultRules.
func NewClassifier(rules []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the intent of the first rule whose trigger occurs in
// the lowercased text, or IntentSymptomQuery when no rule matches.
func (c *Classifier) Classify(text string) core.Intent {
	in, _ := c.classify(text)
	return in
}

// DetectIntent implements ai.IntentDetector.
// It never fails; rule-based classification has no external dependency.
func (c *Classifier) DetectIntent(ctx context.Context, text string) (ai.DetectedIntent, error) {
	in, confidence := c.classify(text)
	return ai.DetectedIntent{Name: in.String(), Confidence: confidence}, nil
}

func (c *Classifier) classify(text string) (core.Intent, float32) {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lowered, trigger) {
				return rule.Intent, rule.Confidence
			}
		}
	}
	return core.IntentSymptomQuery, 0.75
}
