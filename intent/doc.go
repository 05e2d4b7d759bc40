// Package intent provides rule-based conversational intent classification.
//
// The Classifier checks priority-ordered keyword rules against the
// lowercased message text; the first matching rule wins. It implements
// ai.IntentDetector, so it can serve either as the pipeline's only
// detector or as the local fallback behind a network-backed one (see
// WithFallback).
package intent
