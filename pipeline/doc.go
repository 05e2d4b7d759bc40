// Package pipeline wires symptom extraction, intent detection,
// condition matching and confidence scoring into a single query
// analysis step.
package pipeline
