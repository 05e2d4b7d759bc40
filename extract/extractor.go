package extract

import "strings"

// DefaultWindow is the number of words before a symptom phrase that are
// inspected for negation tokens.
const DefaultWindow = 3

// Extractor scans free text for known symptom phrases, suppressing
// phrases preceded by a negation token. It is pure and safe for
// concurrent use once constructed.
type Extractor struct {
	lexicon   []string
	negations map[string]struct{}
	window    int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWindow sets how many words before a phrase are checked for
// negation tokens. Default is DefaultWindow. Values below zero are
// treated as zero (negation disabled).
func WithWindow(window int) Option {
	return func(e *Extractor) {
		if window < 0 {
			window = 0
		}
		e.window = window
	}
}

// NewExtractor creates an extractor over the given symptom lexicon and
// negation token set. Lexicon phrases are matched case-insensitively;
// both lists are copied and lowercased so later mutation by the caller
// has no effect.
func NewExtractor(lexicon []string, negations []string, opts ...Option) *Extractor {
	e := &Extractor{
		lexicon:   make([]string, 0, len(lexicon)),
		negations: make(map[string]struct{}, len(negations)),
		window:    DefaultWindow,
	}
	for _, phrase := range lexicon {
		e.lexicon = append(e.lexicon, strings.ToLower(phrase))
	}
	for _, token := range negations {
		e.negations[strings.ToLower(token)] = struct{}{}
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the symptom phrases found in text, in lexicon order.
// A phrase whose first occurrence is preceded within the negation
// window by a negation token is suppressed. Each phrase is matched
// independently, so overlapping phrases can all be reported. The result
// contains no duplicates; empty input yields an empty result.
func (e *Extractor) Extract(text string) []string {
	lowered := strings.ToLower(text)
	found := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)

	for _, phrase := range e.lexicon {
		idx := strings.Index(lowered, phrase)
		if idx < 0 {
			continue
		}
		if _, dup := seen[phrase]; dup {
			continue
		}
		if e.negated(lowered[:idx]) {
			continue
		}
		seen[phrase] = struct{}{}
		found = append(found, phrase)
	}

	return found
}

// negated reports whether the tail of prefix ends with a negation token
// within the configured window.
func (e *Extractor) negated(prefix string) bool {
	if e.window == 0 || len(e.negations) == 0 {
		return false
	}
	words := strings.Fields(prefix)
	start := len(words) - e.window
	if start < 0 {
		start = 0
	}
	for _, word := range words[start:] {
		if _, ok := e.negations[word]; ok {
			return true
		}
	}
	return false
}
