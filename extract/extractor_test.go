package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	e := NewExtractor(DefaultLexicon(), DefaultNegations())

	t.Run("single symptom phrase with its overlaps", func(t *testing.T) {
		// "ache" occurs inside "headache" and both are reported,
		// in lexicon order.
		symptoms := e.Extract("I have a headache")
		assert.Equal(t, []string{"ache", "headache"}, symptoms)
	})

	t.Run("multiple symptoms", func(t *testing.T) {
		symptoms := e.Extract("I have a fever and a bad cough")
		assert.ElementsMatch(t, []string{"fever", "cough"}, symptoms)
	})

	t.Run("negated symptom suppressed", func(t *testing.T) {
		symptoms := e.Extract("I don't have a fever but I have a headache")
		assert.NotContains(t, symptoms, "fever")
		assert.Equal(t, []string{"ache", "headache"}, symptoms)
	})

	t.Run("negation only applies within window", func(t *testing.T) {
		// "no" is more than three words before "fever"
		symptoms := e.Extract("no I was wondering whether this constant fever is serious")
		assert.Contains(t, symptoms, "fever")
	})

	t.Run("case insensitive", func(t *testing.T) {
		symptoms := e.Extract("TERRIBLE HEADACHE AND NAUSEA")
		assert.ElementsMatch(t, []string{"ache", "headache", "nausea"}, symptoms)
	})

	t.Run("overlapping phrases all reported", func(t *testing.T) {
		symptoms := e.Extract("I have a sore throat")
		assert.Contains(t, symptoms, "sore")
		assert.Contains(t, symptoms, "sore throat")
	})

	t.Run("no duplicates", func(t *testing.T) {
		symptoms := e.Extract("fever in the morning, fever at night")
		count := 0
		for _, s := range symptoms {
			if s == "fever" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, e.Extract(""))
	})

	t.Run("no symptoms", func(t *testing.T) {
		assert.Empty(t, e.Extract("hello there, lovely weather today"))
	})

	t.Run("deterministic order", func(t *testing.T) {
		first := e.Extract("I feel dizzy and my chest pain is back")
		second := e.Extract("I feel dizzy and my chest pain is back")
		assert.Equal(t, first, second)
	})
}

func TestExtract_Window(t *testing.T) {
	t.Run("custom window", func(t *testing.T) {
		e := NewExtractor(DefaultLexicon(), DefaultNegations(), WithWindow(1))
		// "not" is two words before "fever", outside a window of 1
		symptoms := e.Extract("not a constant fever")
		assert.Contains(t, symptoms, "fever")
	})

	t.Run("zero window disables negation", func(t *testing.T) {
		e := NewExtractor(DefaultLexicon(), DefaultNegations(), WithWindow(0))
		symptoms := e.Extract("no fever")
		assert.Contains(t, symptoms, "fever")
	})
}

func TestExtract_CopiesInputs(t *testing.T) {
	lexicon := []string{"fever"}
	negations := []string{"no"}
	e := NewExtractor(lexicon, negations)

	lexicon[0] = "cough"
	negations[0] = "maybe"

	assert.Equal(t, []string{"fever"}, e.Extract("I have a fever"))
	assert.Empty(t, e.Extract("no fever"))
}
