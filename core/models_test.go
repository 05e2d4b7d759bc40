package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("headache"), IDFromContent("headache"))
	})

	t.Run("distinct content distinct IDs", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("headache"), IDFromContent("fever"))
	})
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Intent
	}{
		{"greeting", "greeting", IntentGreeting},
		{"help", "help", IntentHelp},
		{"gratitude", "gratitude", IntentGratitude},
		{"farewell", "farewell", IntentFarewell},
		{"symptom query", "symptom_query", IntentSymptomQuery},
		{"external alias symptom_inquiry", "symptom_inquiry", IntentSymptomQuery},
		{"external alias emergency", "emergency", IntentSymptomQuery},
		{"unknown defaults to symptom query", "weather_report", IntentSymptomQuery},
		{"empty defaults to symptom query", "", IntentSymptomQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIntent(tt.input))
		})
	}
}

func TestIntentJSON(t *testing.T) {
	t.Run("marshals as name", func(t *testing.T) {
		data, err := json.Marshal(IntentGreeting)
		require.NoError(t, err)
		assert.Equal(t, `"greeting"`, string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		var in Intent
		require.NoError(t, json.Unmarshal([]byte(`"farewell"`), &in))
		assert.Equal(t, IntentFarewell, in)
	})
}

func TestConditionSnapshot(t *testing.T) {
	c := Condition{
		Name:     "Migraine",
		Symptoms: []string{"headache", "nausea"},
		Severity: SeverityModerate,
		Advice:   "Rest.",
		Vector:   []float32{1, 0},
	}

	snapshot := c.Snapshot()
	assert.Nil(t, snapshot.Vector)
	assert.Equal(t, c.Name, snapshot.Name)

	snapshot.Symptoms[0] = "mutated"
	assert.Equal(t, "headache", c.Symptoms[0])
}

func TestValidateConditionRecord(t *testing.T) {
	valid := func() *ConditionRecord {
		return &ConditionRecord{
			Name:     "Cold",
			Symptoms: []string{"cough"},
			Severity: "mild",
			Advice:   "Rest.",
		}
	}

	t.Run("valid record", func(t *testing.T) {
		assert.NoError(t, ValidateConditionRecord(valid()))
	})

	t.Run("nil record", func(t *testing.T) {
		assert.ErrorIs(t, ValidateConditionRecord(nil), ErrInvalidConditionRecord)
	})

	t.Run("empty name", func(t *testing.T) {
		r := valid()
		r.Name = ""
		assert.ErrorIs(t, ValidateConditionRecord(r), ErrEmptyConditionName)
	})

	t.Run("no symptoms", func(t *testing.T) {
		r := valid()
		r.Symptoms = nil
		assert.ErrorIs(t, ValidateConditionRecord(r), ErrNoSymptoms)
	})

	t.Run("blank symptoms only", func(t *testing.T) {
		r := valid()
		r.Symptoms = []string{"   ", ""}
		assert.ErrorIs(t, ValidateConditionRecord(r), ErrNoSymptoms)
	})

	t.Run("empty severity", func(t *testing.T) {
		r := valid()
		r.Severity = ""
		assert.ErrorIs(t, ValidateConditionRecord(r), ErrEmptySeverity)
	})

	t.Run("empty advice", func(t *testing.T) {
		r := valid()
		r.Advice = ""
		assert.ErrorIs(t, ValidateConditionRecord(r), ErrEmptyAdvice)
	})
}
