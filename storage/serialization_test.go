package storage

import (
	"testing"
	"time"

	"github.com/poiesic/medibot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalLogEntry(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	entry := &core.LogEntry{
		Id:          7,
		UserID:      "user-1",
		Timestamp:   now,
		UserMessage: "I have a headache and nausea",
		BotResponse: "Possible conditions that match your symptoms...",
		Symptoms:    []string{"headache", "nausea"},
		Conditions:  []string{"Migraine"},
		InsertedAt:  now,
	}

	data := MarshalLogEntry(entry)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalLogEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry.Id, decoded.Id)
	assert.Equal(t, entry.UserID, decoded.UserID)
	assert.True(t, entry.Timestamp.Equal(decoded.Timestamp))
	assert.Equal(t, entry.UserMessage, decoded.UserMessage)
	assert.Equal(t, entry.BotResponse, decoded.BotResponse)
	assert.Equal(t, entry.Symptoms, decoded.Symptoms)
	assert.Equal(t, entry.Conditions, decoded.Conditions)
}

func TestMarshalUnmarshalConditionRecord(t *testing.T) {
	record := &core.ConditionRecord{
		Name:     "Influenza",
		Symptoms: []string{"fever", "cough", "fatigue"},
		Severity: "moderate",
		Advice:   "Rest and fluids.",
	}

	data := MarshalConditionRecord(record)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalConditionRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestUnmarshalLogEntry_Truncated(t *testing.T) {
	entry := &core.LogEntry{
		Id:          1,
		UserID:      "u",
		UserMessage: "hello",
	}
	data := MarshalLogEntry(entry)

	_, err := UnmarshalLogEntry(data[:len(data)/2])
	assert.Error(t, err)
}
