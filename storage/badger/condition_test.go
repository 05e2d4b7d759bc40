package badger

import (
	"context"
	"testing"

	"github.com/poiesic/medibot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConditionRecords() []*core.ConditionRecord {
	return []*core.ConditionRecord{
		{Name: "Cold", Symptoms: []string{"cough", "runny nose"}, Severity: "mild", Advice: "Rest."},
		{Name: "Flu", Symptoms: []string{"fever"}, Severity: "moderate", Advice: "Fluids."},
		{Name: "Migraine", Symptoms: []string{"headache"}, Severity: "moderate", Advice: "Dark room."},
	}
}

func TestConditionRepository(t *testing.T) {
	convRepo, condRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		condRepo.Close()
		convRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		records, err := condRepo.GetConditions(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("replace and read back in order", func(t *testing.T) {
		require.NoError(t, condRepo.ReplaceConditions(ctx, testConditionRecords()...))

		records, err := condRepo.GetConditions(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Cold", records[0].Name)
		assert.Equal(t, "Flu", records[1].Name)
		assert.Equal(t, "Migraine", records[2].Name)
		assert.Equal(t, []string{"cough", "runny nose"}, records[0].Symptoms)
	})

	t.Run("replace drops previous set", func(t *testing.T) {
		replacement := []*core.ConditionRecord{
			{Name: "Anemia", Symptoms: []string{"fatigue"}, Severity: "moderate", Advice: "Blood test."},
		}
		require.NoError(t, condRepo.ReplaceConditions(ctx, replacement...))

		records, err := condRepo.GetConditions(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Anemia", records[0].Name)
	})

	t.Run("replace with empty clears", func(t *testing.T) {
		require.NoError(t, condRepo.ReplaceConditions(ctx))

		records, err := condRepo.GetConditions(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
