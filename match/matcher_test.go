package match

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/medibot/ai/mock"
	"github.com/poiesic/medibot/core"
	"github.com/poiesic/medibot/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestBase builds a three-condition base with fixed embeddings:
// Cold -> [1,0,0], Flu -> [0,1,0], Migraine -> [0.7,0.7,0].
func buildTestBase(t *testing.T) *knowledge.Base {
	t.Helper()

	records := []*core.ConditionRecord{
		{Name: "Cold", Symptoms: []string{"runny nose", "cough"}, Severity: "mild", Advice: "Rest."},
		{Name: "Flu", Symptoms: []string{"fever", "fatigue"}, Severity: "moderate", Advice: "Rest and fluids."},
		{Name: "Migraine", Symptoms: []string{"headache", "nausea"}, Severity: "moderate", Advice: "Rest in a dark room."},
	}

	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0.7, 0.7, 0},
	}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = append([]float32(nil), vectors[i]...)
		}
		return out, nil
	}

	base, err := knowledge.Build(context.Background(), records, embedder)
	require.NoError(t, err)
	require.Equal(t, 3, base.Len())
	return base
}

func queryEmbedder(vector []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return append([]float32(nil), vector...), nil
	}
	return embedder
}

func TestNewMatcher(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		m, err := NewMatcher(mock.NewMockEmbedder())
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewMatcher(nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})
}

func TestBuildQuery(t *testing.T) {
	t.Run("with symptoms", func(t *testing.T) {
		query := BuildQuery("my head hurts", []string{"headache", "nausea"})
		assert.Equal(t, "my head hurts. Symptoms: headache, nausea", query)
	})

	t.Run("without symptoms", func(t *testing.T) {
		assert.Equal(t, "my head hurts", BuildQuery("my head hurts", nil))
	})
}

func TestMatch(t *testing.T) {
	ctx := context.Background()
	base := buildTestBase(t)

	t.Run("ranked by similarity descending", func(t *testing.T) {
		m, err := NewMatcher(queryEmbedder([]float32{1, 0, 0}))
		require.NoError(t, err)

		matches, err := m.Match(ctx, "runny nose", []string{"runny nose"}, base)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "Cold", matches[0].Condition.Name)
		assert.Equal(t, "Migraine", matches[1].Condition.Name)
		assert.Greater(t, matches[0].Score, matches[1].Score)
	})

	t.Run("threshold filters weak matches", func(t *testing.T) {
		m, err := NewMatcher(queryEmbedder([]float32{1, 0, 0}), WithThreshold(0.9))
		require.NoError(t, err)

		matches, err := m.Match(ctx, "runny nose", nil, base)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Cold", matches[0].Condition.Name)
	})

	t.Run("topK truncates before filtering", func(t *testing.T) {
		m, err := NewMatcher(queryEmbedder([]float32{0.7, 0.7, 0}), WithTopK(2), WithThreshold(0))
		require.NoError(t, err)

		matches, err := m.Match(ctx, "fever and headache", nil, base)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
		assert.Equal(t, "Migraine", matches[0].Condition.Name)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		m, err := NewMatcher(queryEmbedder([]float32{0.5, 0.5, 0}))
		require.NoError(t, err)

		first, err := m.Match(ctx, "feverish headache", nil, base)
		require.NoError(t, err)
		second, err := m.Match(ctx, "feverish headache", nil, base)
		require.NoError(t, err)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Condition.Name, second[i].Condition.Name)
			assert.Equal(t, first[i].Score, second[i].Score)
		}
	})

	t.Run("snapshot omits embedding vector", func(t *testing.T) {
		m, err := NewMatcher(queryEmbedder([]float32{1, 0, 0}))
		require.NoError(t, err)

		matches, err := m.Match(ctx, "runny nose", nil, base)
		require.NoError(t, err)
		require.NotEmpty(t, matches)
		assert.Nil(t, matches[0].Condition.Vector)
	})
}

func TestMatch_Degraded(t *testing.T) {
	ctx := context.Background()

	t.Run("empty base", func(t *testing.T) {
		m, err := NewMatcher(mock.NewMockEmbedder())
		require.NoError(t, err)

		matches, err := m.Match(ctx, "fever", nil, &knowledge.Base{})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("unembedded base", func(t *testing.T) {
		records := []*core.ConditionRecord{
			{Name: "Cold", Symptoms: []string{"cough"}, Severity: "mild", Advice: "Rest."},
		}
		base := knowledge.BuildUnembedded(records)

		m, err := NewMatcher(mock.NewMockEmbedder())
		require.NoError(t, err)

		matches, err := m.Match(ctx, "cough", []string{"cough"}, base)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("embedding failure yields empty result", func(t *testing.T) {
		base := buildTestBase(t)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("service unavailable")
		}

		m, err := NewMatcher(embedder)
		require.NoError(t, err)

		matches, err := m.Match(ctx, "fever", []string{"fever"}, base)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("dimension mismatch is an error", func(t *testing.T) {
		base := buildTestBase(t)

		m, err := NewMatcher(queryEmbedder([]float32{1, 0}))
		require.NoError(t, err)

		_, err = m.Match(ctx, "fever", nil, base)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}
