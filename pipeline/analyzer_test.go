package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/medibot/ai"
	"github.com/poiesic/medibot/ai/mock"
	"github.com/poiesic/medibot/core"
	"github.com/poiesic/medibot/extract"
	"github.com/poiesic/medibot/intent"
	"github.com/poiesic/medibot/knowledge"
	"github.com/poiesic/medibot/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureVectors maps knowledge base conditions and queries onto fixed
// embeddings so similarity rankings are predictable.
var fixtureVectors = map[string][]float32{
	"Migraine. Symptoms: headache, nausea": {1, 0, 0},
	"Influenza. Symptoms: fever, cough":    {0, 1, 0},
	"Anxiety Disorder. Symptoms: anxiety":  {0, 0, 1},
}

func fixtureEmbedder(queryVector []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			v, ok := fixtureVectors[text]
			if !ok {
				v = []float32{0, 0, 0}
			}
			out[i] = append([]float32(nil), v...)
		}
		return out, nil
	}
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return append([]float32(nil), queryVector...), nil
	}
	return embedder
}

func fixtureRecords() []*core.ConditionRecord {
	return []*core.ConditionRecord{
		{Name: "Migraine", Symptoms: []string{"headache", "nausea"}, Severity: "moderate", Advice: "Rest in a dark room."},
		{Name: "Influenza", Symptoms: []string{"fever", "cough"}, Severity: "moderate", Advice: "Rest and fluids."},
		{Name: "Anxiety Disorder", Symptoms: []string{"anxiety"}, Severity: "moderate", Advice: "Practice relaxation."},
	}
}

func newTestAnalyzer(t *testing.T, embedder *mock.MockEmbedder, detector ai.IntentDetector) *Analyzer {
	t.Helper()

	base, err := knowledge.Build(context.Background(), fixtureRecords(), embedder)
	require.NoError(t, err)
	store := knowledge.NewStore(base)

	matcher, err := match.NewMatcher(embedder)
	require.NoError(t, err)

	if detector == nil {
		detector = intent.NewClassifier(nil)
	}

	extractor := extract.NewExtractor(extract.DefaultLexicon(), extract.DefaultNegations())

	analyzer, err := NewAnalyzer(extractor, detector, matcher, store)
	require.NoError(t, err)
	return analyzer
}

func TestNewAnalyzer(t *testing.T) {
	embedder := fixtureEmbedder([]float32{1, 0, 0})
	extractor := extract.NewExtractor(extract.DefaultLexicon(), extract.DefaultNegations())
	detector := intent.NewClassifier(nil)
	matcher, err := match.NewMatcher(embedder)
	require.NoError(t, err)
	store := knowledge.NewStore(nil)

	t.Run("valid configuration", func(t *testing.T) {
		a, err := NewAnalyzer(extractor, detector, matcher, store)
		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("nil extractor", func(t *testing.T) {
		_, err := NewAnalyzer(nil, detector, matcher, store)
		assert.Equal(t, ErrExtractorRequired, err)
	})

	t.Run("nil detector", func(t *testing.T) {
		_, err := NewAnalyzer(extractor, nil, matcher, store)
		assert.Equal(t, ErrDetectorRequired, err)
	})

	t.Run("nil matcher", func(t *testing.T) {
		_, err := NewAnalyzer(extractor, detector, nil, store)
		assert.Equal(t, ErrMatcherRequired, err)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewAnalyzer(extractor, detector, matcher, nil)
		assert.Equal(t, ErrStoreRequired, err)
	})
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("symptom query end to end", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, fixtureEmbedder([]float32{1, 0, 0}), nil)

		analysis, err := analyzer.Analyze(ctx, "I have a terrible headache and nausea")
		require.NoError(t, err)

		assert.Equal(t, core.IntentSymptomQuery, analysis.Intent)
		assert.ElementsMatch(t, []string{"headache", "nausea", "ache"}, analysis.DetectedSymptoms)
		require.NotEmpty(t, analysis.MatchedConditions)
		assert.Equal(t, "Migraine", analysis.MatchedConditions[0].Condition.Name)
		assert.Greater(t, analysis.Confidence, float32(0))
		assert.LessOrEqual(t, analysis.Confidence, float32(1))
	})

	t.Run("greeting carries no confidence", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, fixtureEmbedder([]float32{0, 0, 0}), nil)

		analysis, err := analyzer.Analyze(ctx, "hello there")
		require.NoError(t, err)

		assert.Equal(t, core.IntentGreeting, analysis.Intent)
		assert.Empty(t, analysis.DetectedSymptoms)
		assert.Empty(t, analysis.MatchedConditions)
		assert.Equal(t, float32(0), analysis.Confidence)
	})

	t.Run("negated symptom excluded", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, fixtureEmbedder([]float32{1, 0, 0}), nil)

		analysis, err := analyzer.Analyze(ctx, "I don't have a fever but my headache is bad")
		require.NoError(t, err)

		assert.NotContains(t, analysis.DetectedSymptoms, "fever")
		assert.Contains(t, analysis.DetectedSymptoms, "headache")
	})

	t.Run("embedding failure degrades to no matches", func(t *testing.T) {
		embedder := fixtureEmbedder(nil)
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("service unavailable")
		}
		analyzer := newTestAnalyzer(t, embedder, nil)

		analysis, err := analyzer.Analyze(ctx, "I have a headache")
		require.NoError(t, err)

		assert.Contains(t, analysis.DetectedSymptoms, "headache")
		assert.Empty(t, analysis.MatchedConditions)
		assert.Equal(t, float32(0), analysis.Confidence)
	})

	t.Run("detector failure falls back to symptom query", func(t *testing.T) {
		detector := mock.NewMockIntentDetector()
		detector.DetectIntentFunc = func(ctx context.Context, text string) (ai.DetectedIntent, error) {
			return ai.DetectedIntent{}, errors.New("service unavailable")
		}
		analyzer := newTestAnalyzer(t, fixtureEmbedder([]float32{1, 0, 0}), detector)

		analysis, err := analyzer.Analyze(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, core.IntentSymptomQuery, analysis.Intent)
	})

	t.Run("external intent aliases map to symptom query", func(t *testing.T) {
		detector := mock.NewMockIntentDetector()
		detector.DetectIntentFunc = func(ctx context.Context, text string) (ai.DetectedIntent, error) {
			return ai.DetectedIntent{Name: "symptom_inquiry", Confidence: 0.9}, nil
		}
		analyzer := newTestAnalyzer(t, fixtureEmbedder([]float32{1, 0, 0}), detector)

		analysis, err := analyzer.Analyze(ctx, "my head hurts")
		require.NoError(t, err)
		assert.Equal(t, core.IntentSymptomQuery, analysis.Intent)
	})

	t.Run("knowledge base swap picked up by next query", func(t *testing.T) {
		embedder := fixtureEmbedder([]float32{1, 0, 0})
		base, err := knowledge.Build(ctx, fixtureRecords(), embedder)
		require.NoError(t, err)
		store := knowledge.NewStore(base)

		matcher, err := match.NewMatcher(embedder)
		require.NoError(t, err)
		extractor := extract.NewExtractor(extract.DefaultLexicon(), extract.DefaultNegations())
		analyzer, err := NewAnalyzer(extractor, intent.NewClassifier(nil), matcher, store)
		require.NoError(t, err)

		analysis, err := analyzer.Analyze(ctx, "headache and nausea")
		require.NoError(t, err)
		assert.NotEmpty(t, analysis.MatchedConditions)

		store.Replace(nil)

		analysis, err = analyzer.Analyze(ctx, "headache and nausea")
		require.NoError(t, err)
		assert.Empty(t, analysis.MatchedConditions)
	})
}
