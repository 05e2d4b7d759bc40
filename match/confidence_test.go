package match

import (
	"testing"

	"github.com/poiesic/medibot/core"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("no matches yields zero", func(t *testing.T) {
		assert.Equal(t, float32(0), Score(nil, nil))
		assert.Equal(t, float32(0), Score([]string{"fever", "cough"}, nil))
	})

	t.Run("symptom contribution capped at 0.5", func(t *testing.T) {
		symptoms := []string{"a", "b", "c", "d", "e", "f"}
		score := Score(symptoms, []*core.ConditionMatch{{Score: 0}})
		assert.InDelta(t, 0.5, score, 0.0001)
	})

	t.Run("best match contributes half its score", func(t *testing.T) {
		matches := []*core.ConditionMatch{
			{Score: 0.8},
			{Score: 0.4},
		}
		score := Score([]string{"fever"}, matches)
		assert.InDelta(t, 0.2+0.4, score, 0.0001)
	})

	t.Run("clamped to one", func(t *testing.T) {
		matches := []*core.ConditionMatch{{Score: 1.5}}
		score := Score([]string{"a", "b", "c"}, matches)
		assert.Equal(t, float32(1), score)
	})

	t.Run("negative similarity does not go below zero", func(t *testing.T) {
		matches := []*core.ConditionMatch{{Score: -0.9}}
		score := Score(nil, matches)
		assert.GreaterOrEqual(t, score, float32(0))
	})
}
