package match

import "github.com/poiesic/medibot/core"

// Score computes an overall confidence for a query analysis from the
// extracted symptoms and the ranked condition matches. Without any
// matched condition the confidence is zero. Otherwise each detected
// symptom adds 0.2 up to a cap of 0.5, and the best match similarity
// contributes half its value. The result is clamped to [0, 1].
func Score(symptoms []string, matches []*core.ConditionMatch) float32 {
	if len(matches) == 0 {
		return 0
	}

	symptomScore := float32(len(symptoms)) * 0.2
	if symptomScore > 0.5 {
		symptomScore = 0.5
	}

	confidence := symptomScore + matches[0].Score*0.5
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
