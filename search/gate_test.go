package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/scholarrank/core"
)

func gateCandidates(fused ...float64) []*core.RankedCandidate {
	candidates := make([]*core.RankedCandidate, len(fused))
	for i, f := range fused {
		candidates[i] = &core.RankedCandidate{
			Entry:      &core.CatalogEntry{ID: string(rune('a' + i)), Ordinal: uint64(i + 1)},
			FusedScore: f,
			FinalScore: f,
		}
	}
	return candidates
}

func TestEvaluateConfidence_Confident(t *testing.T) {
	decision := evaluateConfidence(gateCandidates(0.9, 0.85, 0.8, 0.78, 0.75), DefaultConfig())
	assert.False(t, decision.NeedsFallback)
	assert.Empty(t, decision.Reasons)
}

func TestEvaluateConfidence_EmptyList(t *testing.T) {
	decision := evaluateConfidence(nil, DefaultConfig())
	assert.True(t, decision.NeedsFallback)
	assert.Contains(t, decision.Reasons, "no local candidates")
}

func TestEvaluateConfidence_WeakTopAndTooFew(t *testing.T) {
	// Top fused 0.55 with only two candidates: both the score threshold and
	// the count threshold trip.
	decision := evaluateConfidence(gateCandidates(0.55, 0.5), DefaultConfig())
	assert.True(t, decision.NeedsFallback)
	require.Len(t, decision.Reasons, 2)
}

func TestEvaluateConfidence_UnstableTopScores(t *testing.T) {
	decision := evaluateConfidence(gateCandidates(0.95, 0.9, 0.2, 0.15, 0.1), DefaultConfig())
	assert.True(t, decision.NeedsFallback)
	require.Len(t, decision.Reasons, 1)
	assert.Contains(t, decision.Reasons[0], "deviation")
}

func TestEvaluateConfidence_NeverMutates(t *testing.T) {
	candidates := gateCandidates(0.55, 0.5)
	before := []float64{candidates[0].FusedScore, candidates[1].FusedScore}

	evaluateConfidence(candidates, DefaultConfig())

	assert.Equal(t, before[0], candidates[0].FusedScore)
	assert.Equal(t, before[1], candidates[1].FusedScore)
}

func TestTopScoreStdDev(t *testing.T) {
	assert.Zero(t, topScoreStdDev(gateCandidates(0.5), 5), "one score has no deviation")
	assert.Zero(t, topScoreStdDev(gateCandidates(0.7, 0.7, 0.7), 5))

	// Deviation of {1, 0} is 0.5.
	assert.InDelta(t, 0.5, topScoreStdDev(gateCandidates(1.0, 0.0), 5), 1e-9)

	// Only the top window counts: outliers past it are ignored.
	assert.Zero(t, topScoreStdDev(gateCandidates(0.8, 0.8, 0.0), 2))
}
