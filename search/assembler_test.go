package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/scholarrank/core"
)

func TestAssembleCandidates_Composition(t *testing.T) {
	cfg := DefaultConfig()
	candidates := []*core.RankedCandidate{
		{Entry: entry("a", 1), FusedScore: 0.8, MemoryBoost: 0.5},
	}

	assembled := assembleCandidates(candidates, cfg, 10)
	require.Len(t, assembled, 1)
	assert.InDelta(t, 0.7*0.8+0.3*0.5, assembled[0].FinalScore, 1e-9)
}

func TestAssembleCandidates_EligibilityOverride(t *testing.T) {
	cfg := DefaultConfig()

	// Maximum fused score and boost: ineligibility still forces zero.
	ineligible := &core.RankedCandidate{
		Entry:       entry("blocked", 1),
		FusedScore:  2.0,
		MemoryBoost: 1.0,
		Eligibility: &core.EligibilityVerdict{EntryID: "blocked", Eligible: false},
	}
	eligible := &core.RankedCandidate{
		Entry:       entry("ok", 2),
		FusedScore:  0.3,
		Eligibility: &core.EligibilityVerdict{EntryID: "ok", Eligible: true, Score: 70},
	}

	assembled := assembleCandidates([]*core.RankedCandidate{ineligible, eligible}, cfg, 10)
	require.Len(t, assembled, 2)
	assert.Equal(t, "ok", assembled[0].Entry.ID)
	assert.Zero(t, assembled[1].FinalScore)
}

func TestAssembleCandidates_NilVerdictNoOverride(t *testing.T) {
	cfg := DefaultConfig()
	candidates := []*core.RankedCandidate{
		{Entry: entry("a", 1), FusedScore: 0.5},
	}

	assembled := assembleCandidates(candidates, cfg, 10)
	assert.Greater(t, assembled[0].FinalScore, 0.0, "no profile means no override")
}

func TestAssembleCandidates_SortAndTruncate(t *testing.T) {
	cfg := DefaultConfig()
	candidates := []*core.RankedCandidate{
		{Entry: entry("low", 1), FusedScore: 0.2},
		{Entry: entry("high", 2), FusedScore: 0.9},
		{Entry: entry("mid", 3), FusedScore: 0.5},
	}

	assembled := assembleCandidates(candidates, cfg, 2)
	require.Len(t, assembled, 2)
	assert.Equal(t, "high", assembled[0].Entry.ID)
	assert.Equal(t, "mid", assembled[1].Entry.ID)
}

func TestAssembleCandidates_TieBreakByOrdinal(t *testing.T) {
	cfg := DefaultConfig()
	candidates := []*core.RankedCandidate{
		{Entry: entry("second", 9), FusedScore: 0.5},
		{Entry: entry("first", 3), FusedScore: 0.5},
	}

	assembled := assembleCandidates(candidates, cfg, 10)
	assert.Equal(t, "first", assembled[0].Entry.ID)
	assert.Equal(t, "second", assembled[1].Entry.ID)
}

func TestToMatchScore(t *testing.T) {
	assert.Equal(t, 0, toMatchScore(0))
	assert.Equal(t, 0, toMatchScore(-1))
	assert.Equal(t, 50, toMatchScore(0.5))
	assert.Equal(t, 100, toMatchScore(1.0))
	assert.Equal(t, 100, toMatchScore(1.4), "exact-match bonus clamps at 100")
}

func TestBuildResults(t *testing.T) {
	candidate := &core.RankedCandidate{
		Entry: &core.CatalogEntry{
			ID:         "PMSS-2024",
			Name:       "PMSS-2024 Scholarship",
			Amount:     30000,
			TrustScore: 0.9,
			Ordinal:    1,
		},
		LexicalRank: 1,
		VectorRank:  2,
		ExactMatch:  true,
		FusedScore:  1.5,
		MemoryBoost: 0.2,
		FinalScore:  1.11,
		Eligibility: &core.EligibilityVerdict{
			Eligible: true,
			Score:    85,
			Breakdown: []core.CriterionResult{
				{Criterion: "category", Passed: true, Explanation: "category SC is eligible"},
				{Criterion: "region", Passed: false, Explanation: "region not covered"},
			},
		},
	}

	results := buildResults([]*core.RankedCandidate{candidate})
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "PMSS-2024", r.ID)
	assert.Equal(t, 100, r.MatchScore)
	assert.True(t, r.EligibilityStatus)
	assert.InDelta(t, 0.2, r.Reasoning.MemoryBoost, 1e-9)
	assert.Contains(t, r.Reasoning.MatchedRules, "exact scheme code match")
	assert.Contains(t, r.Reasoning.MatchedRules, "keyword match (rank 1)")
	assert.Contains(t, r.Reasoning.MatchedRules, "semantic similarity (rank 2)")
	assert.Contains(t, r.Reasoning.MatchedRules, "category SC is eligible")
	assert.NotContains(t, r.Reasoning.MatchedRules, "region not covered", "failed criteria are not matched rules")
	assert.Same(t, candidate, r.Candidate)
}
