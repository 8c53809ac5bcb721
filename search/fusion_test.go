package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/scholarrank/core"
)

func entry(id string, ordinal uint64) *core.CatalogEntry {
	return &core.CatalogEntry{ID: id, Name: id, Ordinal: ordinal}
}

func TestFuseCandidates_Empty(t *testing.T) {
	candidates := fuseCandidates(nil, nil, true, nil, 60)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestFuseCandidates_TopOfBothListsScoresOne(t *testing.T) {
	a := entry("a", 1)
	lex := []LexicalHit{{Entry: a, Score: 5}}
	vec := []*core.SimilarityMatch{{Entry: a, Score: 0.9}}

	candidates := fuseCandidates(lex, vec, true, nil, 60)
	require.Len(t, candidates, 1)
	assert.InDelta(t, 1.0, candidates[0].FusedScore, 1e-9,
		"rank 1 in both lists reaches the normalized maximum")
	assert.Equal(t, 1, candidates[0].LexicalRank)
	assert.Equal(t, 1, candidates[0].VectorRank)
}

func TestFuseCandidates_SingleListPresence(t *testing.T) {
	a, b, c := entry("a", 1), entry("b", 2), entry("c", 3)
	lex := []LexicalHit{{Entry: a, Score: 5}, {Entry: b, Score: 3}}
	vec := []*core.SimilarityMatch{{Entry: c, Score: 0.8}}

	candidates := fuseCandidates(lex, vec, true, nil, 60)
	require.Len(t, candidates, 3)

	// Items in only one list still receive a score from that list alone.
	for _, cand := range candidates {
		assert.Greater(t, cand.FusedScore, 0.0)
	}
}

func TestFuseCandidates_Deterministic(t *testing.T) {
	a, b, c := entry("a", 1), entry("b", 2), entry("c", 3)
	lex := []LexicalHit{{Entry: a, Score: 5}, {Entry: b, Score: 3}, {Entry: c, Score: 1}}
	vec := []*core.SimilarityMatch{{Entry: b, Score: 0.9}, {Entry: a, Score: 0.7}}

	first := fuseCandidates(lex, vec, true, nil, 60)
	second := fuseCandidates(lex, vec, true, nil, 60)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Entry.ID, second[i].Entry.ID)
		assert.Equal(t, first[i].FusedScore, second[i].FusedScore)
	}
}

func TestFuseCandidates_TieBreakByOrdinal(t *testing.T) {
	// Same ranks in mirrored lists produce identical fused scores; insertion
	// order must decide, not map iteration.
	a, b := entry("newer", 7), entry("older", 2)
	lex := []LexicalHit{{Entry: a, Score: 5}, {Entry: b, Score: 4}}
	vec := []*core.SimilarityMatch{{Entry: b, Score: 0.9}, {Entry: a, Score: 0.8}}

	candidates := fuseCandidates(lex, vec, true, nil, 60)
	require.Len(t, candidates, 2)
	assert.Equal(t, candidates[0].FusedScore, candidates[1].FusedScore)
	assert.Equal(t, "older", candidates[0].Entry.ID)
}

func TestFuseCandidates_ExactMatchRanksFirst(t *testing.T) {
	target := entry("PMSS-2024", 50)
	target.Name = "PMSS-2024 Scholarship"

	// Build lists where the exact-identifier entry is buried: rank 12 in the
	// vector list and absent from the lexical top.
	var lex []LexicalHit
	var vec []*core.SimilarityMatch
	for i := 0; i < 11; i++ {
		e := entry(string(rune('a'+i)), uint64(i+1))
		lex = append(lex, LexicalHit{Entry: e, Score: float64(20 - i)})
		vec = append(vec, &core.SimilarityMatch{Entry: e, Score: float32(0.95) - float32(i)*0.01})
	}
	vec = append(vec, &core.SimilarityMatch{Entry: target, Score: 0.5})

	candidates := fuseCandidates(lex, vec, true, []string{"PMSS-2024"}, 60)
	require.NotEmpty(t, candidates)
	assert.Equal(t, "PMSS-2024", candidates[0].Entry.ID)
	assert.True(t, candidates[0].ExactMatch)
	assert.Greater(t, candidates[0].FusedScore, 1.0)
}

func TestFuseCandidates_LexicalOnlyNormalization(t *testing.T) {
	a := entry("a", 1)
	lex := []LexicalHit{{Entry: a, Score: 5}}

	// Vector search never ran: the single-list maximum is still 1.0, so a
	// degraded request doesn't automatically fail the confidence gate.
	candidates := fuseCandidates(lex, nil, false, nil, 60)
	require.Len(t, candidates, 1)
	assert.InDelta(t, 1.0, candidates[0].FusedScore, 1e-9)
}

func TestMatchesSchemeCode(t *testing.T) {
	e := entry("PMSS-2024", 1)
	e.Name = "PMSS-2024 Scholarship"

	assert.True(t, matchesSchemeCode(e, []string{"PMSS-2024"}))
	assert.False(t, matchesSchemeCode(e, []string{"NSP-2025"}))
	assert.False(t, matchesSchemeCode(e, nil))

	named := entry("other-id", 2)
	named.Name = "Special PMSS-2024 Grant"
	assert.True(t, matchesSchemeCode(named, []string{"PMSS-2024"}))
}
