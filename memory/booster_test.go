package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/storage/badger"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestBooster(t *testing.T) (*Booster, func(*core.InteractionEvent)) {
	t.Helper()

	catalogRepo, interactionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		interactionRepo.Close()
		catalogRepo.Close()
		backend.Close()
	})

	booster, err := NewBooster(interactionRepo, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	appendEvent := func(ev *core.InteractionEvent) {
		_, err := interactionRepo.AppendEvents(context.Background(), ev)
		require.NoError(t, err)
	}
	return booster, appendEvent
}

func unitVec(dim int, axis int) []float32 {
	v := make([]float32, dim)
	v[axis] = 1
	return v
}

func candidate(id string, ordinal uint64, vec []float32) *core.RankedCandidate {
	return &core.RankedCandidate{
		Entry: &core.CatalogEntry{ID: id, Name: id, Ordinal: ordinal, Vector: vec},
	}
}

func event(user string, vec []float32, age time.Duration) *core.InteractionEvent {
	return &core.InteractionEvent{
		UserID:    user,
		EntryID:   "some-entry",
		Kind:      core.InteractionClick,
		Vector:    vec,
		Weight:    1.0,
		Timestamp: fixedNow.Add(-age),
	}
}

func TestBoost_ColdStart(t *testing.T) {
	booster, appendEvent := newTestBooster(t)
	ctx := context.Background()

	candidates := []*core.RankedCandidate{candidate("a", 1, unitVec(4, 0))}

	t.Run("zero events", func(t *testing.T) {
		influenced, err := booster.Boost(ctx, "user-1", candidates)
		require.NoError(t, err)
		assert.False(t, influenced)
		assert.Zero(t, candidates[0].MemoryBoost)
	})

	t.Run("one event is still cold", func(t *testing.T) {
		appendEvent(event("user-1", unitVec(4, 0), time.Hour))

		influenced, err := booster.Boost(ctx, "user-1", candidates)
		require.NoError(t, err)
		assert.False(t, influenced)
		assert.Zero(t, candidates[0].MemoryBoost, "boost must be exactly zero below the event minimum regardless of similarity")
	})

	t.Run("two events warm up", func(t *testing.T) {
		appendEvent(event("user-1", unitVec(4, 0), 2*time.Hour))

		influenced, err := booster.Boost(ctx, "user-1", candidates)
		require.NoError(t, err)
		assert.True(t, influenced)
		assert.Greater(t, candidates[0].MemoryBoost, 0.0)
	})
}

func TestBoost_BoundedToUnitInterval(t *testing.T) {
	booster, appendEvent := newTestBooster(t)
	ctx := context.Background()

	// Identical vectors: similarity 1.0 against every event, so the
	// normalized boost lands exactly at the upper bound.
	vec := unitVec(4, 2)
	appendEvent(event("user-2", vec, time.Hour))
	appendEvent(event("user-2", vec, 48*time.Hour))
	appendEvent(event("user-2", vec, 10*24*time.Hour))

	candidates := []*core.RankedCandidate{candidate("b", 1, vec)}
	influenced, err := booster.Boost(ctx, "user-2", candidates)
	require.NoError(t, err)
	assert.True(t, influenced)
	assert.InDelta(t, 1.0, candidates[0].MemoryBoost, 1e-9)
	assert.LessOrEqual(t, candidates[0].MemoryBoost, 1.0)
}

func TestBoost_PreferenceOrdering(t *testing.T) {
	booster, appendEvent := newTestBooster(t)
	ctx := context.Background()

	// Three clicks along one axis: candidates on that axis must outscore
	// orthogonal ones.
	technical := unitVec(4, 0)
	appendEvent(event("user-3", technical, time.Hour))
	appendEvent(event("user-3", technical, 2*time.Hour))
	appendEvent(event("user-3", technical, 3*time.Hour))

	matching := candidate("technical", 1, technical)
	other := candidate("arts", 2, unitVec(4, 3))

	influenced, err := booster.Boost(ctx, "user-3", []*core.RankedCandidate{matching, other})
	require.NoError(t, err)
	assert.True(t, influenced)
	assert.Greater(t, matching.MemoryBoost, other.MemoryBoost)
	assert.Zero(t, other.MemoryBoost)
}

func TestBoost_EmptyCandidateVector(t *testing.T) {
	booster, appendEvent := newTestBooster(t)
	ctx := context.Background()

	appendEvent(event("user-4", unitVec(4, 0), time.Hour))
	appendEvent(event("user-4", unitVec(4, 0), 2*time.Hour))

	c := candidate("no-vector", 1, nil)
	influenced, err := booster.Boost(ctx, "user-4", []*core.RankedCandidate{c})
	require.NoError(t, err)
	assert.False(t, influenced)
	assert.Zero(t, c.MemoryBoost)
}

func TestDecayedWeight_SevenDayHalfLife(t *testing.T) {
	booster := &Booster{lambda: DefaultDecayLambda}

	fresh := booster.decayedWeight(&core.InteractionEvent{Weight: 1, Timestamp: fixedNow}, fixedNow)
	week := booster.decayedWeight(&core.InteractionEvent{Weight: 1, Timestamp: fixedNow.Add(-7 * 24 * time.Hour)}, fixedNow)

	assert.InDelta(t, 1.0, fresh, 1e-9)
	assert.InDelta(t, 0.5, week/fresh, 0.01, "7-day-old weight is about half the fresh weight")
	assert.InDelta(t, math.Exp(-0.7), week, 1e-9)
}

func TestDecayedWeight_FutureTimestampClamped(t *testing.T) {
	booster := &Booster{lambda: DefaultDecayLambda}

	w := booster.decayedWeight(&core.InteractionEvent{Weight: 1, Timestamp: fixedNow.Add(time.Hour)}, fixedNow)
	assert.Equal(t, 1.0, w)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, float64(cosineSimilarity([]float32{1, 0}, []float32{2, 0})), 1e-6)
	assert.InDelta(t, 0.0, float64(cosineSimilarity([]float32{1, 0}, []float32{0, 1})), 1e-6)
	assert.Zero(t, cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}), "dimension mismatch")
	assert.Zero(t, cosineSimilarity(nil, nil))
}
