package reembed

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/scholarrank/ai/mock"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/storage"
	"github.com/vidyasetu/scholarrank/storage/badger"
)

func setupCatalog(t *testing.T) storage.CatalogRepository {
	t.Helper()
	catalogRepo, interactionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		interactionRepo.Close()
		catalogRepo.Close()
		backend.Close()
	})
	return catalogRepo
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return nil
		}, 3, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, 5, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when exhausted", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("persistent")
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return wantErr
		}, 3, time.Millisecond)
		assert.Equal(t, wantErr, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("invalid max attempts", func(t *testing.T) {
		err := RetryWithBackoff(ctx, func() error { return nil }, 0, time.Millisecond)
		assert.Equal(t, ErrInvalidMaxAttempts, err)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := RetryWithBackoff(cancelled, func() error { return errors.New("x") }, 3, time.Millisecond)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNormalizeVector(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		result := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, result[0], 1e-6)
		assert.InDelta(t, 0.8, result[1], 1e-6)

		var magnitude float64
		for _, v := range result {
			magnitude += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		assert.Equal(t, []float32{0, 0, 0}, NormalizeVector([]float32{0, 0, 0}))
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		input := []float32{3, 4}
		NormalizeVector(input)
		assert.Equal(t, []float32{3, 4}, input)
	})
}

func TestReembedder_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		catalogRepo := setupCatalog(t)
		var out bytes.Buffer

		reembedder := NewReembedder(catalogRepo, mock.NewMockEmbedder(), nil, &out)
		require.NoError(t, reembedder.Run(ctx))
		assert.Contains(t, out.String(), "No entries found")
	})

	t.Run("reembeds and normalizes every entry", func(t *testing.T) {
		catalogRepo := setupCatalog(t)
		_, err := catalogRepo.AddEntries(ctx,
			&core.CatalogEntry{ID: "A", Name: "A", TrustScore: 0.5},
			&core.CatalogEntry{ID: "B", Name: "B", TrustScore: 0.5, Vector: []float32{9, 9}},
			&core.CatalogEntry{ID: "C", Name: "C", TrustScore: 0.5})
		require.NoError(t, err)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{3, 4}
			}
			return vectors, nil
		}

		var out bytes.Buffer
		config := &Config{BatchSize: 2, ReportInterval: 1, MaxRetries: 1, RetryDelay: time.Millisecond}
		reembedder := NewReembedder(catalogRepo, embedder, config, &out)
		require.NoError(t, reembedder.Run(ctx))

		for _, id := range []string{"A", "B", "C"} {
			entry, err := catalogRepo.GetEntry(ctx, id)
			require.NoError(t, err)
			require.Len(t, entry.Vector, 2, "entry %s", id)
			assert.InDelta(t, 0.6, entry.Vector[0], 1e-6)
			assert.InDelta(t, 0.8, entry.Vector[1], 1e-6)
		}
		assert.Contains(t, out.String(), "Reembedding complete")
	})

	t.Run("embedding failure surfaces after retries", func(t *testing.T) {
		catalogRepo := setupCatalog(t)
		_, err := catalogRepo.AddEntries(ctx, &core.CatalogEntry{ID: "A", Name: "A", TrustScore: 0.5})
		require.NoError(t, err)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(_ context.Context, _ []string) ([][]float32, error) {
			return nil, errors.New("model offline")
		}

		var out bytes.Buffer
		config := &Config{BatchSize: 10, ReportInterval: 10, MaxRetries: 2, RetryDelay: time.Millisecond}
		reembedder := NewReembedder(catalogRepo, embedder, config, &out)
		assert.Error(t, reembedder.Run(ctx))
	})
}

func TestProgressTracker(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 10, 5)

	t.Run("update before start is ignored", func(t *testing.T) {
		tracker.Update(3)
		assert.Empty(t, out.String())
	})

	tracker.Start()
	tracker.Update(5)
	assert.Contains(t, out.String(), "5/10")

	tracker.Update(12) // capped at total
	tracker.Finish()
	assert.Contains(t, out.String(), "10/10 (100.0%)")
}
