package scholarrank

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/scholarrank/ai/mock"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/memory"
	"github.com/vidyasetu/scholarrank/search"
)

func setupDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "scholarrank"),
		WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestNewDatabase(t *testing.T) {
	db := setupDatabase(t)
	assert.NotNil(t, db.CatalogRepository())
	assert.NotNil(t, db.InteractionRepository())
}

func TestDatabase_EndToEnd(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()

	pipeline, err := db.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.Ingest(ctx,
		&core.CatalogEntry{
			ID:           "PMSS-2024",
			Name:         "PMSS-2024 Scholarship",
			Description:  "Scholarship for wards of armed forces personnel",
			ProviderType: "government",
			Verified:     true,
			Categories:   []string{"SC", "ST", "General"},
			MaxIncome:    600000,
		},
		&core.CatalogEntry{
			ID:          "MERIT-ENG",
			Name:        "Engineering Merit Award",
			Description: "Merit scholarship for engineering students",
			TrustScore:  0.7,
		})
	require.NoError(t, err)

	searcher, err := db.NewSearcher()
	require.NoError(t, err)

	profile := &core.ApplicantProfile{
		Category: core.CategoryGeneral,
		Income:   400000,
		Region:   "Maharashtra",
	}

	t.Run("search finds the exact scheme", func(t *testing.T) {
		response, err := searcher.Search(ctx, search.Request{Query: "PMSS-2024", Profile: profile})
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)
		assert.Equal(t, "PMSS-2024", response.Results[0].ID)
		assert.True(t, response.Results[0].EligibilityStatus)
	})

	t.Run("recorder feeds the interaction log", func(t *testing.T) {
		recorder, err := db.NewRecorder(memory.WithPoolSize(1))
		require.NoError(t, err)

		recorder.Record(profile.UserID(), "PMSS-2024", core.InteractionClick)
		recorder.Release()

		assert.Eventually(t, func() bool {
			count, err := db.InteractionRepository().CountEvents(ctx, profile.UserID())
			return err == nil && count == 1
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("standalone eligibility check", func(t *testing.T) {
		entry, err := db.CatalogRepository().GetEntry(ctx, "PMSS-2024")
		require.NoError(t, err)

		verdict := db.CheckEligibility(profile, entry)
		require.NotNil(t, verdict)
		assert.True(t, verdict.Eligible)
		assert.NotEmpty(t, verdict.Breakdown)
	})
}
