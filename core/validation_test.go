package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateProfile(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		profile := &ApplicantProfile{
			Category:  CategorySC,
			Income:    250000,
			Region:    "Maharashtra",
			Education: EducationUndergrad,
			Gender:    GenderFemale,
		}
		assert.NoError(t, ValidateProfile(profile))
	})

	t.Run("minimal profile", func(t *testing.T) {
		// Only the category is mandatory; the rest may be absent.
		assert.NoError(t, ValidateProfile(&ApplicantProfile{Category: CategoryGeneral}))
	})

	t.Run("nil profile", func(t *testing.T) {
		assert.ErrorIs(t, ValidateProfile(nil), ErrInvalidProfile)
	})

	t.Run("unknown category", func(t *testing.T) {
		err := ValidateProfile(&ApplicantProfile{Category: "Martian"})
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("unknown gender", func(t *testing.T) {
		err := ValidateProfile(&ApplicantProfile{Category: CategoryGeneral, Gender: "X"})
		assert.ErrorIs(t, err, ErrUnknownGender)
	})

	t.Run("unknown education", func(t *testing.T) {
		err := ValidateProfile(&ApplicantProfile{Category: CategoryGeneral, Education: "kindergarten"})
		assert.ErrorIs(t, err, ErrUnknownEducation)
	})

	t.Run("negative income", func(t *testing.T) {
		err := ValidateProfile(&ApplicantProfile{Category: CategoryGeneral, Income: -1})
		assert.ErrorIs(t, err, ErrNegativeIncome)
	})
}

func TestValidateCatalogEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry := &CatalogEntry{ID: "PMSS-2024", Name: "PMSS Scholarship", TrustScore: 0.9}
		assert.NoError(t, ValidateCatalogEntry(entry))
	})

	t.Run("nil entry", func(t *testing.T) {
		assert.ErrorIs(t, ValidateCatalogEntry(nil), ErrInvalidCatalogEntry)
	})

	t.Run("empty id", func(t *testing.T) {
		err := ValidateCatalogEntry(&CatalogEntry{Name: "Unnamed"})
		assert.ErrorIs(t, err, ErrEmptyEntryID)
	})

	t.Run("empty name", func(t *testing.T) {
		err := ValidateCatalogEntry(&CatalogEntry{ID: "X"})
		assert.ErrorIs(t, err, ErrEmptyEntryName)
	})

	t.Run("trust score out of range", func(t *testing.T) {
		err := ValidateCatalogEntry(&CatalogEntry{ID: "X", Name: "X", TrustScore: 1.5})
		assert.ErrorIs(t, err, ErrTrustScoreRange)

		err = ValidateCatalogEntry(&CatalogEntry{ID: "X", Name: "X", TrustScore: -0.1})
		assert.ErrorIs(t, err, ErrTrustScoreRange)
	})

	t.Run("missing vector is allowed", func(t *testing.T) {
		// The embedding pass runs after ingestion.
		assert.NoError(t, ValidateCatalogEntry(&CatalogEntry{ID: "X", Name: "X"}))
	})
}

func TestValidateInteractionEvent(t *testing.T) {
	valid := func() *InteractionEvent {
		return &InteractionEvent{
			UserID:    "user-1",
			EntryID:   "PMSS-2024",
			Kind:      InteractionClick,
			Weight:    1.0,
			Timestamp: time.Now().Add(-time.Minute),
		}
	}

	t.Run("valid event", func(t *testing.T) {
		assert.NoError(t, ValidateInteractionEvent(valid()))
	})

	t.Run("nil event", func(t *testing.T) {
		assert.ErrorIs(t, ValidateInteractionEvent(nil), ErrInvalidInteraction)
	})

	t.Run("empty user id", func(t *testing.T) {
		event := valid()
		event.UserID = ""
		assert.ErrorIs(t, ValidateInteractionEvent(event), ErrEmptyUserID)
	})

	t.Run("empty entry id", func(t *testing.T) {
		event := valid()
		event.EntryID = ""
		assert.ErrorIs(t, ValidateInteractionEvent(event), ErrEmptyEntryID)
	})

	t.Run("future timestamp", func(t *testing.T) {
		event := valid()
		event.Timestamp = time.Now().Add(time.Hour)
		assert.ErrorIs(t, ValidateInteractionEvent(event), ErrInvalidTimestamp)
	})
}

func TestValidateInteractionKind(t *testing.T) {
	for _, kind := range []InteractionKind{InteractionView, InteractionClick, InteractionSave, InteractionApply} {
		assert.NoError(t, ValidateInteractionKind(kind))
	}
	assert.ErrorIs(t, ValidateInteractionKind(0), ErrInvalidInteractionKind)
	assert.ErrorIs(t, ValidateInteractionKind(99), ErrInvalidInteractionKind)
}
