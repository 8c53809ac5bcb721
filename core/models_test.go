package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("scholarship"), IDFromContent("scholarship"))
	})

	t.Run("distinct content distinct ids", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("scholarship"), IDFromContent("fellowship"))
	})

	t.Run("empty content is valid", func(t *testing.T) {
		assert.Equal(t, IDFromContent(""), IDFromContent(""))
	})
}

func TestApplicantProfile_UserID(t *testing.T) {
	profile := &ApplicantProfile{
		Category:  CategorySC,
		Region:    "Maharashtra",
		Education: EducationUndergrad,
		Gender:    GenderFemale,
	}

	t.Run("stable across calls", func(t *testing.T) {
		assert.Equal(t, profile.UserID(), profile.UserID())
	})

	t.Run("sixteen hex digits", func(t *testing.T) {
		id := profile.UserID()
		assert.Len(t, id, 16)
		for _, c := range id {
			assert.Contains(t, "0123456789abcdef", string(c))
		}
	})

	t.Run("income does not change the identifier", func(t *testing.T) {
		richer := *profile
		richer.Income = 900000
		assert.Equal(t, profile.UserID(), richer.UserID())
	})

	t.Run("attribute change changes the identifier", func(t *testing.T) {
		moved := *profile
		moved.Region = "Kerala"
		assert.NotEqual(t, profile.UserID(), moved.UserID())
	})
}

func TestCatalogEntry_SearchText(t *testing.T) {
	entry := &CatalogEntry{
		ID:          "PMSS-2024",
		Name:        "Prime Minister's Scholarship",
		Provider:    "Ministry of Defence",
		Description: "For wards of armed forces personnel",
		Categories:  []string{"General", "OBC"},
		Keywords:    []string{"defence", "armed forces"},
	}

	text := entry.SearchText()
	assert.Contains(t, text, "PMSS-2024")
	assert.Contains(t, text, "Prime Minister's Scholarship")
	assert.Contains(t, text, "Ministry of Defence")
	assert.Contains(t, text, "armed forces personnel")
	assert.Contains(t, text, "OBC")
	assert.Contains(t, text, "defence")
}
