// Copyright 2025 Vidyasetu Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

var validCategories = map[Category]bool{
	CategoryGeneral:  true,
	CategorySC:       true,
	CategoryST:       true,
	CategoryOBC:      true,
	CategoryMinority: true,
	CategoryEWS:      true,
	CategoryPWD:      true,
}

var validGenders = map[Gender]bool{
	GenderAny:    true,
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

var validEducationLevels = map[EducationLevel]bool{
	EducationClass9To10:  true,
	EducationClass11To12: true,
	EducationUndergrad:   true,
	EducationPostgrad:    true,
	EducationPhD:         true,
	EducationOther:       true,
}

// ValidateProfile validates an ApplicantProfile according to domain rules.
//
// Validation rules:
//   - Category, Gender and Education must come from the closed enumerations
//     (unknown values are rejected at the boundary, never propagated)
//   - Income must be non-negative
//
// Region is free-form and not validated.
func ValidateProfile(profile *ApplicantProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if !validCategories[profile.Category] {
		return fmt.Errorf("%w: %w %q", ErrInvalidProfile, ErrUnknownCategory, profile.Category)
	}

	if profile.Gender != "" && !validGenders[profile.Gender] {
		return fmt.Errorf("%w: %w %q", ErrInvalidProfile, ErrUnknownGender, profile.Gender)
	}

	if profile.Education != "" && !validEducationLevels[profile.Education] {
		return fmt.Errorf("%w: %w %q", ErrInvalidProfile, ErrUnknownEducation, profile.Education)
	}

	if profile.Income < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrNegativeIncome)
	}

	return nil
}

// ValidateCatalogEntry validates a CatalogEntry according to domain rules.
//
// Validation rules:
//   - ID and Name must not be empty
//   - TrustScore must be in [0,1]
//
// NOT validated (populated by ingestion):
//   - Vector (can be empty until the embedding pass runs)
//   - Ordinal (0 is valid before storage assigns one)
func ValidateCatalogEntry(entry *CatalogEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidCatalogEntry)
	}

	if entry.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogEntry, ErrEmptyEntryID)
	}

	if entry.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogEntry, ErrEmptyEntryName)
	}

	if entry.TrustScore < 0 || entry.TrustScore > 1 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogEntry, ErrTrustScoreRange)
	}

	return nil
}

// ValidateInteractionEvent validates an InteractionEvent according to domain rules.
//
// Validation rules:
//   - UserID and EntryID must not be empty
//   - Kind must be a valid InteractionKind
//   - Timestamp must not be in the future
func ValidateInteractionEvent(event *InteractionEvent) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", ErrInvalidInteraction)
	}

	if event.UserID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInteraction, ErrEmptyUserID)
	}

	if event.EntryID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInteraction, ErrEmptyEntryID)
	}

	if err := ValidateInteractionKind(event.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInteraction, err)
	}

	if !IsValidTimestamp(event.Timestamp) {
		return fmt.Errorf("%w: %w", ErrInvalidInteraction, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateInteractionKind validates that an InteractionKind has a valid value.
func ValidateInteractionKind(kind InteractionKind) error {
	if kind < InteractionView || kind > InteractionApply {
		return fmt.Errorf("%w: value %d", ErrInvalidInteractionKind, kind)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
