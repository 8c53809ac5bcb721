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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCatalogEntry indicates a CatalogEntry failed validation.
	ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

	// ErrInvalidProfile indicates an ApplicantProfile failed validation.
	ErrInvalidProfile = errors.New("invalid applicant profile")

	// ErrInvalidInteraction indicates an InteractionEvent failed validation.
	ErrInvalidInteraction = errors.New("invalid interaction event")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyEntryID indicates a catalog entry identifier is missing.
	ErrEmptyEntryID = errors.New("entry id cannot be empty")

	// ErrEmptyEntryName indicates a catalog entry name is missing.
	ErrEmptyEntryName = errors.New("entry name cannot be empty")

	// ErrEmptyUserID indicates an interaction event has no user identifier.
	ErrEmptyUserID = errors.New("user id cannot be empty")

	// ErrUnknownCategory indicates a category outside the closed enumeration.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownGender indicates a gender outside the closed enumeration.
	ErrUnknownGender = errors.New("unknown gender")

	// ErrUnknownEducation indicates an education level outside the closed enumeration.
	ErrUnknownEducation = errors.New("unknown education level")

	// ErrNegativeIncome indicates a negative annual income.
	ErrNegativeIncome = errors.New("income cannot be negative")

	// ErrTrustScoreRange indicates a trust score outside [0,1].
	ErrTrustScoreRange = errors.New("trust score must be in [0,1]")

	// ErrInvalidInteractionKind indicates an invalid InteractionKind value.
	ErrInvalidInteractionKind = errors.New("invalid interaction kind")
)
