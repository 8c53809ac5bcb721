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


package eligibility

import (
	"fmt"

	"github.com/vidyasetu/scholarrank/core"
)

// Criterion point allocations on the 0-100 scale. Category and income are
// hard requirements; the rest are additive.
const (
	categoryPoints  = 30
	incomePoints    = 25
	regionPoints    = 15
	educationPoints = 10
	genderPoints    = 10
	trustPoints     = 10

	// eligibleThreshold is the minimum score for a pass once both hard
	// requirements hold.
	eligibleThreshold = 60
)

// Engine evaluates applicant profiles against catalog entries.
//
// Evaluate is a pure function: no clock, no randomness, no external calls.
// Identical inputs always produce byte-identical verdicts, so re-evaluation
// is free and verdicts are never cached across profile changes.
type Engine struct{}

// NewEngine creates an eligibility engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate scores the profile against the entry.
//
// Category membership and the income ceiling are hard requirements: failing
// either short-circuits to eligible=false with score 0, and criteria after
// the failing one are not evaluated. Once both hold, region, education,
// gender and provider trust add points and eligible means score >= 60.
// Every evaluated criterion carries an explanation, pass or fail.
func (e *Engine) Evaluate(profile *core.ApplicantProfile, entry *core.CatalogEntry) *core.EligibilityVerdict {
	verdict := &core.EligibilityVerdict{
		EntryID:     entry.ID,
		MissingDocs: MissingDocuments(profile, entry),
	}

	category := evalCategory(profile, entry)
	verdict.Breakdown = append(verdict.Breakdown, category)
	if !category.Passed {
		return verdict
	}

	income := evalIncome(profile, entry)
	verdict.Breakdown = append(verdict.Breakdown, income)
	if !income.Passed {
		return verdict
	}

	verdict.Score = category.Points + income.Points

	for _, result := range []core.CriterionResult{
		evalRegion(profile, entry),
		evalEducation(profile, entry),
		evalGender(profile, entry),
		evalTrust(entry),
	} {
		verdict.Breakdown = append(verdict.Breakdown, result)
		verdict.Score += result.Points
	}

	verdict.Eligible = verdict.Score >= eligibleThreshold
	return verdict
}

func evalCategory(profile *core.ApplicantProfile, entry *core.CatalogEntry) core.CriterionResult {
	result := core.CriterionResult{
		Criterion: "category",
		MaxPoints: categoryPoints,
	}

	if len(entry.Categories) == 0 {
		result.Passed = true
		result.Points = categoryPoints
		result.Explanation = "open to all categories"
		return result
	}

	for _, c := range entry.Categories {
		if c == string(profile.Category) {
			result.Passed = true
			result.Points = categoryPoints
			result.Explanation = fmt.Sprintf("category %s is eligible", profile.Category)
			return result
		}
	}

	result.Explanation = fmt.Sprintf("category %s is not among the eligible categories %v", profile.Category, entry.Categories)
	return result
}

func evalIncome(profile *core.ApplicantProfile, entry *core.CatalogEntry) core.CriterionResult {
	result := core.CriterionResult{
		Criterion: "income",
		MaxPoints: incomePoints,
	}

	if entry.MaxIncome == 0 {
		result.Passed = true
		result.Points = incomePoints
		result.Explanation = "no income ceiling"
		return result
	}

	// Income exactly at the ceiling passes; one unit over fails.
	if profile.Income <= entry.MaxIncome {
		result.Passed = true
		result.Points = incomePoints
		result.Explanation = fmt.Sprintf("annual income %d is within the ceiling %d", profile.Income, entry.MaxIncome)
		return result
	}

	result.Explanation = fmt.Sprintf("annual income %d exceeds the ceiling %d", profile.Income, entry.MaxIncome)
	return result
}

func evalRegion(profile *core.ApplicantProfile, entry *core.CatalogEntry) core.CriterionResult {
	result := core.CriterionResult{
		Criterion: "region",
		MaxPoints: regionPoints,
	}

	if len(entry.Regions) == 0 {
		result.Passed = true
		result.Points = regionPoints
		result.Explanation = "no regional restriction"
		return result
	}
	if profile.Region == "" {
		// Absent profile field: not a failure, but no points either.
		result.Explanation = "region not provided"
		return result
	}

	for _, r := range entry.Regions {
		if r == profile.Region {
			result.Passed = true
			result.Points = regionPoints
			result.Explanation = fmt.Sprintf("region %s is covered", profile.Region)
			return result
		}
	}

	result.Explanation = fmt.Sprintf("region %s is not among the covered regions %v", profile.Region, entry.Regions)
	return result
}

func evalEducation(profile *core.ApplicantProfile, entry *core.CatalogEntry) core.CriterionResult {
	result := core.CriterionResult{
		Criterion: "education",
		MaxPoints: educationPoints,
	}

	if len(entry.EducationLevels) == 0 {
		result.Passed = true
		result.Points = educationPoints
		result.Explanation = "open to all education levels"
		return result
	}
	if profile.Education == "" {
		result.Explanation = "education level not provided"
		return result
	}

	for _, lvl := range entry.EducationLevels {
		if lvl == string(profile.Education) {
			result.Passed = true
			result.Points = educationPoints
			result.Explanation = fmt.Sprintf("education level %s is covered", profile.Education)
			return result
		}
	}

	result.Explanation = fmt.Sprintf("education level %s is not among the covered levels %v", profile.Education, entry.EducationLevels)
	return result
}

func evalGender(profile *core.ApplicantProfile, entry *core.CatalogEntry) core.CriterionResult {
	result := core.CriterionResult{
		Criterion: "gender",
		MaxPoints: genderPoints,
	}

	if entry.Gender == "" || entry.Gender == "All" || entry.Gender == string(core.GenderAny) {
		result.Passed = true
		result.Points = genderPoints
		result.Explanation = "open to all genders"
		return result
	}
	if profile.Gender == "" {
		result.Explanation = "gender not provided"
		return result
	}

	if entry.Gender == string(profile.Gender) {
		result.Passed = true
		result.Points = genderPoints
		result.Explanation = fmt.Sprintf("restricted to %s applicants", entry.Gender)
		return result
	}

	result.Explanation = fmt.Sprintf("restricted to %s applicants", entry.Gender)
	return result
}

func evalTrust(entry *core.CatalogEntry) core.CriterionResult {
	// Round to the nearest point; float32 trust scores like 0.9 sit just
	// below the exact decimal and would truncate a point away.
	points := int(float64(entry.TrustScore)*trustPoints + 0.5)
	return core.CriterionResult{
		Criterion:   "provider_trust",
		Passed:      points > 0,
		Points:      points,
		MaxPoints:   trustPoints,
		Explanation: fmt.Sprintf("provider trust score %.2f", entry.TrustScore),
	}
}
