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


package safety

import (
	"fmt"
	"strings"
	"time"

	"github.com/vidyasetu/scholarrank/core"
)

// scamPatterns are phrases that commonly appear in fraudulent scholarship
// listings. Matching is case-insensitive substring search.
var scamPatterns = []string{
	"guaranteed selection",
	"100% success",
	"pay now",
	"processing fee required",
	"bank details for verification",
	"whatsapp only contact",
	"personal pan/aadhaar share",
	"urgent apply now",
	"limited seats",
	"act fast",
	"confirm your slot",
	"registration fee",
	"admission guaranteed",
	"no documents required",
	"instant approval",
	"wire transfer",
	"western union",
	"lottery winner",
	"selected randomly",
	"claim your prize",
	"send money",
	"upfront payment",
	"confidential opportunity",
}

// DetectScamIndicators returns the suspicious patterns found in the text.
// Empty input yields an empty slice.
func DetectScamIndicators(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var detected []string
	for _, pattern := range scamPatterns {
		if strings.Contains(lower, pattern) {
			detected = append(detected, pattern)
		}
	}
	return detected
}

// TrustScore computes a provider trust score in [0,1] for an entry. It starts
// neutral at 0.5, rewards government and CSR providers, verification and
// official links, and penalizes each detected scam indicator.
func TrustScore(entry *core.CatalogEntry) float32 {
	score := float32(0.5)

	switch strings.ToLower(entry.ProviderType) {
	case "government":
		score += 0.3
	case "csr":
		score += 0.2
	}

	if entry.Verified {
		score += 0.15
	}
	if entry.ApplicationLink != "" {
		score += 0.05
		if strings.Contains(entry.ApplicationLink, "gov.in") {
			score += 0.05
		}
	}

	indicators := DetectScamIndicators(entry.Name + " " + entry.Description)
	score -= float32(len(indicators)) * 0.1

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// DeadlineInfo describes how close an entry's application deadline is.
type DeadlineInfo struct {
	Deadline      string `json:"deadline"`
	Expired       bool   `json:"is_expired"`
	DaysRemaining int    `json:"days_remaining"`
	DisplayText   string `json:"display_text"`
	Urgency       string `json:"urgency_level"` // expired, critical, warning, normal
}

// noDeadlineDays stands in for "no deadline" so urgency sorting stays simple.
const noDeadlineDays = 999

// ParseDeadline interprets a YYYY-MM-DD deadline relative to now. Malformed
// or missing deadlines are not errors; they come back as non-expired with the
// raw text preserved.
func ParseDeadline(deadline string, now time.Time) DeadlineInfo {
	info := DeadlineInfo{Deadline: deadline}

	if deadline == "" {
		info.DaysRemaining = noDeadlineDays
		info.DisplayText = "No deadline specified"
		info.Urgency = "normal"
		return info
	}

	parsed, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		info.DaysRemaining = noDeadlineDays
		info.DisplayText = "Deadline: " + deadline
		info.Urgency = "normal"
		return info
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(parsed.Sub(today).Hours() / 24)
	info.DaysRemaining = days

	switch {
	case days < 0:
		info.Expired = true
		info.Urgency = "expired"
		info.DisplayText = fmt.Sprintf("Expired %d days ago", -days)
	case days == 0:
		info.Urgency = "critical"
		info.DisplayText = "Deadline today"
	case days <= 7:
		info.Urgency = "critical"
		info.DisplayText = fmt.Sprintf("%d days left, urgent", days)
	case days <= 30:
		info.Urgency = "warning"
		info.DisplayText = fmt.Sprintf("%d days remaining", days)
	default:
		info.Urgency = "normal"
		info.DisplayText = fmt.Sprintf("%d days remaining", days)
	}

	return info
}

// Assessment is the combined safety view of one entry.
type Assessment struct {
	TrustScore     float32      `json:"trust_score"`
	ScamIndicators []string     `json:"scam_indicators"`
	DeadlineInfo   DeadlineInfo `json:"deadline_info"`
	Safe           bool         `json:"is_safe"`
	Warnings       []string     `json:"warnings"`
}

// Assess validates an entry for display: scam scan, trust score and deadline
// urgency. An entry is safe when nothing suspicious was found and the trust
// score is at least neutral.
func Assess(entry *core.CatalogEntry, now time.Time) Assessment {
	indicators := DetectScamIndicators(entry.Name + " " + entry.Description)
	trust := TrustScore(entry)

	warnings := make([]string, 0, len(indicators))
	for _, indicator := range indicators {
		warnings = append(warnings, fmt.Sprintf("detected suspicious pattern: %q", indicator))
	}

	return Assessment{
		TrustScore:     trust,
		ScamIndicators: indicators,
		DeadlineInfo:   ParseDeadline(entry.Deadline, now),
		Safe:           len(indicators) == 0 && trust >= 0.5,
		Warnings:       warnings,
	}
}
