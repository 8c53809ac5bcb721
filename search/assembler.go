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


package search

import (
	"fmt"
	"sort"

	"github.com/vidyasetu/scholarrank/core"
)

// Reasoning carries per-result provenance so callers can render it without
// recomputation.
type Reasoning struct {
	MatchedRules []string `json:"matched_rules"`
	MemoryBoost  float64  `json:"memory_boost"`
}

// Result is one entry of the final search response.
type Result struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Amount            int64                 `json:"amount"`
	MatchScore        int                   `json:"match_score"`
	EligibilityStatus bool                  `json:"eligibility_status"`
	TrustScore        float32               `json:"trust_score"`
	Reasoning         Reasoning             `json:"reasoning"`
	Deadline          string                `json:"deadline,omitempty"`
	ApplicationLink   string                `json:"application_link,omitempty"`
	Candidate         *core.RankedCandidate `json:"-"`
}

// FallbackResult is one hit returned by an external fallback search
// collaborator. These are appended to the response, never merged into the
// local ranking.
type FallbackResult struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
}

// Response is the ordered output of one search request.
type Response struct {
	Results          []Result         `json:"results"`
	LatencyMS        int64            `json:"latency_ms"`
	MemoryInfluenced bool             `json:"memory_influenced"`
	Degraded         bool             `json:"degraded"`
	FallbackUsed     bool             `json:"fallback_used"`
	FallbackReasons  []string         `json:"fallback_reasons,omitempty"`
	FallbackResults  []FallbackResult `json:"fallback_results,omitempty"`
}

// assembleCandidates composes each candidate's final score from the fused
// score and the memory boost, applies the eligibility override, then sorts
// and truncates to topK.
//
// eligible == false forces the final score to zero unconditionally; no other
// signal can override that. A nil verdict means no profile was supplied and
// the override does not apply. Ties break by catalog insertion ordinal, the
// same rule fusion uses.
func assembleCandidates(candidates []*core.RankedCandidate, cfg Config, topK int) []*core.RankedCandidate {
	for _, c := range candidates {
		c.FinalScore = cfg.FusedWeight*c.FusedScore + cfg.BoostWeight*c.MemoryBoost
		if c.Eligibility != nil && !c.Eligibility.Eligible {
			c.FinalScore = 0
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FinalScore != candidates[j].FinalScore {
			return candidates[i].FinalScore > candidates[j].FinalScore
		}
		return candidates[i].Entry.Ordinal < candidates[j].Entry.Ordinal
	})

	if topK > 0 && len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates
}

// buildResults converts assembled candidates into the response shape.
func buildResults(candidates []*core.RankedCandidate) []Result {
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, Result{
			ID:                c.Entry.ID,
			Name:              c.Entry.Name,
			Amount:            c.Entry.Amount,
			MatchScore:        toMatchScore(c.FinalScore),
			EligibilityStatus: c.Eligibility == nil || c.Eligibility.Eligible,
			TrustScore:        c.Entry.TrustScore,
			Reasoning: Reasoning{
				MatchedRules: matchedRules(c),
				MemoryBoost:  c.MemoryBoost,
			},
			Deadline:        c.Entry.Deadline,
			ApplicationLink: c.Entry.ApplicationLink,
			Candidate:       c,
		})
	}
	return results
}

// toMatchScore maps a final score onto the 0-100 scale. Exact-identifier
// bonuses can push the composite past 1.0, so the scale is clamped.
func toMatchScore(final float64) int {
	if final >= 1.0 {
		return 100
	}
	if final <= 0 {
		return 0
	}
	return int(final*100 + 0.5)
}

// matchedRules lists the signals that placed a candidate in the results.
func matchedRules(c *core.RankedCandidate) []string {
	var rules []string
	if c.ExactMatch {
		rules = append(rules, "exact scheme code match")
	}
	if c.LexicalRank > 0 {
		rules = append(rules, fmt.Sprintf("keyword match (rank %d)", c.LexicalRank))
	}
	if c.VectorRank > 0 {
		rules = append(rules, fmt.Sprintf("semantic similarity (rank %d)", c.VectorRank))
	}
	if c.Eligibility != nil {
		for _, cr := range c.Eligibility.Breakdown {
			if cr.Passed {
				rules = append(rules, cr.Explanation)
			}
		}
	}
	return rules
}
