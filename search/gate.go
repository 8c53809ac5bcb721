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
	"math"

	"github.com/vidyasetu/scholarrank/core"
)

// GateDecision is the confidence gate's verdict over a ranked candidate list.
// Reasons exist purely for observability; the gate never mutates the list.
type GateDecision struct {
	NeedsFallback bool
	Reasons       []string
}

// evaluateConfidence decides whether the local ranking is trustworthy or an
// external fallback search should additionally be invoked. Any single trigger
// suffices: weak top candidate, too few candidates, or unstable top scores.
func evaluateConfidence(candidates []*core.RankedCandidate, cfg Config) GateDecision {
	var decision GateDecision

	if len(candidates) == 0 {
		decision.NeedsFallback = true
		decision.Reasons = append(decision.Reasons, "no local candidates")
		return decision
	}

	if top := candidates[0].FusedScore; top < cfg.ConfidenceThreshold {
		decision.NeedsFallback = true
		decision.Reasons = append(decision.Reasons,
			fmt.Sprintf("top fused score %.2f below threshold %.2f", top, cfg.ConfidenceThreshold))
	}

	if len(candidates) < cfg.MinCandidates {
		decision.NeedsFallback = true
		decision.Reasons = append(decision.Reasons,
			fmt.Sprintf("only %d candidates, need %d", len(candidates), cfg.MinCandidates))
	}

	if sd := topScoreStdDev(candidates, cfg.StdDevWindow); sd > cfg.StdDevThreshold {
		decision.NeedsFallback = true
		decision.Reasons = append(decision.Reasons,
			fmt.Sprintf("top score deviation %.2f above threshold %.2f", sd, cfg.StdDevThreshold))
	}

	return decision
}

// topScoreStdDev computes the population standard deviation of the top window
// final scores. Fewer than two scores means no measurable instability.
func topScoreStdDev(candidates []*core.RankedCandidate, window int) float64 {
	n := len(candidates)
	if n > window {
		n = window
	}
	if n < 2 {
		return 0
	}

	var sum float64
	for _, c := range candidates[:n] {
		sum += c.FinalScore
	}
	mean := sum / float64(n)

	var variance float64
	for _, c := range candidates[:n] {
		d := c.FinalScore - mean
		variance += d * d
	}
	variance /= float64(n)

	return math.Sqrt(variance)
}
