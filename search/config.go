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
	"errors"
	"math"
	"time"
)

// Config holds the ranking pipeline's tuning parameters. The defaults were
// chosen empirically; change them only with ablation data to back it up.
type Config struct {
	// RRFConstant is the k in the reciprocal-rank formula 1/(k+rank).
	// k=60 is the standard value validated across domains.
	RRFConstant int

	// LexicalLimit is the maximum number of lexical hits fed into fusion.
	LexicalLimit int

	// VectorLimit is the maximum number of vector hits fed into fusion.
	VectorLimit int

	// ConfidenceThreshold is the minimum fused score of the top candidate.
	// Below it, the gate signals that an external fallback search is warranted.
	ConfidenceThreshold float64

	// MinCandidates is the minimum result-set size before the gate trips.
	MinCandidates int

	// StdDevThreshold is the maximum standard deviation of the top composite
	// scores. Above it, the ranking is considered unstable.
	StdDevThreshold float64

	// StdDevWindow is how many top scores the deviation is computed over.
	StdDevWindow int

	// FusedWeight and BoostWeight compose the final score. BoostWeight also
	// caps how much personalization can contribute. They must sum to 1.
	FusedWeight float64
	BoostWeight float64

	// VectorTimeout bounds the embedding call plus the similarity scan.
	// On expiry the request degrades to lexical-only ranking.
	VectorTimeout time.Duration
}

// DefaultConfig returns the pipeline configuration with empirically chosen
// defaults.
func DefaultConfig() Config {
	return Config{
		RRFConstant:         60,
		LexicalLimit:        20,
		VectorLimit:         20,
		ConfidenceThreshold: 0.6,
		MinCandidates:       3,
		StdDevThreshold:     0.25,
		StdDevWindow:        5,
		FusedWeight:         0.7,
		BoostWeight:         0.3,
		VectorTimeout:       3 * time.Second,
	}
}

// Validate checks configuration consistency.
func (c Config) Validate() error {
	if c.RRFConstant <= 0 {
		return errors.New("RRF constant must be positive")
	}
	if c.LexicalLimit <= 0 || c.VectorLimit <= 0 {
		return errors.New("result limits must be positive")
	}
	if c.MinCandidates < 0 || c.StdDevWindow <= 0 {
		return errors.New("gate windows must be positive")
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return errors.New("confidence threshold must be in [0,1]")
	}
	if c.StdDevThreshold < 0 {
		return errors.New("stddev threshold must be non-negative")
	}
	if math.Abs(c.FusedWeight+c.BoostWeight-1.0) > 1e-9 {
		return errors.New("fused and boost weights must sum to 1")
	}
	if c.VectorTimeout <= 0 {
		return errors.New("vector timeout must be positive")
	}
	return nil
}
