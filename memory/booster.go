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


package memory

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/storage"
)

const (
	// DefaultDecayLambda gives interaction weights a roughly 7-day half-life
	// via weight(t) = exp(-lambda * ageDays).
	DefaultDecayLambda = 0.1

	// DefaultRecencyWindow bounds how many recent events feed the boost.
	DefaultRecencyWindow = 50

	// DefaultMinEvents is the cold-start floor: users with fewer stored
	// interactions get a zero boost unconditionally.
	DefaultMinEvents = 2

	// hoursPerDay converts event age to the decay formula's day unit.
	hoursPerDay = 24.0
)

// Booster computes the personalization boost for ranked candidates from a
// user's interaction log.
//
// The boost is a pure function of (candidate, log snapshot, now): it reads
// the log and never writes, so it is reproducible for a fixed log and a
// fixed clock.
type Booster struct {
	interactions storage.InteractionRepository
	lambda       float64
	window       int
	minEvents    int
	now          func() time.Time
	logger       *slog.Logger
}

// BoosterOption configures a Booster.
type BoosterOption func(*Booster) error

// WithDecayLambda overrides the decay constant. The default was tuned for a
// 7-day half-life; change it only with ablation data.
func WithDecayLambda(lambda float64) BoosterOption {
	return func(b *Booster) error {
		if lambda > 0 {
			b.lambda = lambda
		}
		return nil
	}
}

// WithRecencyWindow overrides how many recent events are considered.
func WithRecencyWindow(window int) BoosterOption {
	return func(b *Booster) error {
		if window > 0 {
			b.window = window
		}
		return nil
	}
}

// WithClock sets the time source. Tests use this to pin "now".
func WithClock(now func() time.Time) BoosterOption {
	return func(b *Booster) error {
		if now != nil {
			b.now = now
		}
		return nil
	}
}

// WithBoosterLogger sets a custom logger.
// Default is slog.Default().
func WithBoosterLogger(logger *slog.Logger) BoosterOption {
	return func(b *Booster) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBooster creates a booster over the interaction log.
func NewBooster(interactions storage.InteractionRepository, opts ...BoosterOption) (*Booster, error) {
	if interactions == nil {
		return nil, ErrInteractionRepositoryRequired
	}

	b := &Booster{
		interactions: interactions,
		lambda:       DefaultDecayLambda,
		window:       DefaultRecencyWindow,
		minEvents:    DefaultMinEvents,
		now:          time.Now,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Boost computes a [0,1] boost for each candidate and records it on the
// candidate. Reports whether any candidate received a non-zero boost.
//
// Fewer than the cold-start minimum of stored interactions means every boost
// is exactly zero regardless of similarity.
func (b *Booster) Boost(ctx context.Context, userID string, candidates []*core.RankedCandidate) (bool, error) {
	count, err := b.interactions.CountEvents(ctx, userID)
	if err != nil {
		return false, err
	}
	if count < b.minEvents {
		b.logger.Debug("cold start, no personalization", "userID", userID, "events", count)
		for _, c := range candidates {
			c.MemoryBoost = 0
		}
		return false, nil
	}

	events, err := b.interactions.RecentEvents(ctx, userID, b.window)
	if err != nil {
		return false, err
	}

	now := b.now()

	// Total decayed weight normalizes the boost into [0,1]: a candidate
	// perfectly similar to every recent interaction scores 1.0.
	var totalWeight float64
	for _, ev := range events {
		totalWeight += b.decayedWeight(ev, now)
	}

	influenced := false
	for _, c := range candidates {
		c.MemoryBoost = b.boostFor(c.Entry, events, now, totalWeight)
		if c.MemoryBoost > 0 {
			influenced = true
		}
	}
	return influenced, nil
}

// boostFor sums decay-weighted similarity between the candidate's embedding
// and each event's embedding, normalized by the total decayed weight.
func (b *Booster) boostFor(entry *core.CatalogEntry, events []*core.InteractionEvent, now time.Time, totalWeight float64) float64 {
	if len(entry.Vector) == 0 || totalWeight <= 0 {
		return 0
	}

	var sum float64
	for _, ev := range events {
		if len(ev.Vector) == 0 {
			continue
		}
		sim := cosineSimilarity(entry.Vector, ev.Vector)
		if sim <= 0 {
			continue
		}
		sum += float64(sim) * b.decayedWeight(ev, now)
	}

	boost := sum / totalWeight
	if boost > 1 {
		boost = 1
	}
	return boost
}

// decayedWeight computes the event's influence at read time. Stored weights
// stay at their initial value so replaying the log is reproducible.
func (b *Booster) decayedWeight(ev *core.InteractionEvent, now time.Time) float64 {
	ageDays := now.Sub(ev.Timestamp).Hours() / hoursPerDay
	if ageDays < 0 {
		ageDays = 0
	}
	return float64(ev.Weight) * math.Exp(-b.lambda*ageDays)
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched dimensions or zero vectors yield zero.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
