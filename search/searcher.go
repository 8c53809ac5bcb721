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
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/vidyasetu/scholarrank/ai"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/storage"
)

// defaultTopK bounds the response when the request doesn't ask for a size.
const defaultTopK = 10

// fallbackLimit is how many external results a fallback search may add.
const fallbackLimit = 5

// Personalizer computes a memory boost in [0,1] for each candidate and
// records it on the candidate. It reports whether any boost was non-zero.
type Personalizer interface {
	Boost(ctx context.Context, userID string, candidates []*core.RankedCandidate) (bool, error)
}

// EligibilityChecker produces the deterministic eligibility verdict for a
// (profile, entry) pair.
type EligibilityChecker interface {
	Evaluate(profile *core.ApplicantProfile, entry *core.CatalogEntry) *core.EligibilityVerdict
}

// Request is one search invocation.
type Request struct {
	Query   string
	Profile *core.ApplicantProfile
	Filter  storage.CatalogFilter
	TopK    int
}

// Searcher runs the retrieval-and-decision pipeline: query normalization,
// parallel lexical and vector search, rank fusion, memory boost, eligibility
// override, confidence gating and final assembly.
type Searcher struct {
	catalog      storage.CatalogRepository
	embedder     ai.Embedder
	personalizer Personalizer
	eligibility  EligibilityChecker
	fallback     FallbackSearcher
	config       Config
	logger       *slog.Logger

	// index holds the current lexical snapshot. Refresh builds a new index
	// and swaps the pointer, so concurrent readers see either the old or the
	// new snapshot, never a partial one.
	index atomic.Pointer[LexicalIndex]
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig overrides the default pipeline configuration.
func WithConfig(config Config) Option {
	return func(s *Searcher) error {
		if err := config.Validate(); err != nil {
			return err
		}
		s.config = config
		return nil
	}
}

// WithPersonalizer wires the memory boost component.
func WithPersonalizer(p Personalizer) Option {
	return func(s *Searcher) error {
		s.personalizer = p
		return nil
	}
}

// WithEligibility wires the eligibility engine.
func WithEligibility(e EligibilityChecker) Option {
	return func(s *Searcher) error {
		s.eligibility = e
		return nil
	}
}

// WithFallback wires the external fallback search collaborator invoked when
// the confidence gate trips.
func WithFallback(f FallbackSearcher) Option {
	return func(s *Searcher) error {
		s.fallback = f
		return nil
	}
}

// NewSearcher creates a new searcher over the given catalog.
func NewSearcher(
	catalog storage.CatalogRepository,
	provider ai.Provider,
	opts ...Option,
) (*Searcher, error) {
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		catalog:  catalog,
		embedder: provider.Embedder(),
		config:   DefaultConfig(),
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Refresh rebuilds the lexical index from the current catalog and atomically
// swaps it in. Call after ingestion; in-flight searches keep the old snapshot.
func (s *Searcher) Refresh(ctx context.Context) error {
	entries, err := s.catalog.AllEntries(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog for index build: %w", err)
	}
	idx := BuildLexicalIndex(entries)
	s.index.Store(idx)
	s.logger.Debug("lexical index refreshed", "entries", idx.Size())
	return nil
}

// Search runs the pipeline for one request.
func (s *Searcher) Search(ctx context.Context, req Request) (*Response, error) {
	return s.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor runs the pipeline and publishes stage events to the
// monitor. The monitor is purely observational; a nil monitor is fine.
func (s *Searcher) SearchWithMonitor(ctx context.Context, req Request, monitor Monitor) (*Response, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	start := time.Now()
	searchID := uuid.NewString()
	emit := func(stage Stage, message string, progress int, data map[string]any) {
		monitor.Publish(StageEvent{
			SearchID: searchID,
			Stage:    stage,
			Message:  message,
			Progress: progress,
			TimingMS: time.Since(start).Milliseconds(),
			Data:     data,
		})
	}

	// Input errors reject immediately, before any pipeline work.
	if req.Profile != nil {
		if err := core.ValidateProfile(req.Profile); err != nil {
			emit(StageError, "invalid profile", 0, map[string]any{"error": err.Error()})
			return nil, err
		}
	}

	nq, err := NormalizeQuery(req.Query)
	if err != nil {
		emit(StageError, "empty query", 0, nil)
		return nil, err
	}
	emit(StageQueryUnderstanding, "query normalized", 10, map[string]any{
		"tokens":       len(nq.Tokens),
		"scheme_codes": nq.SchemeCodes,
	})

	idx := s.index.Load()
	if idx == nil {
		if err := s.Refresh(ctx); err != nil {
			emit(StageError, "index build failed", 10, map[string]any{"error": err.Error()})
			return nil, err
		}
		idx = s.index.Load()
	}

	// Lexical and vector search run in parallel. The vector side is the only
	// path allowed to fail; it degrades the request to lexical-only ranking.
	var (
		wg        sync.WaitGroup
		lexHits   []LexicalHit
		vecHits   []*core.SimilarityMatch
		vectorErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		lexHits = idx.Search(nq.Tokens, s.config.LexicalLimit)
	}()
	go func() {
		defer wg.Done()
		vecHits, vectorErr = s.vectorSearch(ctx, nq.Raw, req.Filter)
	}()
	wg.Wait()

	emit(StageBM25Search, "lexical search complete", 30, map[string]any{"hits": len(lexHits)})

	vectorRan := vectorErr == nil
	if vectorErr != nil {
		s.logger.Warn("vector search degraded to lexical-only", "err", vectorErr)
		emit(StageVectorSearch, "vector search unavailable, using lexical-only ranking", 50,
			map[string]any{"error": vectorErr.Error()})
	} else {
		emit(StageVectorSearch, "vector search complete", 50, map[string]any{"hits": len(vecHits)})
	}

	candidates := fuseCandidates(lexHits, vecHits, vectorRan, nq.SchemeCodes, s.config.RRFConstant)
	emit(StageRRFFusion, "rank fusion complete", 65, map[string]any{"candidates": len(candidates)})

	memoryInfluenced := false
	if s.personalizer != nil && req.Profile != nil && len(candidates) > 0 {
		influenced, err := s.personalizer.Boost(ctx, req.Profile.UserID(), candidates)
		if err != nil {
			// Personalization failures never propagate to the caller.
			s.logger.Warn("memory boost failed, continuing without personalization", "err", err)
		} else {
			memoryInfluenced = influenced
		}
	}
	emit(StageMemoryBoost, "memory boost applied", 80, map[string]any{"influenced": memoryInfluenced})

	if s.eligibility != nil && req.Profile != nil {
		for _, c := range candidates {
			c.Eligibility = s.eligibility.Evaluate(req.Profile, c.Entry)
		}
	}
	emit(StageEligibilityCheck, "eligibility evaluated", 90, map[string]any{"candidates": len(candidates)})

	topK := req.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	assembled := assembleCandidates(candidates, s.config, topK)

	response := &Response{
		Results:          buildResults(assembled),
		MemoryInfluenced: memoryInfluenced,
		Degraded:         !vectorRan,
	}

	decision := evaluateConfidence(assembled, s.config)
	if decision.NeedsFallback {
		response.FallbackReasons = decision.Reasons
		if s.fallback != nil {
			external, err := s.fallback.Search(ctx, nq.Raw, fallbackLimit)
			if err != nil {
				// Partial results: local ranking is still returned.
				s.logger.Warn("fallback search failed, returning local results only", "err", err)
				response.FallbackReasons = append(response.FallbackReasons, "fallback search failed")
			} else {
				response.FallbackUsed = true
				response.FallbackResults = external
			}
		}
	}

	response.LatencyMS = time.Since(start).Milliseconds()
	emit(StageComplete, "search complete", 100, map[string]any{
		"results":       len(response.Results),
		"fallback_used": response.FallbackUsed,
		"degraded":      response.Degraded,
	})

	return response, nil
}

// vectorSearch embeds the query and runs the similarity scan with the
// structured filter pushed down, bounded by the configured timeout.
func (s *Searcher) vectorSearch(ctx context.Context, query string, filter storage.CatalogFilter) ([]*core.SimilarityMatch, error) {
	vecCtx, cancel := context.WithTimeout(ctx, s.config.VectorTimeout)
	defer cancel()

	embedding, err := s.embedder.EmbedText(vecCtx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding query: %v", ErrSearchUnavailable, err)
	}

	matches, err := s.catalog.FindSimilar(vecCtx, embedding, filter, s.config.VectorLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: similarity scan: %v", ErrSearchUnavailable, err)
	}
	return matches, nil
}
