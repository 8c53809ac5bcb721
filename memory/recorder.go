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
	"runtime"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/vidyasetu/scholarrank/ai"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/storage"
)

// recordTimeout bounds the async work behind a single logged interaction.
const recordTimeout = 10 * time.Second

// Recorder appends interaction events to the log asynchronously.
//
// Recording is fire-and-forget from the caller's perspective: embedding and
// storage happen on a worker pool, and a failure is logged, never returned.
// A lost event costs a little personalization signal, not a search response.
type Recorder struct {
	interactions storage.InteractionRepository
	catalog      storage.CatalogRepository
	embedder     ai.Embedder
	pool         *ants.Pool
	logger       *slog.Logger
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder) error

// WithPoolSize sets the worker pool size for async event processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) RecorderOption {
	return func(r *Recorder) error {
		if size < 1 {
			size = 1
		}

		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithRecorderLogger sets a custom logger.
// Default is slog.Default().
func WithRecorderLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRecorder creates a recorder writing to the interaction log.
func NewRecorder(
	interactions storage.InteractionRepository,
	catalog storage.CatalogRepository,
	provider ai.Provider,
	opts ...RecorderOption,
) (*Recorder, error) {
	if interactions == nil {
		return nil, ErrInteractionRepositoryRequired
	}
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Recorder{
		interactions: interactions,
		catalog:      catalog,
		embedder:     provider.Embedder(),
		pool:         pool,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.Release()
			return nil, err
		}
	}

	return r, nil
}

// Record logs one user interaction. It returns immediately; the event is
// embedded and appended on the worker pool. Errors are logged, never surfaced.
func (r *Recorder) Record(userID, entryID string, kind core.InteractionKind) {
	if err := core.ValidateInteractionKind(kind); err != nil {
		r.logger.Warn("dropping interaction with invalid kind", "kind", int(kind), "err", err)
		return
	}
	if userID == "" || entryID == "" {
		r.logger.Warn("dropping interaction with missing identifiers", "userID", userID, "entryID", entryID)
		return
	}

	timestamp := time.Now().UTC()
	if err := r.pool.Submit(func() {
		r.process(userID, entryID, kind, timestamp)
	}); err != nil {
		r.logger.Error("error submitting interaction for processing", "err", err)
	}
}

// process embeds the target's metadata and appends the event.
func (r *Recorder) process(userID, entryID string, kind core.InteractionKind, timestamp time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	entry, err := r.catalog.GetEntry(ctx, entryID)
	if err != nil {
		r.logger.Error("error loading entry for interaction", "entryID", entryID, "err", err)
		return
	}

	// The event embedding comes from the entry's structured metadata, not its
	// raw text, so similar schemes cluster by kind rather than by phrasing.
	vector, err := r.embedder.EmbedText(ctx, metadataText(entry))
	if err != nil {
		// Store the event without a vector; the booster skips it.
		r.logger.Warn("error embedding interaction metadata, storing without vector", "entryID", entryID, "err", err)
		vector = nil
	}

	event := &core.InteractionEvent{
		UserID:    userID,
		EntryID:   entryID,
		Kind:      kind,
		Vector:    vector,
		Weight:    1.0,
		Timestamp: timestamp,
	}

	if _, err := r.interactions.AppendEvents(ctx, event); err != nil {
		r.logger.Error("error appending interaction event", "userID", userID, "entryID", entryID, "err", err)
	}
}

// metadataText builds the embedding text from an entry's category, education
// and keyword metadata.
func metadataText(entry *core.CatalogEntry) string {
	parts := make([]string, 0, len(entry.Categories)+len(entry.EducationLevels)+len(entry.Keywords))
	parts = append(parts, entry.Categories...)
	parts = append(parts, entry.EducationLevels...)
	parts = append(parts, entry.Keywords...)
	return strings.Join(parts, " ")
}

// Release waits briefly for in-flight events to land, then releases the
// worker pool. The recorder should not be used after calling Release.
func (r *Recorder) Release() {
	if r.pool != nil {
		if err := r.pool.ReleaseTimeout(recordTimeout); err != nil {
			r.logger.Warn("recorder pool released with tasks still pending", "err", err)
		}
	}
}
