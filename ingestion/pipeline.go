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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/vidyasetu/scholarrank/ai"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/safety"
	"github.com/vidyasetu/scholarrank/storage"
)

// embedTimeout bounds the async embedding pass for one ingested batch.
const embedTimeout = 2 * time.Minute

// Pipeline ingests catalog entries and backfills their embeddings.
//
// Entries are stored synchronously so they are immediately searchable by the
// lexical path; embeddings are generated on a worker pool and written back
// with an update, so the write path never blocks request-time readers.
type Pipeline struct {
	catalog  storage.CatalogRepository
	embedder ai.Embedder
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new catalog ingestion pipeline.
func NewPipeline(
	catalog storage.CatalogRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
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

	p := &Pipeline{
		catalog:  catalog,
		embedder: provider.Embedder(),
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Ingest stores the entries and schedules their embeddings asynchronously.
// Entries arriving without a trust score get one computed from their
// provider metadata. Embedding errors are logged but do not fail ingestion;
// affected entries simply stay lexical-only until re-embedded.
func (p *Pipeline) Ingest(ctx context.Context, entries ...*core.CatalogEntry) ([]*core.CatalogEntry, error) {
	for _, entry := range entries {
		if entry.TrustScore == 0 {
			entry.TrustScore = safety.TrustScore(entry)
		}
	}

	added, err := p.catalog.AddEntries(ctx, entries...)
	if err != nil {
		return nil, err
	}
	if len(added) == 0 {
		return added, nil
	}

	ids := make([]string, len(added))
	for i, entry := range added {
		ids[i] = entry.ID
	}

	// Submit for async embedding
	if err := p.pool.Submit(func() {
		if err := p.embedEntries(ids...); err != nil {
			p.logger.Error("error embedding catalog entries", "err", err)
		}
	}); err != nil {
		p.logger.Error("error submitting entries for embedding", "err", err)
	}

	return added, nil
}

// EmbedMissing re-embeds every catalog entry that has no vector yet.
// Runs synchronously; used by the CLI and the re-embedding maintenance path.
func (p *Pipeline) EmbedMissing(ctx context.Context) (int, error) {
	entries, err := p.catalog.AllEntries(ctx)
	if err != nil {
		return 0, err
	}

	var ids []string
	for _, entry := range entries {
		if len(entry.Vector) == 0 {
			ids = append(ids, entry.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := p.embedEntries(ids...); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// embedEntries generates and stores embeddings for the identified entries.
func (p *Pipeline) embedEntries(ids ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), embedTimeout)
	defer cancel()

	entries, err := p.catalog.GetEntries(ctx, ids...)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.SearchText()
	}

	p.logger.Debug("generating embeddings for catalog entries", "entries", len(texts))
	embeddings, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(embeddings) != len(entries) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(entries), len(embeddings))
	}

	for i := range embeddings {
		entries[i].Vector = embeddings[i]
	}

	_, err = p.catalog.UpdateEntries(ctx, entries...)
	return err
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
