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


package scholarrank

import (
	"log/slog"

	"github.com/vidyasetu/scholarrank/ai"
	"github.com/vidyasetu/scholarrank/ai/openai"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/eligibility"
	"github.com/vidyasetu/scholarrank/ingestion"
	"github.com/vidyasetu/scholarrank/memory"
	"github.com/vidyasetu/scholarrank/search"
	"github.com/vidyasetu/scholarrank/storage"
	"github.com/vidyasetu/scholarrank/storage/badger"
)

// Database wires the storage backend, AI provider and pipeline components
// into one handle. Construct it once at process start and pass it by
// reference; there is no ambient global state.
type Database struct {
	backend         *badger.Backend
	catalogRepo     storage.CatalogRepository
	interactionRepo storage.InteractionRepository
	provider        ai.Provider
	engine          *eligibility.Engine
	logger          *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
}

// WithAIConfig overrides the AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects a pre-built AI provider (tests use the mock).
func WithProvider(provider ai.Provider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// NewDatabase opens the storage backend at filePath and wires the
// repositories and provider.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	catalogRepo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	interactionRepo, err := badger.NewInteractionRepository(backend)
	if err != nil {
		catalogRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			interactionRepo.Close()
			catalogRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:         backend,
		catalogRepo:     catalogRepo,
		interactionRepo: interactionRepo,
		provider:        provider,
		engine:          eligibility.NewEngine(),
		logger:          slog.Default(),
	}, nil
}

// Close releases the provider, repositories and backend.
func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.interactionRepo.Close(); err != nil {
		db.logger.Error("error closing interaction repository", "err", err)
		return err
	}
	if err := db.catalogRepo.Close(); err != nil {
		db.logger.Error("error closing catalog repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) CatalogRepository() storage.CatalogRepository {
	return db.catalogRepo
}

func (db *Database) InteractionRepository() storage.InteractionRepository {
	return db.interactionRepo
}

// NewSearcher builds a fully wired search pipeline: lexical and vector
// retrieval, memory personalization and the eligibility override. Caller
// options are applied after the standard wiring and may override it.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	booster, err := memory.NewBooster(db.interactionRepo)
	if err != nil {
		return nil, err
	}

	wired := []search.Option{
		search.WithPersonalizer(booster),
		search.WithEligibility(db.engine),
	}
	wired = append(wired, opts...)

	return search.NewSearcher(db.catalogRepo, db.provider, wired...)
}

// NewRecorder builds the fire-and-forget interaction recorder.
func (db *Database) NewRecorder(opts ...memory.RecorderOption) (*memory.Recorder, error) {
	return memory.NewRecorder(db.interactionRepo, db.catalogRepo, db.provider, opts...)
}

// NewIngestionPipeline builds the catalog write path.
func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.catalogRepo, db.provider, opts...)
}

// CheckEligibility runs the same deterministic engine used inline during
// search, exposed standalone for detail views.
func (db *Database) CheckEligibility(profile *core.ApplicantProfile, entry *core.CatalogEntry) *core.EligibilityVerdict {
	return db.engine.Evaluate(profile, entry)
}
