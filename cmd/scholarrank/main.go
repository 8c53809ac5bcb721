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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	scholarrank "github.com/vidyasetu/scholarrank"
	"github.com/vidyasetu/scholarrank/ai"
	"github.com/vidyasetu/scholarrank/ai/openai"
	"github.com/vidyasetu/scholarrank/core"
	"github.com/vidyasetu/scholarrank/reembed"
	"github.com/vidyasetu/scholarrank/safety"
	"github.com/vidyasetu/scholarrank/search"
	"github.com/vidyasetu/scholarrank/storage"
	"github.com/vidyasetu/scholarrank/storage/badger"
)

var dbFlag = &cli.StringFlag{
	Name:     "db",
	Aliases:  []string{"d"},
	Usage:    "Path to BadgerDB database directory",
	Required: true,
}

var profileFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "category",
		Usage: "Applicant category (General, SC, ST, OBC, Minority, EWS, PWD)",
	},
	&cli.Int64Flag{
		Name:  "income",
		Usage: "Annual family income",
	},
	&cli.StringFlag{
		Name:  "region",
		Usage: "Applicant state or region",
	},
	&cli.StringFlag{
		Name:  "education",
		Usage: "Education level (class_9_10, class_11_12, undergraduate, postgraduate, phd, other)",
	},
	&cli.StringFlag{
		Name:  "gender",
		Usage: "Applicant gender (Any, Male, Female, Other)",
	},
}

func main() {
	app := &cli.App{
		Name:  "scholarrank",
		Usage: "Scholarship retrieval and eligibility ranking",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Ingest catalog entries from a JSON file",
				Action: seedCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON array of catalog entries",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank catalog entries against a query and profile",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append([]cli.Flag{
					dbFlag,
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"k"},
						Usage:   "Number of results to return",
						Value:   10,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.BoolFlag{
						Name:  "trace",
						Usage: "Print pipeline stage events",
					},
				}, profileFlags...),
			},
			{
				Name:      "check",
				Usage:     "Check eligibility for a single scholarship",
				ArgsUsage: "<scholarship-id>",
				Action:    checkCommand,
				Flags:     append([]cli.Flag{dbFlag}, profileFlags...),
			},
			{
				Name:      "log",
				Usage:     "Log a user interaction with a scholarship",
				ArgsUsage: "<scholarship-id>",
				Action:    logCommand,
				Flags: append([]cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Interaction kind (view, click, save, apply)",
						Value: "view",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
				}, profileFlags...),
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all catalog entries with new embeddings",
				Action: reembedCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of entries to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N entries",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(c *cli.Context) (*scholarrank.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	return scholarrank.NewDatabase(c.String("db"), scholarrank.WithAIConfig(aiConfig))
}

func profileFromFlags(c *cli.Context) *core.ApplicantProfile {
	if c.String("category") == "" {
		return nil
	}
	return &core.ApplicantProfile{
		Category:  core.Category(c.String("category")),
		Income:    c.Int64("income"),
		Region:    c.String("region"),
		Education: core.EducationLevel(c.String("education")),
		Gender:    core.Gender(c.String("gender")),
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []*core.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	added, err := pipeline.Ingest(ctx, entries...)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	// Give the async embedding pass a chance to finish before releasing.
	if _, err := pipeline.EmbedMissing(ctx); err != nil {
		slog.Warn("embedding backfill incomplete, entries stay lexical-only", "err", err)
	}

	fmt.Printf("Ingested %d entries\n", len(added))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	profile := profileFromFlags(c)
	req := search.Request{
		Query:   query,
		Profile: profile,
		TopK:    c.Int("top"),
	}
	if profile != nil {
		req.Filter = storage.CatalogFilter{
			Category: string(profile.Category),
			Region:   profile.Region,
			Income:   profile.Income,
		}
	}

	var response *search.Response
	if c.Bool("trace") {
		monitor := search.NewChannelMonitor(64)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for event := range monitor.Events() {
				fmt.Fprintf(os.Stderr, "[%3d%%] %-20s %s (%dms)\n",
					event.Progress, event.Stage, event.Message, event.TimingMS)
			}
		}()
		response, err = searcher.SearchWithMonitor(ctx, req, monitor)
		monitor.Close()
		<-done
	} else {
		response, err = searcher.Search(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printResponse(response)
	return nil
}

func printResponse(response *search.Response) {
	if len(response.Results) == 0 {
		fmt.Println("No results.")
	}
	for i, r := range response.Results {
		eligible := "eligible"
		if !r.EligibilityStatus {
			eligible = "NOT eligible"
		}
		fmt.Printf("%2d. %s (%s)\n", i+1, r.Name, r.ID)
		fmt.Printf("    score %d/100, %s, trust %.2f, amount %d\n",
			r.MatchScore, eligible, r.TrustScore, r.Amount)
		for _, rule := range r.Reasoning.MatchedRules {
			fmt.Printf("    - %s\n", rule)
		}
	}

	fmt.Printf("\n%d results in %dms", len(response.Results), response.LatencyMS)
	if response.MemoryInfluenced {
		fmt.Print(", personalized")
	}
	if response.Degraded {
		fmt.Print(", lexical-only (vector search unavailable)")
	}
	fmt.Println()

	if len(response.FallbackReasons) > 0 {
		fmt.Printf("Low confidence: %s\n", strings.Join(response.FallbackReasons, "; "))
		for _, fb := range response.FallbackResults {
			fmt.Printf("  external: %s (%s)\n", fb.Title, fb.Link)
		}
	}
}

func checkCommand(c *cli.Context) error {
	ctx := context.Background()

	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("scholarship id is required")
	}
	profile := profileFromFlags(c)
	if profile == nil {
		return fmt.Errorf("profile flags are required, at least --category")
	}
	if err := core.ValidateProfile(profile); err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	entry, err := db.CatalogRepository().GetEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load scholarship %s: %w", id, err)
	}

	verdict := db.CheckEligibility(profile, entry)

	fmt.Printf("%s (%s)\n", entry.Name, entry.ID)
	if verdict.Eligible {
		fmt.Printf("ELIGIBLE, score %d/100\n", verdict.Score)
	} else {
		fmt.Printf("NOT ELIGIBLE, score %d/100\n", verdict.Score)
	}
	for _, cr := range verdict.Breakdown {
		mark := "fail"
		if cr.Passed {
			mark = "pass"
		}
		fmt.Printf("  [%s] %-15s %2d/%2d  %s\n", mark, cr.Criterion, cr.Points, cr.MaxPoints, cr.Explanation)
	}
	if len(verdict.MissingDocs) > 0 {
		fmt.Println("Documents needed:")
		for _, doc := range verdict.MissingDocs {
			fmt.Printf("  - %s\n", doc)
		}
	}

	assessment := safety.Assess(entry, time.Now())
	fmt.Printf("Deadline: %s\n", assessment.DeadlineInfo.DisplayText)
	for _, warning := range assessment.Warnings {
		fmt.Printf("  ! %s\n", warning)
	}

	return nil
}

func logCommand(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("scholarship id is required")
	}
	profile := profileFromFlags(c)
	if profile == nil {
		return fmt.Errorf("profile flags are required, at least --category")
	}

	var kind core.InteractionKind
	switch strings.ToLower(c.String("kind")) {
	case "view":
		kind = core.InteractionView
	case "click":
		kind = core.InteractionClick
	case "save":
		kind = core.InteractionSave
	case "apply":
		kind = core.InteractionApply
	default:
		return fmt.Errorf("invalid interaction kind %q: must be one of view, click, save, apply", c.String("kind"))
	}

	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	recorder, err := db.NewRecorder()
	if err != nil {
		return fmt.Errorf("failed to create recorder: %w", err)
	}

	recorder.Record(profile.UserID(), id, kind)

	// Record is fire-and-forget; Release waits for the event to land before
	// the process exits.
	recorder.Release()
	fmt.Printf("Logged %s interaction for %s\n", c.String("kind"), id)
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
