// Package pipeline orchestrates one end-to-end index run: select files,
// build or refresh the index, derive the dependency graph and staleness
// records, render the report, and write all artifacts to the output
// directory.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/saddle-tools/indexgen/internal/config"
	"github.com/saddle-tools/indexgen/internal/discover"
	"github.com/saddle-tools/indexgen/internal/embed"
	"github.com/saddle-tools/indexgen/internal/graph"
	"github.com/saddle-tools/indexgen/internal/index"
	"github.com/saddle-tools/indexgen/internal/lang"
	"github.com/saddle-tools/indexgen/internal/report"
	"github.com/saddle-tools/indexgen/internal/stale"
)

// Artifact file names written under the output directory.
const (
	GraphFileName  = "dependency-graph.json"
	StaleFileName  = "stale-files.json"
	ReportFileName = "CODEBASE.md"
)

// Result summarizes one completed run.
type Result struct {
	Mode       string // "full" or "incremental"
	OutputDir  string
	Stats      index.Statistics
	StaleFiles int
	Chunks     int
}

// Pipeline holds the wiring for index runs over one repository root.
type Pipeline struct {
	cfg      config.Config
	registry *lang.Registry
	root     string
	output   string
}

// New builds a pipeline over root. Artifacts are written to outputDir,
// which defaults to the root itself when empty.
func New(cfg config.Config, root, outputDir string) (*Pipeline, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	if outputDir == "" {
		outputDir = absRoot
	}
	return &Pipeline{
		cfg:      cfg,
		registry: lang.NewRegistry(),
		root:     absRoot,
		output:   outputDir,
	}, nil
}

// Run executes one index pass. When full is false a prior index under the
// output directory is refreshed with git-changed files; a missing or
// malformed prior index falls back to a full rebuild.
func (p *Pipeline) Run(full bool) (*Result, error) {
	start := time.Now()
	slog.Info("pipeline.start", "root", p.root, "full", full)

	selector := discover.NewSelector(p.registry, p.cfg.ExcludePatterns, p.cfg.IgnoreFile)
	builder := index.NewBuilder(p.registry, selector, p.root)

	mode := "full"
	var idx index.CodebaseIndex
	if full {
		idx = builder.BuildFull()
		index.Prune(idx, p.root)
	} else {
		prior, err := index.Load(p.output)
		if err != nil {
			slog.Warn("pipeline.prior_unreadable", "error", err)
			prior = nil
		}
		if prior == nil {
			idx = builder.BuildFull()
			index.Prune(idx, p.root)
		} else {
			mode = "incremental"
			idx = builder.BuildIncremental(prior)
		}
	}

	depGraph := graph.Build(idx)
	scorer := stale.ForName(p.cfg.StaleScorer, p.cfg.StaleThresholdDays)
	staleFiles := scorer.Score(idx, depGraph, time.Now())
	markdown := report.Render(idx, staleFiles, time.Now(), p.cfg.ReportMaxLines)

	if err := p.writeArtifacts(idx, depGraph, staleFiles, markdown); err != nil {
		return nil, err
	}

	chunks := 0
	embedPipeline := embed.NewPipeline(p.cfg.Embeddings)
	if embedPipeline.Available() {
		n, err := embedPipeline.IndexCodebase(idx, p.root)
		if err != nil {
			slog.Warn("pipeline.embed_failed", "error", err)
		}
		chunks = n
	}

	result := &Result{
		Mode:       mode,
		OutputDir:  p.output,
		Stats:      idx.Stats(),
		StaleFiles: len(staleFiles),
		Chunks:     chunks,
	}
	slog.Info("pipeline.done",
		"mode", mode,
		"files", result.Stats.TotalFiles,
		"functions", result.Stats.TotalFunctions,
		"stale", result.StaleFiles,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return result, nil
}

// Search runs a semantic query against the vector store built by a prior
// Run. The result is empty when embeddings are unavailable.
func (p *Pipeline) Search(query string, n int) ([]embed.QueryResult, error) {
	return embed.NewPipeline(p.cfg.Embeddings).Query(p.root, query, n)
}

func (p *Pipeline) writeArtifacts(idx index.CodebaseIndex, depGraph graph.Graph, staleFiles map[string]*stale.Record, markdown string) error {
	if err := os.MkdirAll(p.output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := index.Save(p.output, idx); err != nil {
		return err
	}
	if err := index.WriteJSON(filepath.Join(p.output, GraphFileName), depGraph); err != nil {
		return err
	}
	if err := index.WriteJSON(filepath.Join(p.output, StaleFileName), staleFiles); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(p.output, ReportFileName), []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
