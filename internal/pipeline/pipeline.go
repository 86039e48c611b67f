// Package pipeline orchestrates one full analysis: derive variants, run
// namespace checks concurrently, classify findings and build the opinion.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/namelens/namelens/internal/cache"
	"github.com/namelens/namelens/internal/classify"
	"github.com/namelens/namelens/internal/corpus"
	"github.com/namelens/namelens/internal/llm"
	"github.com/namelens/namelens/internal/model"
	"github.com/namelens/namelens/internal/registry"
	"github.com/namelens/namelens/internal/score"
	"github.com/namelens/namelens/internal/similarity"
	"github.com/namelens/namelens/internal/util"
	"github.com/namelens/namelens/internal/variant"
	"github.com/namelens/namelens/internal/worker"
)

// probeNamespaces are the direct-lookup registries cheap enough to also
// query for fuzzy-variant probes.
var probeNamespaces = map[string]bool{
	model.NamespaceNPM:    true,
	model.NamespacePyPI:   true,
	model.NamespaceCrates: true,
}

// Pipeline wires the full analysis chain for one configuration
type Pipeline struct {
	checkers []registry.Checker
	web      *registry.WebChecker
	corpus   *corpus.Corpus
	provider llm.Provider
	renderer *Renderer
	config   *model.Config
}

// NewPipeline assembles a pipeline from configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".namelens", "cache")
			}
		}
		if dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.TTL, dir, cfg.Cache.TTL)
		}
	}

	limiter := worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst)
	client := registry.NewClient(cfg.HTTP, store, cfg.Cache.TTL, limiter)
	robots := util.NewRobotsChecker(util.NormalizeUserAgent(cfg.HTTP.UserAgent), cfg.HTTP.Timeout)

	var knownMarks *corpus.Corpus
	if cfg.Registry.CorpusPath != "" {
		c, err := corpus.Load(cfg.Registry.CorpusPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: corpus not loaded: %v\n", err)
		} else {
			knownMarks = c
		}
	}

	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(cfg.LLM)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM provider not initialized: %v\n", err)
		} else {
			provider = p
		}
	}

	return &Pipeline{
		checkers: registry.Build(client, cfg.Registry),
		web:      registry.NewWebChecker(client, robots),
		corpus:   knownMarks,
		provider: provider,
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}
}

// checkJob runs one checker against one query
type checkJob struct {
	checker registry.Checker
	query   model.CheckQuery
}

// checkResult carries the normalized checks out of the pool
type checkResult struct {
	checks []model.NamespaceCheck
}

func (r *checkResult) GetError() error { return nil }

func (j *checkJob) Execute(ctx context.Context) worker.Result {
	return &checkResult{checks: j.checker.Check(ctx, j.query)}
}

// AnalyzeName runs the complete analysis for one candidate
func (p *Pipeline) AnalyzeName(ctx context.Context, name string) (*model.Report, error) {
	if name == "" {
		return nil, fmt.Errorf("empty candidate name")
	}

	// 1. Derive variants; the canonical form is what registries are asked for
	variants := variant.BuildVariantSet(name)

	// 2. Fan namespace checks out over the pool
	pool := worker.NewPool(p.config.Concurrency.CheckWorkers)
	pool.Start()

	canonicalQuery := model.CheckQuery{CandidateMark: name, Value: variants.Canonical}
	for _, checker := range p.checkers {
		pool.Submit(&checkJob{checker: checker, query: canonicalQuery})
	}
	if p.web != nil {
		pool.Submit(&checkJob{checker: p.web, query: canonicalQuery})
	}

	// Fuzzy-variant probes against the cheap direct-lookup registries
	probes := variant.SelectTopN(
		variant.FuzzyVariants(variants.Canonical, variant.DefaultMaxVariants),
		p.config.Registry.VariantProbes)
	for _, checker := range p.checkers {
		if !probeNamespaces[checker.Namespace()] {
			continue
		}
		for _, probe := range probes {
			pool.Submit(&checkJob{checker: checker, query: model.CheckQuery{
				CandidateMark: name,
				Value:         probe,
				IsVariant:     true,
			}})
		}
	}

	var checks []model.NamespaceCheck
	for _, result := range pool.Wait() {
		checks = append(checks, result.(*checkResult).checks...)
	}

	// 3. Offline corpus screening adds indicative hits for famous marks
	if p.corpus != nil {
		checks = append(checks, p.corpus.Checks(variants.Canonical, similarity.DefaultThreshold)...)
	}

	// Pool completion order is nondeterministic; the report contract is not
	sortChecks(checks)

	// 4. Classify and score
	gaps := classify.CoverageGaps(name, checks)
	findings := classify.Classify(checks, []model.VariantSet{variants}, gaps)

	opinion := score.BuildOpinion(checks, findings, []model.VariantSet{variants}, score.Options{
		Tolerance:      p.config.Risk.Tolerance,
		IntakeChannels: p.config.Risk.IntakeChannels,
		ReservationURL: p.config.Risk.ReservationURL,
	})

	report := &model.Report{
		CandidateMark: name,
		CheckedAt:     time.Now().UTC(),
		Variants:      variants,
		Checks:        checks,
		Findings:      findings,
		Opinion:       opinion,
	}

	// 5. Optional commentary, generated after the opinion is final
	if p.provider != nil {
		report.LLM = llm.GenerateNote(ctx, p.provider, *report, p.config.LLM.MaxTokens)
	}

	return report, nil
}

// sortChecks orders checks by namespace, then queried value, with direct
// lookups before variant probes.
func sortChecks(checks []model.NamespaceCheck) {
	sort.SliceStable(checks, func(i, j int) bool {
		a, b := checks[i], checks[j]
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		if a.Query.IsVariant != b.Query.IsVariant {
			return !a.Query.IsVariant
		}
		return a.Query.Value < b.Query.Value
	})
}

// RenderReport writes the requested outputs and prints the stdout summary
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(os.Stdout, report)
	return nil
}
