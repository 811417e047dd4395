// Package pipeline orchestrates a full analysis run: ingest, mention
// analysis, keyword extraction, manufacturer lookup, optional narrative,
// and rendering.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skintel-labs/skintel/internal/analyze"
	"github.com/skintel-labs/skintel/internal/cache"
	"github.com/skintel-labs/skintel/internal/export"
	"github.com/skintel-labs/skintel/internal/ingest"
	"github.com/skintel-labs/skintel/internal/llm"
	"github.com/skintel-labs/skintel/internal/model"
	"github.com/skintel-labs/skintel/internal/sentiment"
	"github.com/skintel-labs/skintel/internal/trace"
)

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	registry   *ingest.Registry
	analyzer   *analyze.MentionAnalyzer
	extractor  *analyze.KeywordExtractor
	tracer     *trace.Tracer
	renderer   *export.Renderer
	summarizer *llm.Summarizer // Optional narrative generator (nil if disabled)
	store      cache.Cache     // Nil when caching is disabled
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".skintel", "cache")
			}
		}
		if dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		} else {
			// No resolvable home directory; keep the in-process layer only
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	taxonomy := cfg.Analysis.Taxonomy
	if len(taxonomy) == 0 {
		taxonomy = model.DefaultClaimTaxonomy()
	}

	stopWords := model.DefaultStopWords()
	for _, w := range cfg.Analysis.ExtraStopWords {
		stopWords[strings.ToLower(w)] = true
	}

	topKeywords := cfg.Analysis.TopKeywords
	if topKeywords <= 0 {
		topKeywords = 5
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		registry:   ingest.NewRegistry(),
		analyzer:   analyze.NewMentionAnalyzer(sentiment.NewScorer(), taxonomy),
		extractor:  analyze.NewKeywordExtractor(stopWords, topKeywords),
		tracer:     trace.NewTracer(cfg.Trace, cfg.HTTP, store),
		renderer:   export.NewRenderer(nil),
		summarizer: summarizer,
		store:      store,
		config:     cfg,
	}
}

// sanitizeProducts trims product names and drops blank entries, which would
// otherwise compile to match-everything patterns
func sanitizeProducts(products []string) []string {
	cleaned := make([]string, 0, len(products))
	for _, product := range products {
		product = strings.TrimSpace(product)
		if product == "" {
			continue
		}
		cleaned = append(cleaned, product)
	}
	return cleaned
}

// analysisInput is the canonical cache key material for a run. Any change
// to the comments, vocabulary, or platform label invalidates the entry.
type analysisInput struct {
	Comments []string              `json:"comments"`
	Products []string              `json:"products"`
	Platform string                `json:"platform"`
	Taxonomy []model.ClaimCategory `json:"taxonomy"`
}

// Analyze runs the full analysis over the given comments and produces a
// report. The narrative, when enabled, is generated fresh on every call;
// only the deterministic tables are memoized.
func (p *Pipeline) Analyze(ctx context.Context, comments []string) (*model.Report, error) {
	if len(comments) == 0 {
		return nil, fmt.Errorf("no comments to analyze")
	}

	configured := p.config.Analysis.Products
	products := sanitizeProducts(configured)
	if len(configured) == 0 {
		products = model.DefaultProducts()
	} else if len(products) == 0 {
		// Configured list held only blank names
		return nil, fmt.Errorf("no products to search for")
	}

	report, err := p.analyzeTables(ctx, comments, products)
	if err != nil {
		return nil, err
	}

	if p.summarizer != nil && p.summarizer.IsEnabled() {
		report.LLM = p.summarizer.GenerateNarrative(ctx, *report)
	}

	return report, nil
}

// analyzeTables computes the deterministic part of the report, using the
// cache when an identical run was seen before.
func (p *Pipeline) analyzeTables(ctx context.Context, comments []string, products []string) (*model.Report, error) {
	platform := p.config.Analysis.Platform

	var key string
	if p.store != nil {
		input, err := json.Marshal(analysisInput{
			Comments: comments,
			Products: products,
			Platform: platform,
			Taxonomy: p.config.Analysis.Taxonomy,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal analysis input: %w", err)
		}
		key = cache.Key("analysis", input)

		if data, found := p.store.Get(key); found {
			var cached model.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	mentions := p.analyzer.Analyze(comments, products, platform)
	summary := analyze.Summarize(mentions)
	keywords := p.extractor.Extract(comments)

	report := &model.Report{
		ID:           uuid.NewString(),
		Platform:     platform,
		GeneratedAt:  time.Now().UTC(),
		CommentCount: len(comments),
		ProductCount: len(products),
		MentionCount: len(mentions),
		Summary:      summary,
		Keywords:     keywords,
	}

	if p.config.Trace.Enabled && !report.Empty() {
		top := report.TopProducts(p.config.Trace.TopProducts)
		report.Manufacturers = p.tracer.TraceAll(ctx, top)
	}

	if p.store != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := p.store.Set(key, data, p.config.Cache.DiskTTL); err != nil && p.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Warning: failed to store analysis in cache: %v\n", err)
			}
		}
	}

	return report, nil
}

// AnalyzeFile reads comments from an input reference and analyzes them.
// The reference may be a file path, a feed URL, or "-" for stdin.
func (p *Pipeline) AnalyzeFile(ctx context.Context, ref string) (*model.Report, error) {
	source := p.registry.Find(ref)

	comments, err := source.Read(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("read comments (%s): %w", source.Name(), err)
	}

	return p.Analyze(ctx, comments)
}

// OutputPaths lists the file outputs for a run. Empty fields are skipped.
type OutputPaths struct {
	JSON     string
	Markdown string
	XLSX     string
	DOCX     string
	PDF      string
}

// RenderReport renders the report to the specified outputs and prints the
// console summary
func (p *Pipeline) RenderReport(report *model.Report, paths OutputPaths, verbose bool) error {
	type output struct {
		path   string
		label  string
		render func(model.Report, string) error
	}

	outputs := []output{
		{paths.JSON, "JSON", p.renderer.RenderJSON},
		{paths.Markdown, "Markdown", p.renderer.RenderMarkdown},
		{paths.XLSX, "Excel", p.renderer.RenderXLSX},
		{paths.DOCX, "Word", p.renderer.RenderDOCX},
		{paths.PDF, "PDF", p.renderer.RenderPDF},
	}

	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		if err := o.render(*report, o.path); err != nil {
			return fmt.Errorf("render %s: %w", o.label, err)
		}
		if verbose {
			fmt.Printf("✓ Wrote %s: %s\n", o.label, o.path)
		}
	}

	p.renderer.RenderSummary(*report)

	return nil
}
