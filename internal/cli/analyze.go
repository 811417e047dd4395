package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/skintel-labs/skintel/internal/model"
	"github.com/skintel-labs/skintel/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	outXLSX     string
	outDOCX     string
	outPDF      string
	products    []string
	platform    string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noTrace     bool
	noVerify    bool
	topProducts int
	traceDelay  time.Duration
	insecureTLS bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <input>",
	Short: "Analyze a comment file and generate a skincare mention report",
	Long: `Analyze reads social-media comments from a file, a feed URL, or
stdin ("-") and generates a complete report:
- Product mentions with claim category and sentiment
- Trending two-word phrases with canned explanations
- Best-guess official links for the top mentioned products

Inputs may be plain text (one comment per line), CSV with a "comment"
column, or an RSS/Atom feed URL.

Example:
  skintel analyze comments.txt
  skintel analyze comments.csv --xlsx report.xlsx --pdf report.pdf
  cat comments.txt | skintel analyze - --no-trace
  skintel analyze comments.txt --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&outXLSX, "xlsx", "", "output Excel path (optional)")
	analyzeCmd.Flags().StringVar(&outDOCX, "docx", "", "output Word path (optional)")
	analyzeCmd.Flags().StringVar(&outPDF, "pdf", "", "output PDF path (optional)")

	// Analysis flags
	analyzeCmd.Flags().StringSliceVar(&products, "products", nil, "product names to search for (default: built-in list)")
	analyzeCmd.Flags().StringVar(&platform, "platform", "TikTok / Online Forums", "platform label shown in the report")

	// Lookup / HTTP flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall run timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent for lookups (default: browser-like)")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh analysis and lookups)")
	analyzeCmd.Flags().BoolVar(&noTrace, "no-trace", false, "skip manufacturer link lookup")
	analyzeCmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip HEAD-checking discovered links")
	analyzeCmd.Flags().IntVar(&topProducts, "top-products", 2, "number of top products to look up")
	analyzeCmd.Flags().DurationVar(&traceDelay, "trace-delay", 500*time.Millisecond, "pause between search calls")
	analyzeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", input)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintf(os.Stderr, "Lookup: %v\n", !noTrace)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig(cmd.Flags())
	if err != nil {
		return err
	}

	// Lookup/HTTP flags live on this command only
	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.HTTP.Timeout = timeout
	}
	if flags.Changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if flags.Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if flags.Changed("insecure") {
		cfg.HTTP.InsecureTLS = insecureTLS
	}
	if flags.Changed("no-verify") {
		cfg.Trace.VerifyLinks = !noVerify
	}
	if flags.Changed("top-products") {
		cfg.Trace.TopProducts = topProducts
	}
	if flags.Changed("trace-delay") {
		cfg.Trace.Delay = traceDelay
	}

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Reading comments...\n")
	}

	report, err := p.AnalyzeFile(ctx, input)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Analyzed %d comments\n", report.CommentCount)
		fmt.Fprintf(os.Stderr, "✓ Found %d product mentions\n", report.MentionCount)
		fmt.Fprintf(os.Stderr, "✓ Extracted %d trending phrases\n", len(report.Keywords))
		if len(report.Manufacturers) > 0 {
			fmt.Fprintf(os.Stderr, "✓ Looked up %d manufacturer links\n", len(report.Manufacturers))
		}
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated narrative using %s/%s\n", report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	paths := pipeline.OutputPaths{
		JSON:     outJSON,
		Markdown: outMD,
		XLSX:     outXLSX,
		DOCX:     outDOCX,
		PDF:      outPDF,
	}
	if err := p.RenderReport(report, paths, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the runtime configuration: built-in defaults,
// then the config file / SKINTEL_* environment via viper, then any flag
// the user actually set.
func buildConfig(flags *pflag.FlagSet) (*model.Config, error) {
	cfg := model.DefaultConfig()

	// Config.yaml carries yaml tags, so point the decoder at those
	if err := viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if changed("no-trace") {
		cfg.Trace.Enabled = !noTrace
	}
	if changed("products") {
		cfg.Analysis.Products = products
	}
	if changed("platform") {
		cfg.Analysis.Platform = platform
	}
	cfg.Output.Verbose = verbose

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			baseURL := os.Getenv("OLLAMA_BASE_URL")
			if baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}
