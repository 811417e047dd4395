package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Trace       TraceConfig       `yaml:"trace" json:"trace"`
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// HTTPConfig configures outbound HTTP behavior
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" json:"no_proxy"`
}

// CacheConfig configures the analysis/lookup cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// TraceConfig configures the manufacturer lookup
type TraceConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled"`
	TopProducts   int           `yaml:"top_products" json:"top_products"`     // Distinct products to look up
	Delay         time.Duration `yaml:"delay" json:"delay"`                   // Mandatory pause between searches
	RespectRobots bool          `yaml:"respect_robots" json:"respect_robots"` // Check robots.txt before searching
	VerifyLinks   bool          `yaml:"verify_links" json:"verify_links"`     // HEAD-check discovered links
}

// AnalysisConfig carries the analyzer vocabulary. Empty slices fall back to
// the defaults in taxonomy.go.
type AnalysisConfig struct {
	Products       []string        `yaml:"products" json:"products"`
	Platform       string          `yaml:"platform" json:"platform"`
	Taxonomy       []ClaimCategory `yaml:"taxonomy" json:"taxonomy"`
	ExtraStopWords []string        `yaml:"extra_stop_words" json:"extra_stop_words"`
	TopKeywords    int             `yaml:"top_keywords" json:"top_keywords"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// LLMConfig configures the optional narrative generator
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // openai, anthropic, ollama, "" = disabled
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // From environment only, never persisted
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" json:"verbose"`
	Dir     string `yaml:"dir" json:"dir"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.skintel/cache at startup
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Trace: TraceConfig{
			Enabled:     true,
			TopProducts: 2,
			Delay:       500 * time.Millisecond,
			VerifyLinks: true,
		},
		Analysis: AnalysisConfig{
			Products:    DefaultProducts(),
			Platform:    "TikTok / Online Forums",
			Taxonomy:    DefaultClaimTaxonomy(),
			TopKeywords: 5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			Dir: ".",
		},
	}
}
