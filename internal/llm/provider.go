package llm

import (
	"context"
	"fmt"

	"github.com/skintel-labs/skintel/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Narrate generates a short narrative for an analysis report
	Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// NarrateRequest contains the input for narrative generation
type NarrateRequest struct {
	// Report is the analysis report to narrate
	Report model.Report

	// AllowedURLs is the strict allowlist of URLs the model may repeat:
	// only links the manufacturer lookup actually discovered. Anything
	// else in the output is treated as fabricated.
	AllowedURLs []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// NarrateResponse contains the generated narrative
type NarrateResponse struct {
	// Text is the narrative text
	Text string

	// CitedURLs are URLs present in the narrative (for verification)
	CitedURLs []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults (provider disabled)
func DefaultConfig() Config {
	return Config{
		Timeout:   30,
		MaxTokens: 1000,
	}
}

const systemPrompt = "You are a helpful assistant that narrates skincare comment analysis reports without inventing data or links."

// BuildPrompt constructs the default narration prompt from the report
// tables. The narrative is presentation only; it must describe the counts,
// not embellish them.
func BuildPrompt(report model.Report, allowedURLs []string) string {
	prompt := fmt.Sprintf(`You are narrating a skincare social-listening report. The tables are already final; describe them, do not recompute or invent anything.

RULES:
1. Mention only products, claims, and sentiment counts that appear below.
2. You may repeat ONLY these URLs, if any:%s
3. If a table is empty, say so plainly.
4. Do not give medical or purchasing advice.

Report:
- Platform: %s
- Comments analyzed: %d
- Products searched: %d
- Total mentions: %d

Top mention groups:
`, joinURLs(allowedURLs), report.Platform, report.CommentCount, report.ProductCount, report.MentionCount)

	for i, row := range report.Summary {
		if i >= 5 {
			break
		}
		prompt += fmt.Sprintf("- %s on %s: %s, %s, %d mention(s)\n", row.Product, row.Platform, row.Claim, row.Sentiment, row.Count)
	}

	if len(report.Keywords) > 0 {
		prompt += "\nTrending phrases:\n"
		for _, kw := range report.Keywords {
			prompt += fmt.Sprintf("- %q (%d occurrences)\n", kw.Phrase, kw.Count)
		}
	}

	prompt += "\nWrite a 3-4 sentence narrative of what users are discussing and how they feel about the top products."

	return prompt
}

func joinURLs(urls []string) string {
	if len(urls) == 0 {
		return " (none)"
	}
	result := ""
	for _, u := range urls {
		result += fmt.Sprintf("\n- %s", u)
	}
	return result
}
