package llm

import (
	"context"
	"fmt"

	"github.com/skintel-labs/skintel/internal/model"
)

// Summarizer coordinates narrative generation for a finished report.
// A nil or unconfigured provider disables it without error: the tables
// stand on their own and the narrative is strictly optional.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. When no provider
// is configured the summarizer is returned disabled rather than failing.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// NewSummarizerWithProvider wires an explicit provider, mainly for tests.
func NewSummarizerWithProvider(provider Provider, config Config) *Summarizer {
	return &Summarizer{
		provider: provider,
		config:   config,
	}
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// ProviderName returns the active provider name, or "" when disabled
func (s *Summarizer) ProviderName() string {
	if !s.IsEnabled() {
		return ""
	}
	return s.provider.Name()
}

// GenerateNarrative produces the optional narrative section for a report.
// Provider problems degrade to warnings on the narrative rather than
// failing the run; the report tables are already complete by the time
// this is called.
func (s *Summarizer) GenerateNarrative(ctx context.Context, report model.Report) *model.LLMNarrative {
	if !s.IsEnabled() {
		return nil
	}

	narrative := &model.LLMNarrative{
		Enabled:  true,
		Provider: s.provider.Name(),
	}

	if !s.provider.IsAvailable(ctx) {
		narrative.Warnings = append(narrative.Warnings,
			fmt.Sprintf("LLM provider %q is not available; narrative skipped", s.provider.Name()))
		return narrative
	}

	allowed := make([]string, 0, len(report.Manufacturers))
	for _, info := range report.Manufacturers {
		if info.Found() {
			allowed = append(allowed, info.Link)
		}
	}

	resp, err := s.provider.Narrate(ctx, NarrateRequest{
		Report:      report,
		AllowedURLs: allowed,
		Model:       s.config.Model,
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		narrative.Warnings = append(narrative.Warnings,
			fmt.Sprintf("narrative generation failed: %v", err))
		return narrative
	}

	narrative.Model = resp.Model
	narrative.Text = resp.Text
	return narrative
}
