package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/skintel-labs/skintel/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	response  *NarrateResponse
	err       error
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

func TestNewSummarizer_DisabledProvider(t *testing.T) {
	config := Config{
		Provider: "", // Empty = disabled
	}

	summarizer, err := NewSummarizer(config)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summarizer.provider != nil {
		t.Error("Expected provider to be nil when disabled")
	}

	if summarizer.IsEnabled() {
		t.Error("Expected summarizer to be disabled")
	}

	if summarizer.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	_, err := NewSummarizer(Config{Provider: "gemini"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown LLM provider") {
		t.Errorf("Expected unknown provider error, got %v", err)
	}
}

func TestSummarizer_GenerateNarrative_Disabled(t *testing.T) {
	summarizer := &Summarizer{
		provider: nil,
		config:   Config{},
	}

	narrative := summarizer.GenerateNarrative(context.Background(), model.Report{Platform: "TikTok"})

	if narrative != nil {
		t.Error("Expected nil narrative when provider disabled")
	}
}

func TestSummarizer_GenerateNarrative_ProviderUnavailable(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: false,
	}

	summarizer := &Summarizer{
		provider: mockProvider,
		config:   Config{},
	}

	narrative := summarizer.GenerateNarrative(context.Background(), model.Report{Platform: "TikTok"})

	if narrative == nil {
		t.Fatal("Expected narrative object with warnings")
	}

	if narrative.Text != "" {
		t.Error("Expected no narrative text when provider unavailable")
	}

	if len(narrative.Warnings) == 0 {
		t.Fatal("Expected warning about provider unavailability")
	}

	found := false
	for _, warning := range narrative.Warnings {
		if strings.Contains(warning, "not available") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected warning to mention provider unavailability")
	}
}

func TestSummarizer_GenerateNarrative_Success(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: true,
		response: &NarrateResponse{
			Text:       "Users are talking about CeraVe for acne.",
			CitedURLs:  []string{"https://www.cerave.com/"},
			Model:      "test-model",
			TokensUsed: 150,
		},
	}

	summarizer := &Summarizer{
		provider: mockProvider,
		config: Config{
			Model: "test-model",
		},
	}

	report := model.Report{
		Platform: "TikTok / Online Forums",
		Summary: []model.SummaryRow{
			{Product: "CeraVe", Platform: "TikTok / Online Forums", Claim: "Acne & Breakouts", Sentiment: model.SentimentPositive, Count: 3},
		},
		Manufacturers: []model.ManufacturerInfo{
			{Product: "CeraVe", Link: "https://www.cerave.com/"},
		},
	}

	narrative := summarizer.GenerateNarrative(context.Background(), report)

	if narrative == nil {
		t.Fatal("Expected narrative to be generated")
	}

	if !narrative.Enabled {
		t.Error("Expected narrative to be enabled")
	}

	if narrative.Provider != "test-provider" {
		t.Errorf("Expected provider 'test-provider', got '%s'", narrative.Provider)
	}

	if narrative.Model != "test-model" {
		t.Errorf("Expected model 'test-model', got '%s'", narrative.Model)
	}

	if narrative.Text != "Users are talking about CeraVe for acne." {
		t.Errorf("Expected narrative text to match, got '%s'", narrative.Text)
	}

	if len(narrative.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", narrative.Warnings)
	}
}

func TestSummarizer_GenerateNarrative_ProviderError(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: true,
		err:       &mockError{msg: "API rate limit exceeded"},
	}

	summarizer := &Summarizer{
		provider: mockProvider,
		config: Config{
			Model: "test-model",
		},
	}

	narrative := summarizer.GenerateNarrative(context.Background(), model.Report{Platform: "TikTok"})

	// Provider failures degrade to warnings, never fail the report
	if narrative == nil {
		t.Fatal("Expected narrative with error warning")
	}

	if !narrative.Enabled {
		t.Error("Expected narrative to be marked as enabled (but failed)")
	}

	if len(narrative.Warnings) == 0 {
		t.Fatal("Expected warning about generation failure")
	}

	found := false
	for _, warning := range narrative.Warnings {
		if strings.Contains(warning, "failed") && strings.Contains(warning, "rate limit") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected warning to mention error: %v", narrative.Warnings)
	}
}

func TestBuildPrompt_BasicStructure(t *testing.T) {
	report := model.Report{
		Platform:     "TikTok / Online Forums",
		CommentCount: 12,
		ProductCount: 15,
		MentionCount: 4,
		Summary: []model.SummaryRow{
			{Product: "CeraVe", Platform: "TikTok / Online Forums", Claim: "Acne & Breakouts", Sentiment: model.SentimentPositive, Count: 3},
			{Product: "Supergoop", Platform: "TikTok / Online Forums", Claim: "Sun Protection", Sentiment: model.SentimentMixed, Count: 1},
		},
		Keywords: []model.KeywordInsight{
			{Phrase: "dark spots", Reason: "Frequently mentioned in user comments.", Count: 2},
		},
	}

	allowedURLs := []string{"https://www.cerave.com/"}

	prompt := BuildPrompt(report, allowedURLs)

	requiredElements := []string{
		"RULES",
		"https://www.cerave.com/",
		"Platform: TikTok / Online Forums",
		"Comments analyzed: 12",
		"Products searched: 15",
		"Total mentions: 4",
		"CeraVe",
		"Acne & Breakouts",
		"dark spots",
		"3-4 sentence",
	}

	for _, element := range requiredElements {
		if !strings.Contains(prompt, element) {
			t.Errorf("Expected prompt to contain '%s'", element)
		}
	}
}

func TestBuildPrompt_NoURLs(t *testing.T) {
	prompt := BuildPrompt(model.Report{Platform: "TikTok"}, nil)

	if !strings.Contains(prompt, "(none)") {
		t.Error("Expected prompt to mark the URL allowlist as empty")
	}
}

func TestExtractURLs(t *testing.T) {
	text := "See https://www.cerave.com/ and (https://example.com/page). Also https://www.cerave.com/ again."

	urls := extractURLs(text)

	if len(urls) != 2 {
		t.Fatalf("Expected 2 unique URLs, got %d: %v", len(urls), urls)
	}
	if urls[0] != "https://www.cerave.com/" {
		t.Errorf("Unexpected first URL: %s", urls[0])
	}
	if urls[1] != "https://example.com/page" {
		t.Errorf("Unexpected second URL: %s", urls[1])
	}
}

func TestCheckFabricatedLinks(t *testing.T) {
	allowed := []string{"https://www.cerave.com/"}

	if err := checkFabricatedLinks([]string{"https://www.cerave.com/"}, allowed); err != nil {
		t.Errorf("Expected allowed URL to pass, got %v", err)
	}

	err := checkFabricatedLinks([]string{"https://fake.example.com/"}, allowed)
	if err == nil {
		t.Fatal("Expected error for fabricated link")
	}
	if !strings.Contains(err.Error(), "fabricated link") {
		t.Errorf("Expected fabricated link error, got %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "" {
		t.Errorf("Expected provider to be empty (disabled), got '%s'", config.Provider)
	}

	if config.Timeout <= 0 {
		t.Error("Expected positive timeout")
	}

	if config.MaxTokens <= 0 {
		t.Error("Expected positive max tokens")
	}
}

func TestSummarizer_IsEnabled(t *testing.T) {
	disabled := &Summarizer{
		provider: nil,
	}

	if disabled.IsEnabled() {
		t.Error("Expected IsEnabled() to return false when provider is nil")
	}

	enabled := &Summarizer{
		provider: &MockProvider{name: "test"},
	}

	if !enabled.IsEnabled() {
		t.Error("Expected IsEnabled() to return true when provider exists")
	}
}

// Mock error type for testing
type mockError struct {
	msg string
}

func (e *mockError) Error() string {
	return e.msg
}
