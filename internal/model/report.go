package model

import "time"

// Report represents a complete analysis run over one block of comments
type Report struct {
	ID          string    `json:"id"`           // Run identifier (UUID)
	Platform    string    `json:"platform"`     // Platform label the comments came from
	GeneratedAt time.Time `json:"generated_at"` // When the analysis ran

	CommentCount int `json:"comment_count"` // Non-empty comments analyzed
	ProductCount int `json:"product_count"` // Products searched for
	MentionCount int `json:"mention_count"` // Total mentions emitted

	Summary       []SummaryRow       `json:"summary"`       // Grouped mention counts, descending
	Keywords      []KeywordInsight   `json:"keywords"`      // Top trending bigrams (<= 5)
	Manufacturers []ManufacturerInfo `json:"manufacturers"` // Lookup results for top products

	LLM *LLMNarrative `json:"llm,omitempty"` // Optional narrative, never affects tables
}

// Empty reports whether the run found no product mentions at all
func (r *Report) Empty() bool {
	return len(r.Summary) == 0
}

// TopProducts returns up to n distinct products in summary order
func (r *Report) TopProducts(n int) []string {
	seen := make(map[string]bool)
	var products []string
	for _, row := range r.Summary {
		if seen[row.Product] {
			continue
		}
		seen[row.Product] = true
		products = append(products, row.Product)
		if len(products) == n {
			break
		}
	}
	return products
}

// LLMNarrative contains the optional model-generated narrative.
// It is presentation only and is kept clearly separated from the tables.
type LLMNarrative struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Text     string   `json:"text,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
