package model

// Sentiment buckets a compound polarity score into a user-facing label.
// "Mixed" denotes the neutral band; the name is kept from the original
// report vocabulary.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentMixed    Sentiment = "Mixed"
)

// Mention represents a single (comment, product) match event
type Mention struct {
	Product   string    `json:"product"`           // Matched product name
	Platform  string    `json:"platform"`          // Platform label supplied by the user
	Claim     string    `json:"claim"`             // Claim category or DefaultClaim
	Sentiment Sentiment `json:"sentiment"`         // Bucketed compound score
	Score     float64   `json:"score"`             // Raw compound polarity in [-1, 1]
	Comment   int       `json:"comment,omitempty"` // Comment index in input (0-based)
}

// SummaryRow is one aggregated row of the mention summary table
type SummaryRow struct {
	Product   string    `json:"product"`
	Platform  string    `json:"platform"`
	Claim     string    `json:"claim"`
	Sentiment Sentiment `json:"sentiment"`
	Count     int       `json:"count"`
}

// ClaimCategory maps a marketing-claim label to its keyword triggers.
// Categories are evaluated in declaration order; the first match wins.
type ClaimCategory struct {
	Label    string   `json:"label" yaml:"label"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// DefaultClaim is assigned when no category keyword matches a comment
const DefaultClaim = "General Skincare"
