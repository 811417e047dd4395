package model

// KeywordInsight is one trending two-word phrase with its canned rationale
type KeywordInsight struct {
	Phrase string `json:"phrase"`          // Bigram joined with a single space
	Reason string `json:"reason"`          // Canned explanation for the trend
	Count  int    `json:"count,omitempty"` // Bigram frequency across all comments
}
