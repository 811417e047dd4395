package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/skintel-labs/skintel/internal/model"
	"github.com/skintel-labs/skintel/internal/sentiment"
)

// PolarityScorer produces a compound polarity score in [-1, 1] for a text
type PolarityScorer interface {
	Compound(text string) float64
}

// MentionAnalyzer matches comments against a product list and tags each
// match with a sentiment bucket and a claim category
type MentionAnalyzer struct {
	scorer   PolarityScorer
	taxonomy []model.ClaimCategory
}

// NewMentionAnalyzer creates a new analyzer. A nil taxonomy falls back to
// the default claim categories.
func NewMentionAnalyzer(scorer PolarityScorer, taxonomy []model.ClaimCategory) *MentionAnalyzer {
	if taxonomy == nil {
		taxonomy = model.DefaultClaimTaxonomy()
	}
	return &MentionAnalyzer{
		scorer:   scorer,
		taxonomy: taxonomy,
	}
}

// Analyze emits one Mention per (comment, product) pair where the product
// name appears in the comment as a whole word, case-insensitively.
// Pure function of its inputs; safe to memoize by value.
func (a *MentionAnalyzer) Analyze(comments []string, products []string, platform string) []model.Mention {
	if len(comments) == 0 || len(products) == 0 {
		return nil
	}

	// Compile one word-boundary pattern per product up front; blank names
	// have no pattern and never match
	patterns := make([]*regexp.Regexp, len(products))
	for i, product := range products {
		if strings.TrimSpace(product) == "" {
			continue
		}
		patterns[i] = wordPattern(product)
	}

	var mentions []model.Mention
	for ci, comment := range comments {
		lower := strings.ToLower(comment)

		// Lazy per-comment score: computed once, only if some product matches
		scored := false
		var score float64
		var bucket model.Sentiment

		for pi, product := range products {
			if patterns[pi] == nil || !patterns[pi].MatchString(lower) {
				continue
			}

			if !scored {
				score = a.scorer.Compound(comment)
				bucket = sentiment.Bucket(score)
				scored = true
			}

			mentions = append(mentions, model.Mention{
				Product:   product,
				Platform:  platform,
				Claim:     a.classifyClaim(lower),
				Sentiment: bucket,
				Score:     score,
				Comment:   ci,
			})
		}
	}

	return mentions
}

// Summarize groups mentions by (product, platform, claim, sentiment) and
// returns counts sorted descending, ties kept in first-occurrence order.
func Summarize(mentions []model.Mention) []model.SummaryRow {
	if len(mentions) == 0 {
		return nil
	}

	type groupKey struct {
		product   string
		platform  string
		claim     string
		sentiment model.Sentiment
	}

	counts := make(map[groupKey]int)
	var order []groupKey
	for _, m := range mentions {
		key := groupKey{m.Product, m.Platform, m.Claim, m.Sentiment}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	rows := make([]model.SummaryRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, model.SummaryRow{
			Product:   key.product,
			Platform:  key.platform,
			Claim:     key.claim,
			Sentiment: key.sentiment,
			Count:     counts[key],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})

	return rows
}

// classifyClaim scans the taxonomy in declaration order and returns the
// first category with any keyword present as a substring of the lowercased
// comment, or DefaultClaim if none match.
func (a *MentionAnalyzer) classifyClaim(lowerComment string) string {
	for _, category := range a.taxonomy {
		for _, keyword := range category.Keywords {
			if strings.Contains(lowerComment, keyword) {
				return category.Label
			}
		}
	}
	return model.DefaultClaim
}

// wordPattern compiles a case-folded whole-word pattern for a product name.
// The match rejects occurrences inside larger words, so "Acid" does not
// match inside "acidic" but does match the word in "ascorbic acid".
// Boundaries are spelled out instead of \b because \b is ASCII-only in Go,
// and product names and comments may carry accented letters.
func wordPattern(product string) *regexp.Regexp {
	name := regexp.QuoteMeta(strings.ToLower(product))
	return regexp.MustCompile(`(?:\A|[^\p{L}\p{N}_])` + name + `(?:[^\p{L}\p{N}_]|\z)`)
}
