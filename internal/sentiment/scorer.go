package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/skintel-labs/skintel/internal/model"
)

// Bucketing thresholds for the compound polarity score. Scores in the open
// interval (-0.05, 0.05) land in the neutral "Mixed" bucket.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Scorer produces compound polarity scores using the VADER lexicon
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer creates a new lexicon-based sentiment scorer
func NewScorer() *Scorer {
	return &Scorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Compound returns the compound polarity of text in [-1, 1]
func (s *Scorer) Compound(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}

// Score returns the compound polarity and its bucket in one call
func (s *Scorer) Score(text string) (float64, model.Sentiment) {
	compound := s.Compound(text)
	return compound, Bucket(compound)
}

// Bucket maps a compound polarity score onto a sentiment label.
// Pure function of the score; the thresholds are fixed.
func Bucket(score float64) model.Sentiment {
	switch {
	case score >= positiveThreshold:
		return model.SentimentPositive
	case score <= negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentMixed
	}
}
