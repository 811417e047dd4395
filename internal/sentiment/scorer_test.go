package sentiment

import (
	"testing"

	"github.com/skintel-labs/skintel/internal/model"
)

func TestBucket_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  model.Sentiment
	}{
		{0.05, model.SentimentPositive},
		{0.9, model.SentimentPositive},
		{-0.05, model.SentimentNegative},
		{-0.9, model.SentimentNegative},
		{0, model.SentimentMixed},
		{0.0499, model.SentimentMixed},
		{-0.0499, model.SentimentMixed},
	}

	for _, c := range cases {
		if got := Bucket(c.score); got != c.want {
			t.Errorf("Bucket(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestScorer_CompoundRange(t *testing.T) {
	scorer := NewScorer()

	texts := []string{
		"I love this serum, it is amazing",
		"This broke me out, terrible experience",
		"I applied the cream yesterday",
	}

	for _, text := range texts {
		score := scorer.Compound(text)
		if score < -1 || score > 1 {
			t.Errorf("Compound(%q) = %v, outside [-1, 1]", text, score)
		}
	}
}

func TestScorer_Score_Polarity(t *testing.T) {
	scorer := NewScorer()

	score, bucket := scorer.Score("I love this moisturizer, it is my holy grail and works great")
	if bucket != model.SentimentPositive {
		t.Errorf("Expected Positive for clearly positive text, got %s (score=%v)", bucket, score)
	}

	score, bucket = scorer.Score("Horrible product, it ruined my face and I hate it")
	if bucket != model.SentimentNegative {
		t.Errorf("Expected Negative for clearly negative text, got %s (score=%v)", bucket, score)
	}
}
