package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdash/internal/config"
	"newsdash/internal/models"
)

func newAnalyzer() *Analyzer { return New(config.DefaultLexicon()) }

func TestLabel(t *testing.T) {
	a := newAnalyzer()
	tests := []struct {
		text string
		want string
	}{
		{"What a great result, I love it", models.SentimentPositive},
		{"This is a terrible, awful decision", models.SentimentNegative},
		{"The meeting is at noon", models.SentimentNeutral},
		{"This is not good", models.SentimentNegative},
		{"It isn't bad at all", models.SentimentPositive},
		{"good but bad", models.SentimentNeutral},
		{"", models.SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Label(tt.text))
		})
	}
}

func TestSummarizeKeywordPosts(t *testing.T) {
	sum := newAnalyzer().Summarize(KeywordPosts("elections"))

	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, 2, sum.Positive)
	assert.Equal(t, 2, sum.Negative)
	assert.Equal(t, 1, sum.Neutral)
	assert.Equal(t, 40.0, sum.PositivePct)
	assert.Equal(t, 40.0, sum.NegativePct)
	assert.Equal(t, 20.0, sum.NeutralPct)
	require.Len(t, sum.Samples, 5)
	assert.Equal(t, models.SamplePost{
		Text:      "Great news about elections! Very positive development.",
		Sentiment: models.SentimentPositive,
	}, sum.Samples[0])
}

func TestSummarizeSkipsBlankAndCapsSamples(t *testing.T) {
	texts := []string{"", "  ", "good", "bad", "fine", "great", "worse", "best", "okay"}
	sum := newAnalyzer().Summarize(texts)

	assert.Equal(t, 7, sum.Total)
	assert.Len(t, sum.Samples, MaxSamples)
	assert.Equal(t, 3, sum.Positive)
	assert.Equal(t, 42.9, sum.PositivePct)
	assert.Equal(t, 28.6, sum.NegativePct)
	assert.Equal(t, 28.6, sum.NeutralPct)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := newAnalyzer().Summarize(nil)
	assert.Zero(t, sum.Total)
	assert.Zero(t, sum.PositivePct)
	assert.NotNil(t, sum.Samples)
	assert.Empty(t, sum.Samples)
}
