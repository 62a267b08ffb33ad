// Package sentiment scores short posts against a positive/negative word list
// and aggregates the labels into a dashboard summary.
package sentiment

import (
	"fmt"
	"math"
	"strings"

	"newsdash/internal/config"
	"newsdash/internal/models"
	"newsdash/internal/textutil"
)

// MaxSamples bounds the sample posts returned with a summary.
const MaxSamples = 5

type Analyzer struct {
	positive textutil.WordSet
	negative textutil.WordSet
	negators textutil.WordSet
}

func New(lex *config.Lexicon) *Analyzer {
	return &Analyzer{
		positive: textutil.NewWordSet(lex.PositiveWords),
		negative: textutil.NewWordSet(lex.NegativeWords),
		negators: textutil.NewWordSet(lex.Negators),
	}
}

// Score returns positive minus negative word hits. A negator directly before
// a sentiment word flips that word.
func (a *Analyzer) Score(text string) int {
	score := 0
	tokens := textutil.Tokenize(text)
	for i, tok := range tokens {
		v := 0
		switch {
		case a.positive.Has(tok):
			v = 1
		case a.negative.Has(tok):
			v = -1
		default:
			continue
		}
		if i > 0 && a.negated(tokens, i) {
			v = -v
		}
		score += v
	}
	return score
}

// negated looks one token back, skipping the "t" left over from contractions
// such as "isn't".
func (a *Analyzer) negated(tokens []string, i int) bool {
	prev := tokens[i-1]
	if prev == "t" && i > 1 {
		prev = tokens[i-2]
	}
	return a.negators.Has(prev)
}

func (a *Analyzer) Label(text string) string {
	switch s := a.Score(text); {
	case s > 0:
		return models.SentimentPositive
	case s < 0:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Summarize labels every non-blank text. Empty input yields a zero summary.
func (a *Analyzer) Summarize(texts []string) models.SentimentSummary {
	sum := models.SentimentSummary{Samples: []models.SamplePost{}}
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		label := a.Label(text)
		sum.Total++
		switch label {
		case models.SentimentPositive:
			sum.Positive++
		case models.SentimentNegative:
			sum.Negative++
		default:
			sum.Neutral++
		}
		if len(sum.Samples) < MaxSamples {
			sum.Samples = append(sum.Samples, models.SamplePost{Text: text, Sentiment: label})
		}
	}
	if sum.Total > 0 {
		sum.PositivePct = pct(sum.Positive, sum.Total)
		sum.NegativePct = pct(sum.Negative, sum.Total)
		sum.NeutralPct = pct(sum.Neutral, sum.Total)
	}
	return sum
}

// KeywordPosts builds the canned sample posts used when only a keyword is
// given and there is no post source to query.
func KeywordPosts(keyword string) []string {
	keyword = strings.TrimSpace(keyword)
	return []string{
		fmt.Sprintf("Great news about %s! Very positive development.", keyword),
		fmt.Sprintf("Not sure about this %s situation. Seems concerning.", keyword),
		fmt.Sprintf("Just heard about %s. Need more information.", keyword),
		fmt.Sprintf("Amazing progress with %s! Love to see it.", keyword),
		fmt.Sprintf("The %s issue is getting worse every day.", keyword),
	}
}

func pct(n, total int) float64 {
	return math.Round(float64(n)/float64(total)*1000) / 10
}
