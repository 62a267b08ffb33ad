package classifier

import (
	"math"
	"strings"

	"newsdash/internal/config"
	"newsdash/internal/models"
	"newsdash/internal/textutil"
)

// Classifier labels text as fake or real by counting indicator phrases.
// It holds only the lexicon it was built with and is safe for concurrent use.
type Classifier struct {
	fake   []string
	real   []string
	tuning config.ClassifierTuning
}

func New(lex *config.Lexicon) *Classifier {
	return &Classifier{
		fake:   normalizePhrases(lex.FakeIndicators),
		real:   normalizePhrases(lex.RealIndicators),
		tuning: lex.Classifier,
	}
}

func normalizePhrases(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Score is the raw evidence behind a classification.
type Score struct {
	FakeHits int
	RealHits int
	Words    int
}

// Evidence counts indicator phrase occurrences in text.
func (c *Classifier) Evidence(text string) Score {
	lower := strings.ToLower(text)
	var s Score
	for _, p := range c.fake {
		s.FakeHits += textutil.CountPhrase(lower, p)
	}
	for _, p := range c.real {
		s.RealHits += textutil.CountPhrase(lower, p)
	}
	s.Words = len(textutil.Tokenize(text))
	return s
}

// Classify never fails. Blank text gets the default result: label real at the
// base confidence.
func (c *Classifier) Classify(text string) models.ClassificationResult {
	if strings.TrimSpace(text) == "" {
		return c.Default()
	}

	s := c.Evidence(text)
	label := models.LabelReal
	if s.FakeHits > s.RealHits {
		label = models.LabelFake
	}

	return models.ClassificationResult{
		Label:             label,
		Confidence:        round(c.confidence(s)),
		Credibility:       round(c.credibility(s)),
		LanguageQuality:   round(c.languageQuality(text)),
		SourceReliability: c.tuning.SourceReliability,
	}
}

// Default is the result for text with nothing to score.
func (c *Classifier) Default() models.ClassificationResult {
	return models.ClassificationResult{
		Label:             models.LabelReal,
		Confidence:        c.tuning.BaseConfidence,
		Credibility:       round(credibilityMid),
		LanguageQuality:   qualityLow,
		SourceReliability: c.tuning.SourceReliability,
	}
}

func (c *Classifier) confidence(s Score) float64 {
	t := c.tuning
	margin := math.Abs(float64(s.FakeHits - s.RealHits))
	conf := t.BaseConfidence + t.ConfidenceStep*margin
	conf = math.Min(conf, t.BaseConfidence+t.ConfidenceSpan)
	return math.Min(conf, t.ConfidenceCap)
}

const (
	credibilityLow  = 0.3
	credibilityHigh = 0.9
	qualityLow      = 0.4
	qualityHigh     = 0.9

	credibilityMid = (credibilityLow + credibilityHigh) / 2
)

// credibility falls with the density of fake indicators and recovers with
// the density of real ones.
func (c *Classifier) credibility(s Score) float64 {
	if s.Words == 0 {
		return credibilityMid
	}
	scale := c.tuning.DensityScale
	fakeDensity := float64(s.FakeHits) / float64(s.Words)
	realDensity := float64(s.RealHits) / float64(s.Words)
	v := 1 - math.Min(1, fakeDensity*scale) + math.Min(1, realDensity*scale)/2
	return clamp(credibilityLow+(credibilityHigh-credibilityLow)*v, credibilityLow, credibilityHigh)
}

// languageQuality rewards sentences near the ideal length and penalizes
// exclamation marks and all-caps words.
func (c *Classifier) languageQuality(text string) float64 {
	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return qualityLow
	}
	words := 0
	for _, s := range sentences {
		words += len(textutil.Tokenize(s))
	}
	avg := float64(words) / float64(len(sentences))
	v := qualityLow + (qualityHigh-qualityLow)*math.Min(1, avg/c.tuning.IdealSentenceWords)

	exclaim := float64(strings.Count(text, "!")) / float64(len(sentences))
	v -= 0.1 * math.Min(1, exclaim)
	v -= 0.1 * textutil.ShoutingRatio(text)
	return clamp(v, qualityLow, qualityHigh)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round trims scores to four decimals.
func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
