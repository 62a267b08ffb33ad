package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"newsdash/internal/models"
)

// Lexicon is the static word configuration shared by the analyzers. It is
// loaded once at start-up and must not be modified afterwards.
type Lexicon struct {
	StopWords      []string         `yaml:"stop_words"`
	MinTokenLength int              `yaml:"min_token_length"`
	FakeIndicators []string         `yaml:"fake_indicators"`
	RealIndicators []string         `yaml:"real_indicators"`
	PositiveWords  []string         `yaml:"positive_words"`
	NegativeWords  []string         `yaml:"negative_words"`
	Negators       []string         `yaml:"negators"`
	ColorSchemes   []string         `yaml:"color_schemes"`
	Classifier     ClassifierTuning `yaml:"classifier"`
}

// ClassifierTuning holds the constants of the fake-news scoring formulas.
type ClassifierTuning struct {
	BaseConfidence     float64 `yaml:"base_confidence"`
	ConfidenceStep     float64 `yaml:"confidence_step"`
	ConfidenceSpan     float64 `yaml:"confidence_span"`
	ConfidenceCap      float64 `yaml:"confidence_cap"`
	DensityScale       float64 `yaml:"density_scale"`
	IdealSentenceWords float64 `yaml:"ideal_sentence_words"`
	SourceReliability  float64 `yaml:"source_reliability"`
}

func DefaultLexicon() *Lexicon {
	return &Lexicon{
		StopWords:      append([]string(nil), defaultStopWords...),
		MinTokenLength: 2,
		FakeIndicators: []string{"shocking", "unbelievable", "doctors hate this", "secret", "conspiracy"},
		RealIndicators: []string{"according to", "study shows", "research indicates", "official", "confirmed"},
		PositiveWords: []string{
			"good", "great", "amazing", "awesome", "excellent", "love", "positive", "progress",
			"happy", "win", "success", "better", "best", "hope", "support", "improve", "improved",
			"wonderful", "fantastic", "benefit", "glad", "proud", "strong", "safe",
		},
		NegativeWords: []string{
			"bad", "terrible", "awful", "hate", "worse", "worst", "concerning", "concern", "issue",
			"problem", "fail", "failure", "crisis", "angry", "sad", "fear", "danger", "dangerous",
			"poor", "loss", "scandal", "corrupt", "weak", "disaster",
		},
		Negators:     []string{"not", "no", "never", "don", "didn", "isn", "wasn", "aren", "cannot"},
		ColorSchemes: []string{"viridis", "plasma", "inferno", "magma", "cool", "hot"},
		Classifier: ClassifierTuning{
			BaseConfidence:     0.6,
			ConfidenceStep:     0.1,
			ConfidenceSpan:     0.3,
			ConfidenceCap:      0.95,
			DensityScale:       10,
			IdealSentenceWords: 15,
			SourceReliability:  0.55,
		},
	}
}

// LoadLexicon returns the default lexicon overlaid with the YAML file at
// path. Lists present in the file replace the defaults wholesale. An empty
// path or a missing file yields the defaults.
func LoadLexicon(path string) (*Lexicon, error) {
	lex := DefaultLexicon()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lex, nil
		}
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	if err := yaml.Unmarshal(data, lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return lex, nil
}

func (l *Lexicon) Validate() error {
	if l.MinTokenLength < 1 {
		return fmt.Errorf("%w: min_token_length must be at least 1", models.ErrInvalidConfiguration)
	}
	if len(l.FakeIndicators) == 0 || len(l.RealIndicators) == 0 {
		return fmt.Errorf("%w: both indicator sets must be non-empty", models.ErrInvalidConfiguration)
	}
	fake := map[string]struct{}{}
	for _, p := range l.FakeIndicators {
		fake[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	for _, p := range l.RealIndicators {
		if _, dup := fake[strings.ToLower(strings.TrimSpace(p))]; dup {
			return fmt.Errorf("%w: phrase %q is both a fake and a real indicator", models.ErrInvalidConfiguration, p)
		}
	}

	t := l.Classifier
	for name, v := range map[string]float64{
		"base_confidence":    t.BaseConfidence,
		"confidence_cap":     t.ConfidenceCap,
		"source_reliability": t.SourceReliability,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be in [0,1]", models.ErrInvalidConfiguration, name)
		}
	}
	if t.BaseConfidence > t.ConfidenceCap {
		return fmt.Errorf("%w: base_confidence exceeds confidence_cap", models.ErrInvalidConfiguration)
	}
	if t.ConfidenceStep < 0 || t.ConfidenceSpan < 0 || t.DensityScale < 0 {
		return fmt.Errorf("%w: classifier tuning must not be negative", models.ErrInvalidConfiguration)
	}
	if t.IdealSentenceWords <= 0 {
		return fmt.Errorf("%w: ideal_sentence_words must be positive", models.ErrInvalidConfiguration)
	}
	return nil
}

// HasColorScheme reports whether name is one of the configured schemes.
func (l *Lexicon) HasColorScheme(name string) bool {
	for _, s := range l.ColorSchemes {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

var defaultStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
	"are", "aren", "as", "at", "be", "because", "been", "before", "being", "below", "between",
	"both", "but", "by", "can", "could", "did", "didn", "do", "does", "doesn", "doing", "don",
	"down", "during", "each", "else", "ever", "few", "for", "from", "further", "get", "had",
	"has", "hasn", "have", "haven", "having", "he", "her", "here", "hers", "herself", "him",
	"himself", "his", "how", "however", "http", "https", "if", "in", "into", "is", "isn", "it",
	"its", "itself", "just", "like", "ll", "me", "more", "most", "my", "myself", "no", "nor",
	"not", "of", "off", "on", "once", "only", "or", "other", "otherwise", "ought", "our",
	"ours", "ourselves", "out", "over", "own", "rt", "same", "shall", "she", "should", "so",
	"some", "such", "than", "that", "the", "their", "theirs", "them", "themselves", "then",
	"there", "these", "they", "this", "those", "through", "to", "too", "under", "until", "up",
	"us", "very", "was", "wasn", "we", "were", "weren", "what", "when", "where", "which",
	"while", "who", "whom", "why", "will", "with", "won", "would", "www", "you", "your",
	"yours", "yourself", "yourselves", "ve", "re",
}
