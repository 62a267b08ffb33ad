package models

// Labels produced by the heuristic classifier.
const (
	LabelFake = "fake"
	LabelReal = "real"
)

// Labels produced by the sentiment analyzer.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// RankedWord is one entry of a word cloud. Weight is Frequency divided by the
// highest frequency among the retained words.
type RankedWord struct {
	Word      string  `json:"word"`
	Frequency int     `json:"frequency"`
	Weight    float64 `json:"weight"`
}

type WordCloud struct {
	Words       []RankedWord `json:"words"`
	MaxWords    int          `json:"maxWords"`
	ColorScheme string       `json:"colorScheme"`
	RowCount    int          `json:"rowCount"`
	Column      string       `json:"column,omitempty"`
	Source      string       `json:"source,omitempty"`
}

type ClassificationResult struct {
	Label             string  `json:"label"`
	Confidence        float64 `json:"confidence"`
	Credibility       float64 `json:"credibility"`
	LanguageQuality   float64 `json:"languageQuality"`
	SourceReliability float64 `json:"sourceReliability"`
	SourceURL         string  `json:"sourceUrl,omitempty"`
	// Set only when the text came from a fetched article.
	WordCount int    `json:"wordCount,omitempty"`
	Language  string `json:"language,omitempty"`
}

type SamplePost struct {
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
}

type SentimentSummary struct {
	Keyword     string       `json:"keyword,omitempty"`
	Column      string       `json:"column,omitempty"`
	Total       int          `json:"total"`
	Positive    int          `json:"positive"`
	Negative    int          `json:"negative"`
	Neutral     int          `json:"neutral"`
	PositivePct float64      `json:"positivePct"`
	NegativePct float64      `json:"negativePct"`
	NeutralPct  float64      `json:"neutralPct"`
	Samples     []SamplePost `json:"samples"`
}

// Article is the readable part of a fetched HTML page.
type Article struct {
	Title     string `json:"title,omitempty"`
	Text      string `json:"text,omitempty"`
	WordCount int    `json:"wordCount,omitempty"`
	Language  string `json:"language,omitempty"`
}
