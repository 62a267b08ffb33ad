// Package wordfreq ranks the words of a corpus for word-cloud rendering.
package wordfreq

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"newsdash/internal/config"
	"newsdash/internal/models"
	"newsdash/internal/textutil"
)

// Engine is immutable after New and safe for concurrent use.
type Engine struct {
	stopwords textutil.WordSet
	minLen    int
}

func New(lex *config.Lexicon) *Engine {
	return &Engine{
		stopwords: textutil.NewWordSet(lex.StopWords),
		minLen:    lex.MinTokenLength,
	}
}

// ValidateMaxWords rejects caps outside [1, limit].
func ValidateMaxWords(maxWords, limit int) error {
	if maxWords < 1 || maxWords > limit {
		return fmt.Errorf("%w: maxWords must be in [1, %d], got %d", models.ErrInvalidConfiguration, limit, maxWords)
	}
	return nil
}

type entry struct {
	word  string
	count int
	first int
}

// Rank counts the qualifying tokens of corpus and returns at most maxWords of
// them, most frequent first. Equal counts keep first-occurrence order. The
// result is empty, never nil, when nothing qualifies.
func (e *Engine) Rank(corpus []string, maxWords int) []models.RankedWord {
	out := []models.RankedWord{}
	if maxWords <= 0 {
		return out
	}

	table := e.tally(corpus)
	if len(table) == 0 {
		return out
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].count == table[j].count {
			return table[i].first < table[j].first
		}
		return table[i].count > table[j].count
	})
	if len(table) > maxWords {
		table = table[:maxWords]
	}

	top := float64(table[0].count)
	for _, en := range table {
		out = append(out, models.RankedWord{
			Word:      en.word,
			Frequency: en.count,
			Weight:    float64(en.count) / top,
		})
	}
	return out
}

// tally counts the qualifying tokens of corpus in first-occurrence order.
func (e *Engine) tally(corpus []string) []entry {
	index := map[string]int{}
	var table []entry
	for _, row := range corpus {
		for _, tok := range textutil.Tokenize(row) {
			if !e.qualifies(tok) {
				continue
			}
			if i, ok := index[tok]; ok {
				table[i].count++
				continue
			}
			index[tok] = len(table)
			table = append(table, entry{word: tok, count: 1, first: len(table)})
		}
	}
	return table
}

func (e *Engine) qualifies(tok string) bool {
	if utf8.RuneCountInString(tok) < e.minLen {
		return false
	}
	if textutil.IsNumeric(tok) {
		return false
	}
	return !e.stopwords.Has(tok)
}
