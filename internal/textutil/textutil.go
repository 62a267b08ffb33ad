package textutil

import (
	"strings"
	"unicode"
)

// WordSet is a set of lower-cased words.
type WordSet map[string]struct{}

func NewWordSet(words []string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

func (s WordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

func isSeparator(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsNumber(r) }

// Tokenize lower-cases text and splits it on every non-alphanumeric rune.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), isSeparator)
}

// IsNumeric reports whether every rune of w is a digit.
func IsNumeric(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// CountPhrase counts non-overlapping case-insensitive occurrences of phrase in
// text. The caller passes text already lower-cased.
func CountPhrase(lowerText, phrase string) int {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return 0
	}
	return strings.Count(lowerText, phrase)
}

// Sentences splits text on runs of '.', '!' and '?' and drops empty pieces.
func Sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool { return r == '.' || r == '!' || r == '?' })
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ShoutingRatio is the share of words (of two letters or more) written fully
// in upper case.
func ShoutingRatio(text string) float64 {
	words := strings.FieldsFunc(text, isSeparator)
	total, upper := 0, 0
	for _, w := range words {
		letters, caps := 0, 0
		for _, r := range w {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					caps++
				}
			}
		}
		if letters < 2 {
			continue
		}
		total++
		if caps == letters {
			upper++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(upper) / float64(total)
}
