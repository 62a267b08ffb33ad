package wordfreq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdash/internal/config"
	"newsdash/internal/models"
)

func newEngine() *Engine { return New(config.DefaultLexicon()) }

func TestRankDropsStopWords(t *testing.T) {
	got := newEngine().Rank([]string{"the cat sat", "the cat ran"}, 10)
	want := []models.RankedWord{
		{Word: "cat", Frequency: 2, Weight: 1.0},
		{Word: "sat", Frequency: 1, Weight: 0.5},
		{Word: "ran", Frequency: 1, Weight: 0.5},
	}
	assert.Equal(t, want, got)
}

func TestRankEmptyCorpus(t *testing.T) {
	e := newEngine()
	for _, corpus := range [][]string{nil, {}, {""}, {"the a of", "1 22 333", "x y z"}} {
		got := e.Rank(corpus, 10)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestRankNonPositiveMaxWords(t *testing.T) {
	assert.Empty(t, newEngine().Rank([]string{"golang golang"}, 0))
}

func TestRankTruncatesAndKeepsFirstOccurrenceOrder(t *testing.T) {
	corpus := []string{"zeta alpha mango", "alpha beta", "zeta kiwi"}
	got := newEngine().Rank(corpus, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "zeta", got[0].Word)
	assert.Equal(t, "alpha", got[1].Word)
	assert.Equal(t, "mango", got[2].Word)
	assert.Equal(t, 0.5, got[2].Weight)
}

func TestRankIndependentOfRowBoundaries(t *testing.T) {
	e := newEngine()
	rows := []string{"Markets rally, markets", "cheer; rally again"}
	joined := []string{strings.Join(rows, " ")}
	assert.Equal(t, e.Rank(joined, 50), e.Rank(rows, 50))
}

func TestRankFiltersNumeralsAndShortTokens(t *testing.T) {
	got := newEngine().Rank([]string{"2024 x Go go GO b2b"}, 10)
	assert.Equal(t, []models.RankedWord{
		{Word: "go", Frequency: 3, Weight: 1},
		{Word: "b2b", Frequency: 1, Weight: 1.0 / 3},
	}, got)
}

func TestRankProperties(t *testing.T) {
	e := newEngine()
	corpus := []string{
		"Election results confirmed by officials after recount",
		"Officials say the recount confirmed election integrity",
		"Climate summit ends; officials promise climate funding",
		"Election day: turnout high, results pending",
	}
	distinct := len(e.tally(corpus))
	for _, maxWords := range []int{1, 3, 5, 100} {
		got := e.Rank(corpus, maxWords)
		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), maxWords)
		assert.LessOrEqual(t, len(got), distinct)
		assert.Equal(t, 1.0, got[0].Weight)
		for i, w := range got {
			assert.Greater(t, w.Weight, 0.0)
			assert.LessOrEqual(t, w.Weight, 1.0)
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].Frequency, w.Frequency)
			}
		}
		assert.Equal(t, got, e.Rank(corpus, maxWords), "ranking must be deterministic")
	}
}

func TestTallyKeepsFirstOccurrenceOrder(t *testing.T) {
	got := newEngine().tally([]string{"the end", "News, news and more NEWS"})
	assert.Equal(t, []entry{
		{word: "end", count: 1, first: 0},
		{word: "news", count: 3, first: 1},
	}, got)
	assert.Empty(t, newEngine().tally([]string{"", "the and 42"}))
}

func TestValidateMaxWords(t *testing.T) {
	assert.NoError(t, ValidateMaxWords(1, 500))
	assert.NoError(t, ValidateMaxWords(500, 500))
	assert.ErrorIs(t, ValidateMaxWords(0, 500), models.ErrInvalidConfiguration)
	assert.ErrorIs(t, ValidateMaxWords(501, 500), models.ErrInvalidConfiguration)
}
