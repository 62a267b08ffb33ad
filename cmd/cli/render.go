package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"newsdash/internal/models"
)

var (
	accentColor = lipgloss.Color("#2DA44E")
	fakeColor   = lipgloss.Color("#CF222E")
	dimColor    = lipgloss.Color("#6E7681")
	barColor    = lipgloss.Color("#0969DA")
	warnColor   = lipgloss.Color("#D29922")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(barColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	wordStyle  = lipgloss.NewStyle().Width(18)
	countStyle = lipgloss.NewStyle().Width(8).Align(lipgloss.Right).Foreground(dimColor)
	barStyle   = lipgloss.NewStyle().Foreground(barColor)
	dimStyle   = lipgloss.NewStyle().Foreground(dimColor)
	realStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	fakeStyle  = lipgloss.NewStyle().Bold(true).Foreground(fakeColor)
	errStyle   = lipgloss.NewStyle().Foreground(warnColor)
)

const barWidth = 30

func renderWordCloud(w io.Writer, cloud models.WordCloud) error {
	title := fmt.Sprintf("Top %d words from %s rows (%s)", len(cloud.Words), humanize.Comma(int64(cloud.RowCount)), cloud.ColorScheme)
	lines := []string{headerStyle.Render(title)}
	if len(cloud.Words) == 0 {
		lines = append(lines, dimStyle.Render("no qualifying words"))
	}
	for _, rw := range cloud.Words {
		n := int(rw.Weight*barWidth + 0.5)
		if n < 1 {
			n = 1
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			wordStyle.Render(rw.Word),
			countStyle.Render(humanize.Comma(int64(rw.Frequency))),
			" ",
			barStyle.Render(strings.Repeat("█", n)),
		))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func renderClassifications(w io.Writer, recs []classifyRec) error {
	var lines []string
	for _, rec := range recs {
		lines = append(lines, dimStyle.Render(truncate(rec.Input, 72)))
		if rec.Error != "" {
			lines = append(lines, "  "+errStyle.Render("error: "+rec.Error), "")
			continue
		}
		res := rec.Result
		label := realStyle.Render(strings.ToUpper(res.Label))
		if res.Label == models.LabelFake {
			label = fakeStyle.Render(strings.ToUpper(res.Label))
		}
		head := fmt.Sprintf("  %s  confidence %.2f", label, res.Confidence)
		if res.WordCount > 0 {
			head += dimStyle.Render(fmt.Sprintf("  %s words %s", humanize.Comma(int64(res.WordCount)), res.Language))
		}
		lines = append(lines,
			head,
			dimStyle.Render(fmt.Sprintf("  credibility %.2f  language %.2f  source %.2f",
				res.Credibility, res.LanguageQuality, res.SourceReliability)),
			"")
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func renderSentiment(w io.Writer, sum models.SentimentSummary) error {
	title := fmt.Sprintf("Sentiment of %s posts", humanize.Comma(int64(sum.Total)))
	if sum.Keyword != "" {
		title += fmt.Sprintf(" about %q", sum.Keyword)
	}
	lines := []string{
		headerStyle.Render(title),
		realStyle.Render(fmt.Sprintf("positive %5.1f%% (%d)", sum.PositivePct, sum.Positive)),
		fakeStyle.Render(fmt.Sprintf("negative %5.1f%% (%d)", sum.NegativePct, sum.Negative)),
		dimStyle.Render(fmt.Sprintf("neutral  %5.1f%% (%d)", sum.NeutralPct, sum.Neutral)),
	}
	if len(sum.Samples) > 0 {
		lines = append(lines, "")
	}
	for _, s := range sum.Samples {
		lines = append(lines, fmt.Sprintf("  [%s] %s", s.Sentiment, truncate(s.Text, 72)))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
