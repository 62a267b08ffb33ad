// Package feeds turns RSS, Atom and JSON feeds into text rows for analysis.
package feeds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"

	"newsdash/internal/crawler"
	"newsdash/internal/parser"
)

// Fetcher is the subset of crawler.HTTPClient the loader needs.
type Fetcher interface {
	FetchFeed(ctx context.Context, rawURL string) (*crawler.Document, error)
}

var ErrInvalidFeed = errors.New("invalid feed")

type Loader struct {
	fetcher Fetcher
}

func NewLoader(f Fetcher) *Loader { return &Loader{fetcher: f} }

// Feed is a parsed feed reduced to one text row per item.
type Feed struct {
	Title string
	Rows  []string
}

// Load fetches and parses the feed at rawURL.
func (l *Loader) Load(ctx context.Context, rawURL string) (Feed, error) {
	doc, err := l.fetcher.FetchFeed(ctx, rawURL)
	if err != nil {
		return Feed{}, err
	}
	defer doc.Close()
	return Parse(doc.Body)
}

// Parse reads a feed document. Each row is the item title followed by its
// description (or content) with markup removed.
func Parse(r io.Reader) (Feed, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return Feed{}, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}
	out := Feed{Title: strings.TrimSpace(feed.Title)}
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		body := item.Description
		if body == "" {
			body = item.Content
		}
		row := strings.TrimSpace(strings.TrimSpace(item.Title) + " " + parser.PlainText(body))
		if row != "" {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
