// Package articles classifies news articles fetched from the web.
package articles

import (
	"context"
	"errors"
	"fmt"

	"newsdash/internal/classifier"
	"newsdash/internal/crawler"
	"newsdash/internal/models"
	"newsdash/internal/parser"
)

var ErrUnparseable = errors.New("unparseable page")

// PageFetcher downloads HTML pages.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*crawler.Document, error)
}

type Checker struct {
	pages      PageFetcher
	parser     *parser.Parser
	classifier *classifier.Classifier
}

func NewChecker(pages PageFetcher, cl *classifier.Classifier) *Checker {
	return &Checker{pages: pages, parser: parser.New(), classifier: cl}
}

// Check fetches rawURL and classifies the article headline and body. The
// result also carries the article's word count and language.
func (c *Checker) Check(ctx context.Context, rawURL string) (models.ClassificationResult, error) {
	doc, err := c.pages.Fetch(ctx, rawURL)
	if err != nil {
		return models.ClassificationResult{}, err
	}
	defer doc.Close()

	article, err := c.parser.Extract(doc.Body, doc.ContentType)
	if err != nil {
		return models.ClassificationResult{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	text := article.Text
	if article.Title != "" {
		text = article.Title + ". " + text
	}
	res := c.classifier.Classify(text)
	res.SourceURL = doc.FinalURL
	res.WordCount = article.WordCount
	res.Language = article.Language
	return res, nil
}
