package parser

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"newsdash/internal/models"
)

type Parser struct{}

func New() *Parser { return &Parser{} }

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extract pulls the headline and body text of an article page.
func (p *Parser) Extract(r io.Reader, contentType string) (models.Article, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.Article{}, err
	}

	// Decode to UTF-8 if needed
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return models.Article{}, err
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return models.Article{}, err
	}

	doc.Find("script,noscript,style,nav,footer,aside,form").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	title := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	// prefer paragraphs inside <article>; fall back to the whole page
	scope := doc.Find("article")
	if scope.Find("p").Length() == 0 {
		scope = doc.Selection
	}
	var parts []string
	scope.Find("p,li").Each(func(i int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	text := collapse(strings.Join(parts, " "))

	lang := strings.TrimSpace(doc.Find("html").AttrOr("lang", ""))
	if lang == "" {
		lang = doc.Find(`meta[property="og:locale"]`).AttrOr("content", "")
	}

	return models.Article{
		Title:     collapse(title),
		Text:      text,
		WordCount: len(strings.Fields(text)),
		Language:  lang,
	}, nil
}

// PlainText strips markup from an HTML fragment such as a feed item
// description. Input that fails to parse is returned with whitespace collapsed.
func PlainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(fragment)
	}
	doc.Find("script,style").Remove()
	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
