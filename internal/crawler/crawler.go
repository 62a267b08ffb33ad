package crawler

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrInvalidURL         = errors.New("invalid url")
	ErrUnsupportedContent = errors.New("unsupported content type")
	ErrFetch              = errors.New("fetch failed")
)

const (
	acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptFeed = "application/rss+xml,application/atom+xml,application/feed+json,application/xml;q=0.9,text/xml;q=0.9,*/*;q=0.5"
)

// Document is a fetched response body capped at the client's size limit.
// Callers must Close it.
type Document struct {
	Body        io.ReadCloser
	FinalURL    string
	ContentType string
	Elapsed     time.Duration
}

func (d *Document) Close() error { return d.Body.Close() }

type HTTPClient struct {
	client    *http.Client
	sizeCap   int64
	userAgent string
}

func NewHTTPClient(timeout, dialTimeout time.Duration, sizeCap int64) *HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &HTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		sizeCap:   sizeCap,
		userAgent: "newsdash/1.0 (+https://example.com)",
	}
}

// Fetch downloads an HTML page for article extraction.
func (h *HTTPClient) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	return h.fetch(ctx, rawURL, acceptHTML, isHTML)
}

// FetchFeed downloads an RSS, Atom or JSON feed.
func (h *HTTPClient) FetchFeed(ctx context.Context, rawURL string) (*Document, error) {
	return h.fetch(ctx, rawURL, acceptFeed, isFeed)
}

func (h *HTTPClient) fetch(ctx context.Context, rawURL, accept string, allowed func(string) bool) (*Document, error) {
	start := time.Now()
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: http status %d", ErrFetch, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	// an omitted content type is let through
	if mediaType != "" && !allowed(mediaType) {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContent, mediaType)
	}

	var body io.ReadCloser = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		body = gz
	}

	return &Document{
		Body:        limitedReadCloser{Reader: io.LimitReader(body, h.sizeCap), closers: []io.Closer{body, resp.Body}},
		FinalURL:    resp.Request.URL.String(),
		ContentType: contentType,
		Elapsed:     time.Since(start),
	}, nil
}

type limitedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (l limitedReadCloser) Close() error {
	var errs []error
	for _, c := range l.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func isHTML(mediaType string) bool {
	return strings.Contains(mediaType, "text/html") || strings.Contains(mediaType, "application/xhtml+xml")
}

func isFeed(mediaType string) bool {
	return strings.Contains(mediaType, "xml") || strings.Contains(mediaType, "json") || mediaType == "text/plain"
}
