package crawler

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchHTML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("<html><title>x</title></html>"))
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 2*time.Second, 1024)
	doc, err := client.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("fetch err: %v", err)
	}
	defer doc.Close()
	if doc.FinalURL == "" || doc.ContentType == "" || doc.Elapsed == 0 {
		t.Fatal("unexpected empty values")
	}
}

func TestFetchGzipAndSizeCap(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte("<html><body><p>0123456789abcdef</p></body></html>"))
		_ = gz.Close()
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 2*time.Second, 10)
	doc, err := client.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("fetch err: %v", err)
	}
	defer doc.Close()
	data, err := io.ReadAll(doc.Body)
	if err != nil {
		t.Fatalf("read err: %v", err)
	}
	if string(data) != "<html><bod" {
		t.Fatalf("size cap not applied: %q", data)
	}
}

func TestRejectNonHTML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		w.Write([]byte("{}"))
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 2*time.Second, 1024)
	_, err := client.Fetch(context.Background(), ts.URL)
	if !errors.Is(err, ErrUnsupportedContent) {
		t.Fatalf("expected unsupported content error, got %v", err)
	}
}

func TestFetchFeedAcceptsXML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte("<rss></rss>"))
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 2*time.Second, 1024)
	doc, err := client.FetchFeed(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("fetch feed err: %v", err)
	}
	doc.Close()

	if _, err := client.Fetch(context.Background(), ts.URL); !errors.Is(err, ErrUnsupportedContent) {
		t.Fatalf("html fetch should reject rss, got %v", err)
	}
}

func TestFetchErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	client := NewHTTPClient(5*time.Second, 2*time.Second, 1024)
	if _, err := client.Fetch(context.Background(), ts.URL); !errors.Is(err, ErrFetch) {
		t.Fatalf("expected fetch error for 404, got %v", err)
	}
	for _, bad := range []string{"", "not a url", "ftp://example.com/x"} {
		if _, err := client.Fetch(context.Background(), bad); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("%q: expected invalid url, got %v", bad, err)
		}
	}
}
