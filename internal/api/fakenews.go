package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"newsdash/internal/models"
)

type fakeNewsReq struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type batchReq struct {
	Texts []string `json:"texts"`
	URLs  []string `json:"urls"`
}

type batchItem struct {
	Input  string                       `json:"input"`
	Kind   string                       `json:"kind"`
	Result *models.ClassificationResult `json:"result,omitempty"`
	Error  string                       `json:"error,omitempty"`
}

func (s *Server) fetchContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, s.cfg.Fetch.Timeout+5*time.Second)
}

// POST /fakenews  { "text": "..." } or { "url": "https://..." }
func (s *Server) fakeNews(w http.ResponseWriter, r *http.Request) {
	var req fakeNewsReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.URL == "" {
		writeJSON(w, http.StatusOK, s.classifier.Classify(req.Text))
		return
	}

	ctx, cancel := s.fetchContext(r.Context())
	defer cancel()
	res, err := s.articles.Check(ctx, req.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /fakenews/batch  { "texts": ["..."], "urls": ["https://..."] }
func (s *Server) fakeNewsBatch(w http.ResponseWriter, r *http.Request) {
	var req batchReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.Texts)+len(req.URLs) == 0 {
		s.writeError(w, r, fmt.Errorf("%w: texts or urls required", models.ErrInputEmpty))
		return
	}

	results := make([]batchItem, 0, len(req.Texts)+len(req.URLs))
	for _, t := range req.Texts {
		res := s.classifier.Classify(t)
		results = append(results, batchItem{Input: t, Kind: "text", Result: &res})
	}

	offset := len(results)
	results = append(results, make([]batchItem, len(req.URLs))...)

	// bounded concurrency; per-item failures are reported, not returned
	var g errgroup.Group
	g.SetLimit(s.cfg.Limits.BatchConcurrency)
	for i, u := range req.URLs {
		g.Go(func() error {
			item := batchItem{Input: u, Kind: "url"}
			ctx, cancel := s.fetchContext(r.Context())
			defer cancel()
			if strings.TrimSpace(u) == "" {
				item.Error = "empty url"
			} else if res, err := s.articles.Check(ctx, u); err != nil {
				item.Error = err.Error()
			} else {
				item.Result = &res
			}
			results[offset+i] = item
			return nil
		})
	}
	_ = g.Wait()

	writeJSON(w, http.StatusOK, results)
}

// POST /fakenews/upload (multipart file=...) -> NDJSON stream
func (s *Server) fakeNewsUpload(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.readUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	type out struct {
		Row    int                         `json:"row"`
		Result models.ClassificationResult `json:"result"`
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)
	for i, text := range tbl.Rows {
		if r.Context().Err() != nil {
			return
		}
		if err := enc.Encode(out{Row: i, Result: s.classifier.Classify(text)}); err != nil {
			requestLogger(r, s.log).Warnf("ndjson write: %v", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}
