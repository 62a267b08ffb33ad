package api

import (
	"net/http"
	"strings"

	"newsdash/internal/sentiment"
)

type sentimentReq struct {
	Keyword string   `json:"keyword"`
	Rows    []string `json:"rows"`
}

// POST /sentiment  { "keyword": "elections" } or { "rows": ["..."] }
func (s *Server) sentimentSummary(w http.ResponseWriter, r *http.Request) {
	var req sentimentReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	// neither rows nor a keyword yields the zero summary
	keyword := strings.TrimSpace(req.Keyword)
	if len(req.Rows) > 0 || keyword == "" {
		writeJSON(w, http.StatusOK, s.sentiment.Summarize(req.Rows))
		return
	}
	sum := s.sentiment.Summarize(sentiment.KeywordPosts(keyword))
	sum.Keyword = keyword
	writeJSON(w, http.StatusOK, sum)
}

// POST /sentiment/upload (multipart file=..., column)
func (s *Server) sentimentUpload(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.readUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sum := s.sentiment.Summarize(tbl.Rows)
	sum.Column = tbl.Column
	writeJSON(w, http.StatusOK, sum)
}
