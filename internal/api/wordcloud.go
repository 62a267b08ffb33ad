package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"newsdash/internal/ioformats"
	"newsdash/internal/models"
	"newsdash/internal/wordfreq"
)

type wordCloudReq struct {
	Rows        []string `json:"rows"`
	FeedURL     string   `json:"feedUrl"`
	MaxWords    *int     `json:"maxWords"`
	ColorScheme string   `json:"colorScheme"`
}

// POST /wordcloud  { "rows": ["..."], "maxWords": 100, "colorScheme": "viridis" }
// or               { "feedUrl": "https://.../rss" }
func (s *Server) wordCloud(w http.ResponseWriter, r *http.Request) {
	var req wordCloudReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	maxWords, scheme, err := s.renderOptions(req.MaxWords, req.ColorScheme)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rows, source := req.Rows, ""
	if req.FeedURL != "" {
		ctx, cancel := s.fetchContext(r.Context())
		defer cancel()
		feed, err := s.feeds.Load(ctx, req.FeedURL)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		rows, source = feed.Rows, req.FeedURL
		requestLogger(r, s.log).Debugf("feed %q: %d items", feed.Title, len(rows))
	}

	cloud := s.buildCloud(rows, maxWords, scheme)
	cloud.Source = source
	writeJSON(w, http.StatusOK, cloud)
}

// POST /wordcloud/upload (multipart file=..., maxWords, colorScheme, column)
func (s *Server) wordCloudUpload(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.readUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var maxWords *int
	if v := r.FormValue("maxWords"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: maxWords must be an integer", models.ErrInvalidConfiguration))
			return
		}
		maxWords = &n
	}
	n, scheme, err := s.renderOptions(maxWords, r.FormValue("colorScheme"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cloud := s.buildCloud(tbl.Rows, n, scheme)
	cloud.Column = tbl.Column
	writeJSON(w, http.StatusOK, cloud)
}

func (s *Server) buildCloud(rows []string, maxWords int, scheme string) models.WordCloud {
	return models.WordCloud{
		Words:       s.engine.Rank(rows, maxWords),
		MaxWords:    maxWords,
		ColorScheme: scheme,
		RowCount:    len(rows),
	}
}

// renderOptions validates the caller's cap and color scheme, filling defaults.
func (s *Server) renderOptions(maxWords *int, scheme string) (int, string, error) {
	n := s.cfg.Limits.DefaultMaxWords
	if maxWords != nil {
		n = *maxWords
	}
	if err := wordfreq.ValidateMaxWords(n, s.cfg.Limits.MaxWordsLimit); err != nil {
		return 0, "", err
	}

	scheme = strings.ToLower(strings.TrimSpace(scheme))
	if scheme == "" {
		scheme = s.cfg.Lexicon.ColorSchemes[0]
	}
	if !s.cfg.Lexicon.HasColorScheme(scheme) {
		return 0, "", fmt.Errorf("%w: unknown colorScheme %q, want one of %v",
			models.ErrInvalidConfiguration, scheme, s.cfg.Lexicon.ColorSchemes)
	}
	return n, scheme, nil
}

// readUpload parses a multipart upload and selects its text column. A file
// with no rows yields an empty table.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (ioformats.Table, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Limits.MaxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return ioformats.Table{}, err
		}
		return ioformats.Table{}, fmt.Errorf("%w: multipart parse error", errBadRequest)
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return ioformats.Table{}, fmt.Errorf("%w: file part 'file' required", errBadRequest)
	}
	defer f.Close()

	tbl, err := ioformats.OrEmpty(ioformats.ReadTextsFrom(f, hdr.Filename, r.FormValue("column")))
	if err != nil {
		return ioformats.Table{}, err
	}
	requestLogger(r, s.log).Debugf("upload %q: %d rows from column %q", hdr.Filename, len(tbl.Rows), tbl.Column)
	return tbl, nil
}
