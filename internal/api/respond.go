package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"newsdash/internal/articles"
	"newsdash/internal/crawler"
	"newsdash/internal/feeds"
	"newsdash/internal/models"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		requestLogger(r, s.log).Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, models.ErrInvalidConfiguration),
		errors.Is(err, models.ErrMalformedRow),
		errors.Is(err, models.ErrNoTextColumn),
		errors.Is(err, models.ErrInputEmpty),
		errors.Is(err, crawler.ErrInvalidURL),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, crawler.ErrUnsupportedContent),
		errors.Is(err, feeds.ErrInvalidFeed),
		errors.Is(err, articles.ErrUnparseable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, crawler.ErrFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("invalid payload")

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
