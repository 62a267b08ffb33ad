// Package api exposes the analyzers over HTTP.
package api

import (
	"net/http"

	"newsdash/internal/articles"
	"newsdash/internal/classifier"
	"newsdash/internal/config"
	"newsdash/internal/crawler"
	"newsdash/internal/feeds"
	"newsdash/internal/sentiment"
	"newsdash/internal/wordfreq"
	"newsdash/pkg/logger"
)

const serviceName = "newsdash-api"

type Server struct {
	log        *logger.Logger
	cfg        *config.Config
	engine     *wordfreq.Engine
	classifier *classifier.Classifier
	sentiment  *sentiment.Analyzer
	articles   *articles.Checker
	feeds      *feeds.Loader
}

// NewServer wires the analyzers built from cfg.Lexicon to an HTTP client
// configured from cfg.Fetch.
func NewServer(l *logger.Logger, cfg *config.Config) *Server {
	client := crawler.NewHTTPClient(cfg.Fetch.Timeout, cfg.Fetch.DialTimeout, cfg.Fetch.SizeCap)
	cl := classifier.New(cfg.Lexicon)
	return &Server{
		log:        l,
		cfg:        cfg,
		engine:     wordfreq.New(cfg.Lexicon),
		classifier: cl,
		sentiment:  sentiment.New(cfg.Lexicon),
		articles:   articles.NewChecker(client, cl),
		feeds:      feeds.NewLoader(client),
	}
}

// Handler returns the routed API with request logging and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.health)

	mux.HandleFunc("POST /wordcloud", s.wordCloud)
	mux.HandleFunc("POST /wordcloud/upload", s.wordCloudUpload)

	mux.HandleFunc("POST /fakenews", s.fakeNews)
	mux.HandleFunc("POST /fakenews/batch", s.fakeNewsBatch)
	mux.HandleFunc("POST /fakenews/upload", s.fakeNewsUpload)

	mux.HandleFunc("POST /sentiment", s.sentimentSummary)
	mux.HandleFunc("POST /sentiment/upload", s.sentimentUpload)

	return cors(logRequest(s.log, mux))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": serviceName})
}
