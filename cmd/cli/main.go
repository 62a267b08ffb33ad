package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"newsdash/internal/articles"
	"newsdash/internal/classifier"
	"newsdash/internal/config"
	"newsdash/internal/crawler"
	"newsdash/internal/feeds"
	"newsdash/internal/ioformats"
	"newsdash/internal/models"
	"newsdash/internal/sentiment"
	"newsdash/internal/wordfreq"
	"newsdash/pkg/logger"
)

var (
	// Global flags
	lexiconPath string
	outputPath  string
	pretty      bool
	verbose     bool

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "newsdash",
	Short: "Word clouds, fake-news checks and sentiment summaries from the command line",
	Long: `newsdash runs the dashboard analyzers over local files, feeds and web pages.

Input files may be CSV (with a tweet, text, content or message column),
NDJSON, or plain text with one post per line. Results are written as NDJSON
unless --pretty is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		if log, err = logger.New(level, true); err != nil {
			return err
		}
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if lexiconPath != "" {
			if cfg.Lexicon, err = config.LoadLexicon(lexiconPath); err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var wordCloudCmd = &cobra.Command{
	Use:   "wordcloud",
	Short: "Rank the most frequent words of a file or feed",
	Example: `  newsdash wordcloud --input tweets.csv --max-words 50
  newsdash wordcloud --feed https://example.com/rss.xml --pretty`,
	RunE: runWordCloud,
}

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Label text, file rows or web articles as fake or real",
	Example: `  newsdash classify "Shocking secret revealed"
  newsdash classify --input posts.ndjson
  newsdash classify --urls links.csv --concurrency 5`,
	RunE: runClassify,
}

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Summarize the sentiment of file rows or a keyword",
	RunE:  runSentiment,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon overriding the built-in word lists")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "render a styled table instead of NDJSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	wordCloudCmd.Flags().StringP("input", "i", "", "input file (csv, ndjson or text)")
	wordCloudCmd.Flags().String("column", "", "text column to read (default: tweet, text, content or message)")
	wordCloudCmd.Flags().String("feed", "", "RSS/Atom feed URL to read instead of a file")
	wordCloudCmd.Flags().IntP("max-words", "n", 0, "maximum words to keep (default from DEFAULT_MAX_WORDS)")
	wordCloudCmd.Flags().String("color-scheme", "viridis", "rendering hint passed through with the result")

	classifyCmd.Flags().StringP("input", "i", "", "classify every row of this file")
	classifyCmd.Flags().String("column", "", "text column to read")
	classifyCmd.Flags().String("urls", "", "file of article URLs (csv with 'url' column, ndjson or one per line)")
	classifyCmd.Flags().Int("concurrency", 10, "worker concurrency for --urls")

	sentimentCmd.Flags().StringP("input", "i", "", "input file (csv, ndjson or text)")
	sentimentCmd.Flags().String("column", "", "text column to read")
	sentimentCmd.Flags().StringP("keyword", "k", "", "summarize the canned sample posts for a keyword")

	rootCmd.AddCommand(wordCloudCmd, classifyCmd, sentimentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newHTTPClient() *crawler.HTTPClient {
	return crawler.NewHTTPClient(cfg.Fetch.Timeout, cfg.Fetch.DialTimeout, cfg.Fetch.SizeCap)
}

func runWordCloud(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	column, _ := cmd.Flags().GetString("column")
	feedURL, _ := cmd.Flags().GetString("feed")
	maxWords, _ := cmd.Flags().GetInt("max-words")
	scheme, _ := cmd.Flags().GetString("color-scheme")

	if maxWords == 0 {
		maxWords = cfg.Limits.DefaultMaxWords
	}
	if err := wordfreq.ValidateMaxWords(maxWords, cfg.Limits.MaxWordsLimit); err != nil {
		return err
	}
	if !cfg.Lexicon.HasColorScheme(scheme) {
		return fmt.Errorf("%w: unknown color scheme %q", models.ErrInvalidConfiguration, scheme)
	}

	cloud := models.WordCloud{MaxWords: maxWords, ColorScheme: strings.ToLower(scheme)}
	var rows []string
	switch {
	case feedURL != "":
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Fetch.Timeout+5*time.Second)
		defer cancel()
		feed, err := feeds.NewLoader(newHTTPClient()).Load(ctx, feedURL)
		if err != nil {
			return err
		}
		rows, cloud.Source = feed.Rows, feedURL
	case input != "":
		tbl, err := ioformats.OrEmpty(ioformats.ReadTexts(input, column))
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		rows, cloud.Column, cloud.Source = tbl.Rows, tbl.Column, input
	default:
		return fmt.Errorf("%w: --input or --feed required", models.ErrInputEmpty)
	}
	log.Debugf("ranking %d rows", len(rows))

	cloud.RowCount = len(rows)
	cloud.Words = wordfreq.New(cfg.Lexicon).Rank(rows, maxWords)

	return withOutput(func(w io.Writer) error {
		if pretty {
			return renderWordCloud(w, cloud)
		}
		return ioformats.WriteNDJSON(w, cloud.Words)
	})
}

type classifyRec struct {
	Input  string                       `json:"input"`
	Result *models.ClassificationResult `json:"result,omitempty"`
	Error  string                       `json:"error,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	column, _ := cmd.Flags().GetString("column")
	urlsPath, _ := cmd.Flags().GetString("urls")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	cl := classifier.New(cfg.Lexicon)
	var recs []classifyRec
	switch {
	case urlsPath != "":
		tbl, err := ioformats.OrEmpty(ioformats.ReadTexts(urlsPath, "url"))
		if err != nil {
			return fmt.Errorf("read urls: %w", err)
		}
		recs = checkURLs(cmd.Context(), articles.NewChecker(newHTTPClient(), cl), tbl.Rows, concurrency)
	case input != "":
		tbl, err := ioformats.OrEmpty(ioformats.ReadTexts(input, column))
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		for _, text := range tbl.Rows {
			res := cl.Classify(text)
			recs = append(recs, classifyRec{Input: text, Result: &res})
		}
	default:
		text := strings.Join(args, " ")
		res := cl.Classify(text)
		recs = append(recs, classifyRec{Input: text, Result: &res})
	}

	return withOutput(func(w io.Writer) error {
		if pretty {
			return renderClassifications(w, recs)
		}
		return ioformats.WriteNDJSON(w, recs)
	})
}

// checkURLs classifies every URL with at most concurrency fetches in flight,
// keeping input order.
func checkURLs(ctx context.Context, checker *articles.Checker, urls []string, concurrency int) []classifyRec {
	if concurrency < 1 {
		concurrency = 1
	}
	recs := make([]classifyRec, len(urls))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Fetch.Timeout+5*time.Second)
			defer cancel()
			rec := classifyRec{Input: u}
			if res, err := checker.Check(ctx, u); err != nil {
				rec.Error = err.Error()
				log.Debugf("%s: %v", u, err)
			} else {
				rec.Result = &res
			}
			recs[i] = rec
			return nil
		})
	}
	_ = g.Wait()
	return recs
}

func runSentiment(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	column, _ := cmd.Flags().GetString("column")
	keyword, _ := cmd.Flags().GetString("keyword")

	an := sentiment.New(cfg.Lexicon)
	var sum models.SentimentSummary
	switch {
	case input != "":
		tbl, err := ioformats.OrEmpty(ioformats.ReadTexts(input, column))
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		sum = an.Summarize(tbl.Rows)
		sum.Column = tbl.Column
	case strings.TrimSpace(keyword) != "":
		sum = an.Summarize(sentiment.KeywordPosts(keyword))
		sum.Keyword = strings.TrimSpace(keyword)
	default:
		return fmt.Errorf("%w: --input or --keyword required", models.ErrInputEmpty)
	}

	return withOutput(func(w io.Writer) error {
		if pretty {
			return renderSentiment(w, sum)
		}
		return ioformats.WriteNDJSON(w, []models.SentimentSummary{sum})
	})
}

func withOutput(write func(io.Writer) error) error {
	if outputPath == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
