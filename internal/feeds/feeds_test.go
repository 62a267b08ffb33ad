package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdash/internal/crawler"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Daily Wire Test</title>
<item><title>Markets rally</title><description>&lt;p&gt;Stocks &lt;b&gt;rose&lt;/b&gt; today&lt;/p&gt;</description></item>
<item><title></title><description></description></item>
<item><title>Storm warning</title></item>
</channel></rss>`

func TestParse(t *testing.T) {
	feed, err := Parse(strings.NewReader(sampleRSS))
	require.NoError(t, err)
	assert.Equal(t, "Daily Wire Test", feed.Title)
	assert.Equal(t, []string{"Markets rally Stocks rose today", "Storm warning"}, feed.Rows)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(strings.NewReader("definitely not a feed"))
	require.ErrorIs(t, err, ErrInvalidFeed)
}

func TestLoaderLoad(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer ts.Close()

	l := NewLoader(crawler.NewHTTPClient(5*time.Second, 2*time.Second, 1<<20))
	feed, err := l.Load(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Len(t, feed.Rows, 2)
}
