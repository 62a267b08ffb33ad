package ioformats

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdash/internal/models"
)

func TestReadCSVSniffsTextColumn(t *testing.T) {
	data := "\ufeffid,Content,tweet\n1,first body,hello world\n2,second body,\n3,,bye\n"
	tbl, err := ReadTextsFrom(strings.NewReader(data), "posts.csv", "")
	require.NoError(t, err)
	assert.Equal(t, "tweet", tbl.Column)
	assert.Equal(t, []string{"hello world", "bye"}, tbl.Rows)
}

func TestReadCSVExplicitColumn(t *testing.T) {
	data := "id,body\n1,\"quoted, text\"\n"
	tbl, err := ReadTextsFrom(strings.NewReader(data), "posts.csv", "body")
	require.NoError(t, err)
	assert.Equal(t, []string{"quoted, text"}, tbl.Rows)
}

func TestReadCSVNoTextColumn(t *testing.T) {
	_, err := ReadTextsFrom(strings.NewReader("id,score\n1,2\n"), "posts.csv", "")
	require.ErrorIs(t, err, models.ErrNoTextColumn)
	assert.Contains(t, err.Error(), "[id score]")
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadTextsFrom(strings.NewReader(""), "posts.csv", "")
	require.ErrorIs(t, err, models.ErrInputEmpty)
}

func TestReadNDJSON(t *testing.T) {
	data := `{"message": "first"}
"second"

third line
{"message": 42}
`
	tbl, err := ReadTextsFrom(strings.NewReader(data), "posts.ndjson", "")
	require.NoError(t, err)
	assert.Equal(t, "message", tbl.Column)
	assert.Equal(t, []string{"first", "second", "third line", "42"}, tbl.Rows)
}

func TestReadNDJSONMalformedRow(t *testing.T) {
	data := `{"text": "ok"}
{"text": {"nested": true}}
`
	_, err := ReadTextsFrom(strings.NewReader(data), "posts.jsonl", "")
	require.ErrorIs(t, err, models.ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadTextsUnknownExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "upload-1")
	require.NoError(t, os.WriteFile(csvPath, []byte("id,text\n1,alpha\n2,beta\n"), 0o644))
	tbl, err := ReadTexts(csvPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, tbl.Rows)

	plainPath := filepath.Join(dir, "upload-2")
	require.NoError(t, os.WriteFile(plainPath, []byte("just a line\nanother line\n"), 0o644))
	tbl, err = ReadTexts(plainPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"just a line", "another line"}, tbl.Rows)
}

func TestReadPlainTextKeepsQuotedHeadlines(t *testing.T) {
	data := "\"Shocking\" claim debunked by officials\n{not json either\nsecond headline\n"
	tbl, err := ReadTextsFrom(strings.NewReader(data), "headlines.txt", "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		`"Shocking" claim debunked by officials`,
		"{not json either",
		"second headline",
	}, tbl.Rows)
}

func TestReadPlainTextSingleWordFirstLine(t *testing.T) {
	data := "Text\nfirst, with comma\nsecond\n"
	tbl, err := ReadTextsFrom(strings.NewReader(data), "notes.txt", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Text", "first, with comma", "second"}, tbl.Rows)

	tbl, err = ReadTextsFrom(strings.NewReader(data), "notes.txt", "text")
	require.NoError(t, err)
	assert.Equal(t, "Text", tbl.Column)
	assert.Equal(t, []string{"first", "second"}, tbl.Rows)
}

func TestOrEmpty(t *testing.T) {
	tbl, err := OrEmpty(ReadTextsFrom(strings.NewReader(""), "posts.csv", ""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)

	tbl, err = OrEmpty(ReadTextsFrom(strings.NewReader("\n  \n"), "posts.txt", ""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)

	_, err = OrEmpty(ReadTextsFrom(strings.NewReader("id,score\n1,2\n"), "posts.csv", ""))
	assert.ErrorIs(t, err, models.ErrNoTextColumn)
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteNDJSON(&buf, []models.RankedWord{{Word: "cat", Frequency: 2, Weight: 1}})
	require.NoError(t, err)
	assert.Equal(t, "{\"word\":\"cat\",\"frequency\":2,\"weight\":1}\n", buf.String())
}
