package ioformats

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"newsdash/internal/models"
)

// TextColumns are the column names searched, in order, when no column is
// named explicitly.
var TextColumns = []string{"tweet", "text", "content", "message"}

// Table is one selected text column of an input file.
type Table struct {
	Column string
	Rows   []string
}

// ReadTexts reads the text column of a CSV (header row required) or NDJSON
// file. Any other file is read as CSV when it has a multi-column header (or
// column is named), and otherwise as one post per line.
func ReadTexts(path, column string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return ReadTextsFrom(f, path, column)
}

// ReadTextsFrom is ReadTexts over an already opened stream; name is only used
// for its extension.
func ReadTextsFrom(r io.Reader, name, column string) (Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return readCSV(r, column)
	case ".ndjson", ".jsonl":
		return readNDJSON(r, column, false)
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return Table{}, err
		}
		if tabular(data, column) {
			if t, err := readCSV(bytes.NewReader(data), column); err == nil && len(t.Rows) > 0 {
				return t, nil
			}
		}
		return readNDJSON(bytes.NewReader(data), column, true)
	}
}

// OrEmpty turns ErrInputEmpty into an empty table so callers can report an
// empty result instead of failing.
func OrEmpty(t Table, err error) (Table, error) {
	if errors.Is(err, models.ErrInputEmpty) {
		return Table{}, nil
	}
	return t, err
}

// tabular reports whether data should be read as CSV: a column was named, or
// the first record has more than one field.
func tabular(data []byte, column string) bool {
	if strings.TrimSpace(column) != "" {
		return true
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	header, err := cr.Read()
	return err == nil && len(header) > 1
}

func readCSV(r io.Reader, column string) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", models.ErrMalformedRow, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("%w: empty csv", models.ErrInputEmpty)
	}

	header := rows[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	col := findColumn(header, column)
	if col == -1 {
		return Table{}, fmt.Errorf("%w: want one of %v, available columns %v",
			models.ErrNoTextColumn, wanted(column), trimAll(header))
	}
	t := Table{Column: strings.TrimSpace(header[col])}
	for _, row := range rows[1:] {
		if col < len(row) {
			if s := strings.TrimSpace(row[col]); s != "" {
				t.Rows = append(t.Rows, s)
			}
		}
	}
	return t, nil
}

// readNDJSON reads one row per line. In plain mode a line that is not valid
// JSON is kept as raw text.
func readNDJSON(r io.Reader, column string, plain bool) (Table, error) {
	var t Table
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		text, key, err := ndjsonText(raw, column, plain)
		if err != nil {
			return Table{}, fmt.Errorf("line %d: %w", line, err)
		}
		if t.Column == "" {
			t.Column = key
		}
		if text = strings.TrimSpace(text); text != "" {
			t.Rows = append(t.Rows, text)
		}
	}
	if err := sc.Err(); err != nil {
		return Table{}, err
	}
	if len(t.Rows) == 0 {
		return Table{}, fmt.Errorf("%w: no text rows found in ndjson", models.ErrInputEmpty)
	}
	return t, nil
}

// ndjsonText accepts {"text": "..."} style objects, JSON string literals, or
// a bare line of text.
func ndjsonText(raw, column string, plain bool) (string, string, error) {
	switch raw[0] {
	case '{':
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err != nil {
			if plain {
				return raw, "", nil
			}
			return "", "", fmt.Errorf("%w: %v", models.ErrMalformedRow, err)
		}
		for _, key := range wanted(column) {
			v, ok := obj[key]
			if !ok {
				continue
			}
			s, err := coerce(v)
			return s, key, err
		}
		return "", "", fmt.Errorf("%w: want one of %v", models.ErrNoTextColumn, wanted(column))
	case '"':
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			if plain {
				return raw, "", nil
			}
			return "", "", fmt.Errorf("%w: %v", models.ErrMalformedRow, err)
		}
		return s, "", nil
	default:
		return raw, "", nil
	}
}

func coerce(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64, bool:
		return fmt.Sprint(x), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("%w: value of type %T is not text", models.ErrMalformedRow, v)
	}
}

func findColumn(header []string, column string) int {
	for _, want := range wanted(column) {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i
			}
		}
	}
	return -1
}

func wanted(column string) []string {
	if c := strings.TrimSpace(column); c != "" {
		return []string{c}
	}
	return TextColumns
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

// WriteNDJSON writes any JSON-marshalable items as NDJSON to w.
func WriteNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}
