package extraction

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const ldJSONSelector = `script[type="application/ld+json"]`

var errTrailingData = errors.New("trailing data after JSON value")

// Record is one structured-data object found on a page
type Record map[string]any

// Types returns the declared @type values of the record
func (r Record) Types() []string {
	switch v := r["@type"].(type) {
	case string:
		return []string{v}
	case []any:
		types := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				types = append(types, s)
			}
		}
		return types
	}
	return nil
}

// HasType reports whether the record declares typ
func (r Record) HasType(typ string) bool {
	for _, t := range r.Types() {
		if t == typ {
			return true
		}
	}
	return false
}

// String returns a non-empty string field, or false
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Records collects the structured-data records of every ld+json block in document order.
// Blocks that are not valid JSON are skipped.
func Records(doc *goquery.Document) []Record {
	var records []Record
	doc.Find(ldJSONSelector).Each(func(_ int, s *goquery.Selection) {
		parsed, err := decodeBlock(s.Text())
		if err != nil {
			return
		}
		records = append(records, flatten(parsed)...)
	})
	return records
}

func decodeBlock(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// trailing data makes the block invalid
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}

// flatten turns a decoded block into records. A block may hold one object,
// an array of objects, or an object carrying an @graph array.
func flatten(v any) []Record {
	var out []Record
	switch t := v.(type) {
	case map[string]any:
		out = append(out, Record(t))
		if graph, ok := t["@graph"].([]any); ok {
			for _, item := range graph {
				if obj, ok := item.(map[string]any); ok {
					out = append(out, Record(obj))
				}
			}
		}
	case []any:
		for _, item := range t {
			if obj, ok := item.(map[string]any); ok {
				out = append(out, Record(obj))
			}
		}
	}
	return out
}
