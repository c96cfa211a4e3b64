// README: Web search backends (Tavily, SerpAPI) and the loose result record they return.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrNotObject = errors.New("search result is not a JSON object")

// Query is one web search.
type Query struct {
	Text          string
	MaxResults    int
	Depth         string // "basic" or "advanced"; ignored by backends without depth control
	IncludeImages bool
}

// Searcher runs a web search and returns the vendor's raw result objects.
// Raw messages are returned undecoded so one malformed entry cannot fail the batch.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]json.RawMessage, error)
}

// Result is one decoded search hit. Vendors disagree on field names and
// types, so reads go through the accessors below.
type Result map[string]any

// Decode parses a raw hit. Anything other than a JSON object is ErrNotObject.
func Decode(raw json.RawMessage) (Result, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Result(m), nil
}

// String returns the first non-empty string found under keys, or def.
func (r Result) String(def string, keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return def
}

// Float reads key as a number or numeric string, falling back to def.
func (r Result) Float(key string, def float64) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}
