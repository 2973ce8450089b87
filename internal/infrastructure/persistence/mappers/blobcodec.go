package mappers

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/contracthub-inc/contracthub/internal/shared/biztime"
)

// The JSON list columns may hold rows written by older releases: numbers as
// strings, booleans as "1"/"yes", lists stored as index-keyed objects, or the
// whole list double-encoded as a JSON string. Everything below parses what it
// can and falls back to a zero value; nothing here returns an error.

type record map[string]any

// decodeRecords turns a stored list blob into its records. Anything that is
// not a list of objects yields an empty slice.
func decodeRecords(raw []byte) []record {
	if len(raw) == 0 {
		return []record{}
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return []record{}
	}

	// double-encoded: "[{...}]"
	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return []record{}
		}
	}

	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case map[string]any:
		items = keyedItems(t)
	default:
		return []record{}
	}

	out := make([]record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, record(m))
		}
	}
	return out
}

// keyedItems orders an index-keyed object ({"0":{},"2":{}}) by numeric key.
// Non-numeric keys sort after numeric ones, alphabetically.
func keyedItems(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	items := make([]any, 0, len(keys))
	for _, k := range keys {
		items = append(items, m[k])
	}
	return items
}

func (r record) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func (r record) uint(key string) uint {
	return toUint(r[key])
}

func (r record) int(key string, def int) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// bool accepts true, "true", "1", "yes" and any non-zero number.
func (r record) bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true
		}
	}
	return false
}

// uints reads a list of identifiers, dropping anything that is not a
// positive integer. A single scalar is treated as a one-element list.
func (r record) uints(key string) []uint {
	var raw []any
	switch v := r[key].(type) {
	case []any:
		raw = v
	case map[string]any:
		raw = keyedItems(v)
	case nil:
		return []uint{}
	default:
		raw = []any{v}
	}

	out := make([]uint, 0, len(raw))
	for _, item := range raw {
		if n := toUint(item); n != 0 {
			out = append(out, n)
		}
	}
	return out
}

// time reads the first of keys that holds a parsable timestamp.
func (r record) time(keys ...string) time.Time {
	for _, key := range keys {
		if t, ok := parseTime(r[key]); ok {
			return t
		}
	}
	return time.Time{}
}

func toUint(v any) uint {
	switch t := v.(type) {
	case float64:
		if t > 0 && t <= math.MaxUint32 && t == math.Trunc(t) {
			return uint(t)
		}
	case string:
		if n, err := strconv.ParseUint(strings.TrimSpace(t), 10, 64); err == nil {
			return uint(n)
		}
	}
	return 0
}

// legacyLayouts are wall-clock layouts written in the business timezone.
var legacyLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case float64:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.Unix(int64(t), 0).UTC(), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return ts.UTC(), true
		}
		for _, layout := range legacyLayouts {
			if ts, err := time.ParseInLocation(layout, s, biztime.Location()); err == nil {
				return ts.UTC(), true
			}
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			return time.Unix(n, 0).UTC(), true
		}
	}
	return time.Time{}, false
}

func encodeRecords(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list column: %w", err)
	}
	return b, nil
}
