// Package normalize maps loosely-structured webhook payloads from the CRM
// platform into the persisted record shapes. Extraction is best-effort: the
// platform renames fields between workflow versions, so every logical
// attribute carries an ordered list of candidate source keys, and absent
// values fall back to defaults instead of rejecting the event.
package normalize

import (
	"strconv"
	"strings"
	"time"
)

// pickString returns the first candidate key present in payload with a
// non-empty string value.
func pickString(payload map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := payload[k]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// pickFloat accepts JSON numbers and numeric strings.
func pickFloat(payload map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, ok := payload[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func pickInt(payload map[string]any, keys ...string) int {
	return int(pickFloat(payload, keys...))
}

// pickStrings extracts a string list, tolerating mixed-type arrays.
func pickStrings(payload map[string]any, keys ...string) []string {
	for _, k := range keys {
		raw, ok := payload[k].([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// subObject returns a nested JSON object, or nil when absent.
func subObject(payload map[string]any, key string) map[string]any {
	m, _ := payload[key].(map[string]any)
	return m
}

// dateLayouts are tried in order when coercing date-like strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// pickTime coerces the first present candidate into a time. The zero time
// is returned when nothing parses; callers supply their own default.
func pickTime(payload map[string]any, keys ...string) time.Time {
	for _, k := range keys {
		s, ok := payload[k].(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		s = strings.TrimSpace(s)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
