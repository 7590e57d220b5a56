package analytics

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the string encodings accepted for the "Date" field.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Normalize validates and sorts raw records into a clean chronological series.
// A record is kept iff its "Date" field parses to a real calendar date and its
// "Nav" field coerces to a finite number. Invalid records are silently
// dropped - filtering, not an error. The sort is stable, so records sharing a
// date keep their original relative order. Empty or all-invalid input yields
// an empty series.
func Normalize(raw []RawRecord) []Record {
	records := make([]Record, 0, len(raw))

	for _, r := range raw {
		date, ok := parseDate(r["Date"])
		if !ok {
			continue
		}
		nav, ok := coerceNumber(r["Nav"])
		if !ok || math.IsNaN(nav) || math.IsInf(nav, 0) {
			continue
		}
		records = append(records, Record{Date: date, Nav: nav})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records
}

// parseDate extracts a calendar date (day precision, UTC) from an arbitrary
// decoded value.
func parseDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return truncateToDay(d), true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return truncateToDay(t), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// coerceNumber attempts numeric coercion of an arbitrary decoded value.
func coerceNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
