package analytics

import (
	"fmt"
	"sort"
	"strconv"
)

// monthBuckets maps "YYYY-MM" keys to the canonical end-of-month NAV for that
// month. Lookups are exact-key only: a missing calendar month stays missing,
// it is never substituted by the nearest prior key present in the data.
type monthBuckets struct {
	values map[string]float64
}

func newMonthBuckets() *monthBuckets {
	return &monthBuckets{values: make(map[string]float64)}
}

// Put stores a value for a month key. Later writes win, so feeding records in
// chronological order leaves each bucket holding its last observation.
func (b *monthBuckets) Put(key string, value float64) {
	b.values[key] = value
}

// Get returns the value for an exact month key.
func (b *monthBuckets) Get(key string) (float64, bool) {
	v, ok := b.values[key]
	return v, ok
}

// SortedKeys returns all month keys in lexicographic order, which is
// chronological order for zero-padded "YYYY-MM" keys.
func (b *monthBuckets) SortedKeys() []string {
	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildMonthlyMatrix computes period-over-period monthly returns, grouped by
// year (string key) with months ascending within each year. A month's return
// compares its bucketed value against the immediately preceding calendar
// month's bucket; when that exact bucket is absent or non-positive the return
// is nil, so a return never silently spans a data gap as if it were one month.
func BuildMonthlyMatrix(series []Record) map[string][]MonthlyReturn {
	matrix := make(map[string][]MonthlyReturn)
	if len(series) == 0 {
		return matrix
	}

	buckets := newMonthBuckets()
	for _, r := range series {
		buckets.Put(r.Date.Format("2006-01"), r.Nav)
	}

	for _, key := range buckets.SortedKeys() {
		current, _ := buckets.Get(key)

		var ret *float64
		if prev, ok := buckets.Get(previousMonthKey(key)); ok && prev > 0 {
			v := round2((current/prev - 1) * 100)
			ret = &v
		}

		yearKey := key[:4]
		year, _ := strconv.Atoi(yearKey)
		matrix[yearKey] = append(matrix[yearKey], MonthlyReturn{
			Year:  year,
			Month: key[5:],
			Ret:   ret,
		})
	}

	return matrix
}

// previousMonthKey returns the exact calendar-adjacent month key: January
// rolls back to December of the prior year.
func previousMonthKey(key string) string {
	year, _ := strconv.Atoi(key[:4])
	month, _ := strconv.Atoi(key[5:])

	if month == 1 {
		return fmt.Sprintf("%04d-12", year-1)
	}
	return fmt.Sprintf("%04d-%02d", year, month-1)
}
