package analytics

// BuildEquity rebases the series so the first observation equals 100,
// enabling percentage-comparable growth tracking. The base is the first
// record's NAV; no special-casing of a zero or negative base - a degenerate
// base propagates as non-finite or nonsensical values downstream rather than
// raising an error. Empty input yields an empty curve.
func BuildEquity(series []Record) []EquityPoint {
	if len(series) == 0 {
		return []EquityPoint{}
	}

	base := series[0].Nav

	points := make([]EquityPoint, 0, len(series))
	for _, r := range series {
		points = append(points, EquityPoint{
			Date:  r.Date.Format("2006-01-02"),
			Value: round2(r.Nav / base * 100),
		})
	}

	return points
}
