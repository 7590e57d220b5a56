package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const daysPerYear = 365.25

// BuildStats computes scalar performance metrics from the derived series.
// Each metric degrades to nil (not an error) when the input is too short to
// support it.
func BuildStats(series []Record, drawdown []DrawdownPoint, matrix map[string][]MonthlyReturn) SummaryStats {
	stats := SummaryStats{}

	if len(series) >= 2 && series[0].Nav > 0 {
		first := series[0]
		last := series[len(series)-1]

		total := round2((last.Nav/first.Nav - 1) * 100)
		stats.TotalReturn = &total

		days := last.Date.Sub(first.Date).Hours() / 24
		if days >= 1 && last.Nav > 0 {
			cagr := round2((math.Pow(last.Nav/first.Nav, daysPerYear/days) - 1) * 100)
			stats.CAGR = &cagr
		}
	}

	if len(drawdown) > 0 {
		maxDD := 0.0
		for _, p := range drawdown {
			if p.Drawdown < maxDD {
				maxDD = p.Drawdown
			}
		}
		stats.MaxDrawdown = &maxDD
	}

	returns := flattenReturns(matrix)
	if len(returns) > 0 {
		best := returns[0]
		worst := returns[0]
		for _, r := range returns[1:] {
			if r > best {
				best = r
			}
			if r < worst {
				worst = r
			}
		}
		stats.BestMonth = &best
		stats.WorstMonth = &worst
	}
	if len(returns) >= 2 {
		// Monthly observations annualize with sqrt(12)
		vol := round2(stat.StdDev(returns, nil) * math.Sqrt(12))
		stats.AnnualizedVolatility = &vol
	}

	return stats
}

// flattenReturns collects all non-nil monthly returns in chronological order.
func flattenReturns(matrix map[string][]MonthlyReturn) []float64 {
	years := make([]string, 0, len(matrix))
	for y := range matrix {
		years = append(years, y)
	}
	sort.Strings(years)

	var returns []float64
	for _, y := range years {
		for _, mr := range matrix[y] {
			if mr.Ret != nil {
				returns = append(returns, *mr.Ret)
			}
		}
	}
	return returns
}
