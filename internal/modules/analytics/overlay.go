package analytics

import "github.com/markcheno/go-talib"

// BuildEquitySMA computes a simple-moving-average overlay of the equity curve
// for chart display. Points are emitted only once the window is full
// (talib's zero-filled warmup prefix is skipped). A window below 2 or a curve
// shorter than the window yields an empty overlay.
func BuildEquitySMA(equity []EquityPoint, window int) []EquityPoint {
	if window < 2 || len(equity) < window {
		return []EquityPoint{}
	}

	values := make([]float64, len(equity))
	for i, p := range equity {
		values[i] = p.Value
	}

	smoothed := talib.Sma(values, window)

	points := make([]EquityPoint, 0, len(equity)-window+1)
	for i := window - 1; i < len(smoothed); i++ {
		points = append(points, EquityPoint{
			Date:  equity[i].Date,
			Value: round2(smoothed[i]),
		})
	}

	return points
}
