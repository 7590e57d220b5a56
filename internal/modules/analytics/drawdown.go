package analytics

import "math"

// BuildDrawdown computes the running drawdown curve from an equity curve:
// one output point per input point, in the same order. The running peak
// starts at -Inf and only updates on a strict increase, so a value equal to
// the current peak yields a drawdown of 0 without being a new peak event.
// The peak is never rounded; only the emitted drawdown is.
func BuildDrawdown(equity []EquityPoint) []DrawdownPoint {
	points := make([]DrawdownPoint, 0, len(equity))

	peak := math.Inf(-1)
	for _, p := range equity {
		if p.Value > peak {
			peak = p.Value
		}
		points = append(points, DrawdownPoint{
			Date:     p.Date,
			Drawdown: round2((p.Value - peak) / peak * 100),
		})
	}

	return points
}
