// Package analytics implements the time-series analytics engine that turns
// raw NAV records into chart-ready derived series: a normalized equity curve,
// a running drawdown curve, and a year/month matrix of monthly returns.
package analytics

import (
	"math"
	"time"
)

// RawRecord is a single untrusted input row, as decoded by the caller from an
// uploaded tabular file. Recognized fields are "Date" and "Nav"; anything else
// is ignored. Fields may be missing, wrongly typed, or unparsable.
type RawRecord map[string]interface{}

// Record is a validated valuation observation at day precision.
type Record struct {
	Date time.Time
	Nav  float64
}

// EquityPoint is one point on the normalized equity curve. The first point of
// a non-empty curve is 100.00 (when the base NAV is positive).
type EquityPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// DrawdownPoint is the percentage decline from the running equity peak at a
// given date. Always <= 0; exactly 0 at running-peak points.
type DrawdownPoint struct {
	Date     string  `json:"date"`
	Drawdown float64 `json:"drawdown"`
}

// MonthlyReturn is the period-over-period return for one calendar month.
// Ret is nil when the immediately preceding calendar month has no observation,
// which distinguishes "no data" from "zero return".
type MonthlyReturn struct {
	Year  int      `json:"year"`
	Month string   `json:"month"` // "01".."12"
	Ret   *float64 `json:"ret"`
}

// SummaryStats holds scalar performance metrics for a derived series.
// Each field is nil when the series is too short to compute it.
type SummaryStats struct {
	TotalReturn          *float64 `json:"total_return"`
	CAGR                 *float64 `json:"cagr"`
	AnnualizedVolatility *float64 `json:"annualized_volatility"`
	MaxDrawdown          *float64 `json:"max_drawdown"`
	BestMonth            *float64 `json:"best_month"`
	WorstMonth           *float64 `json:"worst_month"`
}

// Report is the aggregate derivation output consumed by the dashboard.
type Report struct {
	Equity         []EquityPoint              `json:"equity"`
	Drawdown       []DrawdownPoint            `json:"drawdown"`
	MonthlyReturns map[string][]MonthlyReturn `json:"monthly_returns"`
	Stats          SummaryStats               `json:"stats"`
	EquitySMA      []EquityPoint              `json:"equity_sma,omitempty"`
}

// round2 rounds to 2 decimal places, half away from zero. Rounding happens
// only at output-series construction; intermediate values keep full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
