package analytics

import "github.com/rs/zerolog"

// DeriveOptions controls optional derived series.
type DeriveOptions struct {
	// SMAWindow enables the equity moving-average overlay when >= 2.
	SMAWindow int
}

// Service orchestrates the derivation pipeline. All operations are pure
// functions over immutable inputs, so a Service is safe for concurrent use
// and re-derivation on every new upload needs no coordination.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new analytics service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "analytics").Logger(),
	}
}

// Derive runs the full pipeline: normalize the raw records, then build the
// equity curve, drawdown curve, monthly-return matrix, summary statistics,
// and (when requested) the SMA overlay. Degenerate input yields empty series,
// never an error.
func (s *Service) Derive(raw []RawRecord, opts DeriveOptions) Report {
	series := Normalize(raw)
	equity := BuildEquity(series)

	report := Report{
		Equity:         equity,
		Drawdown:       BuildDrawdown(equity),
		MonthlyReturns: BuildMonthlyMatrix(series),
	}
	report.Stats = BuildStats(series, report.Drawdown, report.MonthlyReturns)

	if opts.SMAWindow >= 2 {
		report.EquitySMA = BuildEquitySMA(equity, opts.SMAWindow)
	}

	s.log.Debug().
		Int("records_received", len(raw)).
		Int("records_valid", len(series)).
		Int("sma_window", opts.SMAWindow).
		Msg("Derived analytics report")

	return report
}
