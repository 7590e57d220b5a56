package analytics

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	return NewService(log)
}

func TestDerive_SpecScenario(t *testing.T) {
	service := newTestService()

	raw := []RawRecord{
		{"Date": "2023-01-31", "Nav": 100.0},
		{"Date": "2023-02-28", "Nav": 110.0},
		{"Date": "2023-03-31", "Nav": 99.0},
	}

	report := service.Derive(raw, DeriveOptions{})

	require.Len(t, report.Equity, 3)
	assert.Equal(t, []float64{100.0, 110.0, 99.0},
		[]float64{report.Equity[0].Value, report.Equity[1].Value, report.Equity[2].Value})

	require.Len(t, report.Drawdown, 3)
	assert.Equal(t, []float64{0.0, 0.0, -10.0},
		[]float64{report.Drawdown[0].Drawdown, report.Drawdown[1].Drawdown, report.Drawdown[2].Drawdown})

	months := report.MonthlyReturns["2023"]
	require.Len(t, months, 3)
	assert.Nil(t, months[0].Ret)
	require.NotNil(t, months[1].Ret)
	assert.Equal(t, 10.0, *months[1].Ret)
	require.NotNil(t, months[2].Ret)
	assert.Equal(t, -10.0, *months[2].Ret)

	assert.Empty(t, report.EquitySMA, "overlay not requested")
}

func TestDerive_Idempotent(t *testing.T) {
	service := newTestService()

	raw := []RawRecord{
		{"Date": "2023-03-31", "Nav": 99.0},
		{"Date": "2023-01-31", "Nav": 100.0},
		{"Date": "garbage", "Nav": 1.0},
		{"Date": "2023-02-28", "Nav": "110"},
	}

	first := service.Derive(raw, DeriveOptions{SMAWindow: 2})
	second := service.Derive(raw, DeriveOptions{SMAWindow: 2})

	assert.Equal(t, first, second, "identical input must yield identical output")
}

func TestDerive_AllInvalidInput(t *testing.T) {
	service := newTestService()

	raw := []RawRecord{
		{"Date": "2023-01-31", "Nav": "abc"},
		{"Date": "bogus", "Nav": 100.0},
	}

	report := service.Derive(raw, DeriveOptions{})

	assert.Empty(t, report.Equity)
	assert.Empty(t, report.Drawdown)
	assert.Empty(t, report.MonthlyReturns)
	assert.Nil(t, report.Stats.TotalReturn)
	assert.Nil(t, report.Stats.MaxDrawdown)
}

func TestDerive_EmptyInput(t *testing.T) {
	service := newTestService()

	report := service.Derive(nil, DeriveOptions{})

	assert.Empty(t, report.Equity)
	assert.Empty(t, report.Drawdown)
	assert.Empty(t, report.MonthlyReturns)
}

func TestDerive_WithSMAOverlay(t *testing.T) {
	service := newTestService()

	raw := []RawRecord{
		{"Date": "2023-01-02", "Nav": 100.0},
		{"Date": "2023-01-03", "Nav": 102.0},
		{"Date": "2023-01-04", "Nav": 104.0},
	}

	report := service.Derive(raw, DeriveOptions{SMAWindow: 2})

	require.Len(t, report.EquitySMA, 2)
	assert.Equal(t, 101.0, report.EquitySMA[0].Value)
	assert.Equal(t, 103.0, report.EquitySMA[1].Value)
}

func TestDerive_UnrecognizedFieldsIgnored(t *testing.T) {
	service := newTestService()

	raw := []RawRecord{
		{"Date": "2023-01-31", "Nav": 100.0, "Fund": "Alpha", "Currency": "EUR"},
		{"Date": "2023-02-28", "Nav": 110.0, "Comment": "rebalanced"},
	}

	report := service.Derive(raw, DeriveOptions{})
	assert.Len(t, report.Equity, 2)
}
