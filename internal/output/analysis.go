package output

import (
	"github.com/shopspring/decimal"

	"github.com/finch/networth/internal/domain"
)

// Summary condenses a timeseries into the figures shown at the top of reports.
type Summary struct {
	FirstDate     int64
	LastDate      int64
	StartNetWorth decimal.Decimal // net worth at the projection start
	FinalNetWorth decimal.Decimal
	Change        decimal.Decimal
	PercentChange decimal.Decimal
	Low           decimal.Decimal
	LowDate       int64
	High          decimal.Decimal
	HighDate      int64
	HistoryPoints int
	ProjectedDays int
}

// Summarize computes the report summary. The projection start is the entry dated
// ts.Start, or the first entry when there is none.
func Summarize(ts *domain.TimeseriesResponse) Summary {
	if ts == nil || len(ts.Series) == 0 {
		return Summary{}
	}
	first, last := ts.Series[0], ts.Series[len(ts.Series)-1]
	s := Summary{
		FirstDate:     first.Date,
		LastDate:      last.Date,
		StartNetWorth: first.NetWorth.Decimal,
		FinalNetWorth: last.NetWorth.Decimal,
		Low:           first.NetWorth.Decimal,
		LowDate:       first.Date,
		High:          first.NetWorth.Decimal,
		HighDate:      first.Date,
	}
	for _, e := range ts.Series {
		v := e.NetWorth.Decimal
		if e.Date > ts.Start {
			s.ProjectedDays++
		} else {
			s.HistoryPoints++
			if e.Date == ts.Start {
				s.StartNetWorth = v
			}
		}
		if v.LessThan(s.Low) {
			s.Low, s.LowDate = v, e.Date
		}
		if v.GreaterThan(s.High) {
			s.High, s.HighDate = v, e.Date
		}
	}
	s.Change = s.FinalNetWorth.Sub(s.StartNetWorth)
	s.PercentChange = decimal.Zero
	if !s.StartNetWorth.IsZero() {
		s.PercentChange = s.Change.Div(s.StartNetWorth.Abs()).Mul(decimal.NewFromInt(100))
	}
	return s
}
