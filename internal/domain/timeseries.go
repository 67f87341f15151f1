package domain

import (
	money "github.com/finch/networth/pkg/decimal"
)

// TimeseriesEntry is one point of net worth history or projection.
type TimeseriesEntry struct {
	Date     int64       `json:"date" yaml:"date"`
	NetWorth money.Money `json:"net_worth" yaml:"net_worth"`
}

// TimeseriesResponse is the historical series followed by the projection. Start is the
// timestamp the projection was seeded from.
type TimeseriesResponse struct {
	Start  int64             `json:"start" yaml:"start"`
	Series []TimeseriesEntry `json:"series" yaml:"series"`
}

// PlanResponse pairs the effective plan with its timeseries.
type PlanResponse struct {
	Plan       Plan               `json:"plan" yaml:"plan"`
	Timeseries TimeseriesResponse `json:"timeseries" yaml:"timeseries"`
}
