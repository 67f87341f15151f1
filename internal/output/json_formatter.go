package output

import (
	"encoding/json"

	"github.com/finch/networth/internal/domain"
)

// JSONFormatter serializes the timeseries response as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(ts *domain.TimeseriesResponse) ([]byte, error) {
	return json.MarshalIndent(ts, "", "  ")
}
