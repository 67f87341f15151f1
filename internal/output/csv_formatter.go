package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/finch/networth/internal/domain"
)

// CSVFormatter exports one row per timeseries entry.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(ts *domain.TimeseriesResponse) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Date", "Timestamp", "NetWorth", "Projected"}); err != nil {
		return nil, err
	}
	if ts != nil {
		for _, e := range ts.Series {
			row := []string{
				FormatDate(e.Date),
				strconv.FormatInt(e.Date, 10),
				e.NetWorth.StringFixed(2),
				strconv.FormatBool(e.Date > ts.Start),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
