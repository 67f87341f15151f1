package output

import (
	"bytes"
	"fmt"

	"github.com/finch/networth/internal/domain"
)

// consoleSampleEvery is the spacing, in entries, of the rows printed to the console.
const consoleSampleEvery = 30

// ConsoleFormatter prints a summary followed by a monthly sample of the series.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(ts *domain.TimeseriesResponse) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "NET WORTH PROJECTION")
	fmt.Fprintln(&buf, "================================")
	if ts == nil || len(ts.Series) == 0 {
		fmt.Fprintln(&buf, "No data.")
		return buf.Bytes(), nil
	}

	s := Summarize(ts)
	fmt.Fprintf(&buf, "Projection start: %s (%d history points, %d projected days)\n", FormatDate(ts.Start), s.HistoryPoints, s.ProjectedDays)
	fmt.Fprintf(&buf, "Starting net worth: %s\n", FormatCurrency(s.StartNetWorth))
	fmt.Fprintf(&buf, "Final net worth:    %s on %s\n", FormatCurrency(s.FinalNetWorth), FormatDate(s.LastDate))
	fmt.Fprintf(&buf, "Change:             %s (%s)\n", FormatCurrency(s.Change), FormatPercentage(s.PercentChange))
	fmt.Fprintf(&buf, "Low / High:         %s on %s / %s on %s\n", FormatCurrency(s.Low), FormatDate(s.LowDate), FormatCurrency(s.High), FormatDate(s.HighDate))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-12s %16s\n", "Date", "Net Worth")
	for i, e := range ts.Series {
		if i%consoleSampleEvery != 0 && i != len(ts.Series)-1 {
			continue
		}
		marker := ""
		if e.Date > ts.Start {
			marker = " *"
		}
		fmt.Fprintf(&buf, "%-12s %16s%s\n", FormatDate(e.Date), FormatCurrency(e.NetWorth.Decimal), marker)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "* projected")
	return buf.Bytes(), nil
}
