package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/pkg/dateutil"
)

// ChartFormatter renders the series as a PNG line chart: recorded history in a
// solid line and the projection dashed.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "png" }

func (c ChartFormatter) Format(ts *domain.TimeseriesResponse) ([]byte, error) {
	if ts == nil || len(ts.Series) < 2 {
		n := 0
		if ts != nil {
			n = len(ts.Series)
		}
		return nil, fmt.Errorf("need at least 2 data points, got %d", n)
	}

	var histX, projX []time.Time
	var histY, projY []float64
	for _, e := range ts.Series {
		v := e.NetWorth.InexactFloat64()
		if e.Date > ts.Start {
			projX = append(projX, dateutil.FromEpoch(e.Date))
			projY = append(projY, v)
			continue
		}
		histX = append(histX, dateutil.FromEpoch(e.Date))
		histY = append(histY, v)
	}
	// The projection line starts at the last recorded point so the two lines join.
	if len(histX) > 0 && len(projX) > 0 {
		projX = append([]time.Time{histX[len(histX)-1]}, projX...)
		projY = append([]float64{histY[len(histY)-1]}, projY...)
	}

	var series []chart.Series
	if len(histX) > 1 {
		series = append(series, chart.TimeSeries{
			Name: "Recorded",
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("2563eb"),
				StrokeWidth: 2.5,
			},
			XValues: histX,
			YValues: histY,
		})
	}
	if len(projX) > 1 {
		series = append(series, chart.TimeSeries{
			Name: "Projected",
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex("16a34a"),
				StrokeWidth:     2,
				StrokeDashArray: []float64{5.0, 3.0},
			},
			XValues: projX,
			YValues: projY,
		})
	}

	graph := chart.Chart{
		Title:  "Net Worth",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
