package calculation

import (
	"github.com/finch/networth/internal/domain"
)

// AssembleTimeseries maps the snapshots to entries in their stored order and appends the
// projected entries. No deduplication or gap filling happens between the two ranges.
func AssembleTimeseries(snapshots []domain.Snapshot, projected []domain.TimeseriesEntry) []domain.TimeseriesEntry {
	series := make([]domain.TimeseriesEntry, 0, len(snapshots)+len(projected))
	for _, s := range snapshots {
		series = append(series, domain.TimeseriesEntry{Date: s.SnapshotTime, NetWorth: s.NetWorth})
	}
	return append(series, projected...)
}
