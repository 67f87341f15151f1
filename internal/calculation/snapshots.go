package calculation

import (
	"time"

	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/pkg/dateutil"
)

// DefaultSnapshotMaxAge is how old the last snapshot may get before a refresh is due.
const DefaultSnapshotMaxAge = 24 * time.Hour

// NeedsNewSnapshot reports whether the newest snapshot is older than maxAge at now.
// An empty history always needs one.
func NeedsNewSnapshot(snapshots []domain.Snapshot, now time.Time, maxAge time.Duration) bool {
	if len(snapshots) == 0 {
		return true
	}
	if maxAge <= 0 {
		maxAge = DefaultSnapshotMaxAge
	}
	return dateutil.IsOlderThan(snapshots[len(snapshots)-1].SnapshotTime, now, maxAge)
}
