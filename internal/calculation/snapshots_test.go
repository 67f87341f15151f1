package calculation

import (
	"testing"
	"time"

	"github.com/finch/networth/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNeedsNewSnapshot(t *testing.T) {
	now := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	fresh := []domain.Snapshot{{SnapshotTime: now.Add(-2 * time.Hour).Unix()}}
	stale := []domain.Snapshot{{SnapshotTime: now.Add(-25 * time.Hour).Unix()}}

	assert.True(t, NeedsNewSnapshot(nil, now, DefaultSnapshotMaxAge))
	assert.False(t, NeedsNewSnapshot(fresh, now, DefaultSnapshotMaxAge))
	assert.True(t, NeedsNewSnapshot(stale, now, DefaultSnapshotMaxAge))
	assert.True(t, NeedsNewSnapshot(stale, now, 0), "zero max age uses the default")
	assert.False(t, NeedsNewSnapshot(stale, now, 48*time.Hour))
}
