package service

import (
	"context"

	"github.com/finch/networth/internal/calculation"
	"github.com/finch/networth/internal/domain"
)

// GetTimeseries returns the snapshot history followed by the projection.
func (s *Service) GetTimeseries(ctx context.Context) (domain.TimeseriesResponse, error) {
	user, err := s.load(ctx)
	if err != nil {
		return domain.TimeseriesResponse{}, err
	}
	if err := s.refreshSnapshots(ctx, user); err != nil {
		return domain.TimeseriesResponse{}, err
	}
	return s.engine.BuildTimeseries(user, s.days, calculation.Now()), nil
}

// refreshSnapshots records a new snapshot when a source is configured and the last one
// is stale. A failing source is logged and the stored history is used as is.
func (s *Service) refreshSnapshots(ctx context.Context, user *domain.User) error {
	if s.snapshots == nil {
		return nil
	}
	now := calculation.Now()
	if !calculation.NeedsNewSnapshot(user.Snapshots, now, s.maxAge) {
		return nil
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		s.logger.Warnf("snapshot refresh failed, using stored history: %v", err)
		return nil
	}
	if snap.SnapshotTime == 0 {
		snap.SnapshotTime = now.Unix()
	}
	user.AppendSnapshot(snap)
	s.logger.Debugf("recorded snapshot at %d with net worth %s", snap.SnapshotTime, snap.NetWorth)
	return s.save(ctx, user)
}
