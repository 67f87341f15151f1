// Package service implements the plan, recurring and timeseries operations on top of a
// persisted user profile.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finch/networth/internal/apperr"
	"github.com/finch/networth/internal/calculation"
	"github.com/finch/networth/internal/domain"
)

// UserStore loads and saves the user profile.
type UserStore interface {
	Load(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}

// SnapshotSource produces a fresh net worth measurement, e.g. from an account aggregator.
// The running totals it reports are for the period since the previous snapshot.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

// AccountSource lists the balances of the user's linked accounts.
type AccountSource interface {
	Accounts(ctx context.Context) ([]domain.AccountBalance, error)
}

// Service exposes the profile operations. It is safe to share between goroutines as
// long as the store is.
type Service struct {
	store     UserStore
	engine    *calculation.ProjectionEngine
	logger    calculation.Logger
	snapshots SnapshotSource
	accounts  AccountSource
	days      int
	maxAge    time.Duration
}

// Option configures the service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(logger calculation.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProjectionDays sets the projection horizon
func WithProjectionDays(days int) Option {
	return func(s *Service) {
		s.days = days
	}
}

// WithSnapshotSource enables snapshot refresh before projecting
func WithSnapshotSource(src SnapshotSource) Option {
	return func(s *Service) {
		s.snapshots = src
	}
}

// WithSnapshotMaxAge sets how stale the last snapshot may be before a refresh
func WithSnapshotMaxAge(age time.Duration) Option {
	return func(s *Service) {
		s.maxAge = age
	}
}

// WithAccountSource enables the holdings allocation refresh
func WithAccountSource(src AccountSource) Option {
	return func(s *Service) {
		s.accounts = src
	}
}

// New creates a service over store. A nil engine gets a default one.
func New(store UserStore, engine *calculation.ProjectionEngine, opts ...Option) *Service {
	if engine == nil {
		engine = calculation.NewProjectionEngine()
	}
	s := &Service{
		store:  store,
		engine: engine,
		logger: calculation.NopLogger{},
		days:   calculation.DefaultProjectionDays,
		maxAge: calculation.DefaultSnapshotMaxAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) load(ctx context.Context) (*domain.User, error) {
	user, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

func (s *Service) save(ctx context.Context, user *domain.User) error {
	if err := s.store.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// parseID rejects identifiers that are not UUIDs.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", apperr.BadRequest("malformed id %q", id)
	}
	return parsed.String(), nil
}

func newID() string {
	return uuid.NewString()
}
