package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch/networth/internal/apperr"
	"github.com/finch/networth/internal/calculation"
	"github.com/finch/networth/internal/domain"
	money "github.com/finch/networth/pkg/decimal"
)

// --- test doubles ---

// memStore keeps the profile in memory and counts saves.
type memStore struct {
	mu    sync.Mutex
	user  *domain.User
	saves int
	err   error
}

func (m *memStore) Load(_ context.Context) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u := *m.user
	u.Plans = append([]domain.Plan(nil), m.user.Plans...)
	u.Recurrings = append([]domain.Recurring(nil), m.user.Recurrings...)
	u.Snapshots = append([]domain.Snapshot(nil), m.user.Snapshots...)
	return &u, nil
}

func (m *memStore) Save(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.saves++
	return nil
}

type fakeSnapshots struct {
	snap  domain.Snapshot
	err   error
	calls int
}

func (f *fakeSnapshots) Snapshot(_ context.Context) (domain.Snapshot, error) {
	f.calls++
	return f.snap, f.err
}

type fakeAccounts []domain.AccountBalance

func (f fakeAccounts) Accounts(_ context.Context) ([]domain.AccountBalance, error) {
	return f, nil
}

var testNow = time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

func freezeTime(t *testing.T) {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return testNow })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })
}

func newTestService(t *testing.T, user *domain.User, opts ...Option) (*Service, *memStore) {
	t.Helper()
	freezeTime(t)
	store := &memStore{user: user}
	return New(store, nil, append([]Option{WithProjectionDays(30)}, opts...)...), store
}

func salary() domain.Recurring {
	return domain.Recurring{
		Name:      "Salary",
		Start:     testNow.Unix(),
		End:       testNow.AddDate(1, 0, 0).Unix(),
		Amount:    money.NewMoneyFromInt(3000),
		Frequency: domain.Frequency{Kind: domain.Monthly, EveryN: 1},
	}
}

func cashPlan(name string) domain.Plan {
	return domain.Plan{
		Name: name,
		Allocations: []domain.Allocation{{
			Date: testNow.Unix(),
			Schema: []domain.AllocationEntry{{
				AssetClass:            domain.Cash,
				AnnualizedPerformance: decimal.NewFromInt(1),
				Proportion:            decimal.NewFromInt(100),
			}},
		}},
	}
}

func TestGetPlanFallsBackToSample(t *testing.T) {
	svc, store := newTestService(t, &domain.User{Name: "sam"})

	resp, err := svc.GetPlan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Sample Plan", resp.Plan.Name)
	assert.Len(t, resp.Timeseries.Series, 30)
	assert.Equal(t, 0, store.saves)
}

func TestNewPlanReplacesExisting(t *testing.T) {
	svc, store := newTestService(t, &domain.User{Name: "sam", Plans: []domain.Plan{cashPlan("old")}})
	plan := cashPlan("new")
	plan.Recurrings = []domain.Recurring{salary()}

	resp, err := svc.NewPlan(context.Background(), plan)

	require.NoError(t, err)
	require.Len(t, store.user.Plans, 1)
	stored := store.user.Plans[0]
	assert.Equal(t, "new", stored.Name)
	assert.NotEmpty(t, stored.ID)
	_, err = uuid.Parse(stored.Recurrings[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, stored, resp.Plan)
	assert.Empty(t, plan.ID, "caller's plan is not modified")
}

func TestNewPlanRejectsInvalid(t *testing.T) {
	svc, store := newTestService(t, &domain.User{Name: "sam"})
	plan := cashPlan("bad")
	plan.Allocations[0].Schema[0].Proportion = decimal.NewFromInt(50)

	_, err := svc.NewPlan(context.Background(), plan)

	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(err))
	assert.Equal(t, 0, store.saves)

	_, err = svc.NewPlan(context.Background(), domain.Plan{})
	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(err))
}

func TestUpdatePlanWritesBack(t *testing.T) {
	svc, store := newTestService(t, &domain.User{Name: "sam", Plans: []domain.Plan{cashPlan("mine")}})
	name := "renamed"
	recurrings := []domain.Recurring{salary()}

	resp, err := svc.UpdatePlan(context.Background(), PlanUpdate{Name: &name, Recurrings: &recurrings})

	require.NoError(t, err)
	assert.Equal(t, "renamed", resp.Plan.Name)
	require.Len(t, store.user.Plans, 1)
	assert.Equal(t, "renamed", store.user.Plans[0].Name)
	assert.Len(t, store.user.Plans[0].Recurrings, 1)
	assert.Len(t, store.user.Plans[0].Allocations, 1, "fields not in the update are kept")
	assert.Equal(t, 1, store.saves)
}

func TestUpdatePlanStartsFromSample(t *testing.T) {
	svc, store := newTestService(t, &domain.User{Name: "sam"})
	name := "first"

	_, err := svc.UpdatePlan(context.Background(), PlanUpdate{Name: &name})

	require.NoError(t, err)
	require.Len(t, store.user.Plans, 1)
	assert.Equal(t, "first", store.user.Plans[0].Name)
	assert.Len(t, store.user.Plans[0].Events, 1)
}

func TestDeletePlan(t *testing.T) {
	svc, store := newTestService(t, &domain.User{Name: "sam", Plans: []domain.Plan{cashPlan("mine")}})

	removed, err := svc.DeletePlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mine", removed.Name)
	assert.Empty(t, store.user.Plans)

	_, err = svc.DeletePlan(context.Background())
	assert.Equal(t, http.StatusNotFound, apperr.StatusCode(err))
}

func TestUpdateHoldingsAllocation(t *testing.T) {
	user := &domain.User{
		Name:      "sam",
		Plans:     []domain.Plan{cashPlan("mine")},
		Snapshots: []domain.Snapshot{{NetWorth: money.NewMoneyFromInt(1000), SnapshotTime: testNow.Unix()}},
	}
	accounts := fakeAccounts{
		{ID: "1", Type: "depository", Balance: money.NewMoneyFromInt(500)},
		{ID: "2", Type: "investment", Balance: money.NewMoneyFromInt(500)},
	}
	svc, store := newTestService(t, user, WithAccountSource(accounts))

	resp, err := svc.UpdateHoldingsAllocation(context.Background())

	require.NoError(t, err)
	require.Len(t, store.user.Plans[0].Allocations, 2)
	holdings := store.user.Plans[0].Allocations[1]
	assert.Equal(t, "Current Holdings", holdings.Description)
	assert.Len(t, holdings.Schema, 2)
	assert.Equal(t, resp.Plan.Allocations, store.user.Plans[0].Allocations)
}

func TestUpdateHoldingsAllocationWithoutSource(t *testing.T) {
	svc, _ := newTestService(t, &domain.User{Name: "sam"})

	_, err := svc.UpdateHoldingsAllocation(context.Background())
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusCode(err))
}

func TestRecurringCRUD(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, &domain.User{Name: "sam"})

	created, err := svc.NewRecurring(ctx, salary())
	require.NoError(t, err)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)

	other, err := svc.NewRecurring(ctx, domain.Recurring{
		Name: "Gym", Amount: money.NewMoneyFromInt(-40),
		Frequency: domain.Frequency{Kind: domain.Monthly},
	})
	require.NoError(t, err)

	got, err := svc.GetRecurring(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	changed := salary()
	changed.Amount = money.NewMoneyFromInt(3500)
	changed.ID = "ignored"
	updated, err := svc.UpdateRecurring(ctx, created.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, store.user.Recurrings[0].Amount.Equal(money.NewMoneyFromInt(3500)))

	removed, err := svc.DeleteRecurring(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	list, err := svc.ListRecurrings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, other.ID, list[0].ID)
}

func TestRecurringErrors(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, &domain.User{Name: "sam"})

	tests := []struct {
		name string
		call func() error
		want int
	}{
		{"malformed get", func() error { _, err := svc.GetRecurring(ctx, "not-an-id"); return err }, http.StatusBadRequest},
		{"missing get", func() error { _, err := svc.GetRecurring(ctx, uuid.NewString()); return err }, http.StatusNotFound},
		{"malformed update", func() error { _, err := svc.UpdateRecurring(ctx, "42", salary()); return err }, http.StatusBadRequest},
		{"missing delete", func() error { _, err := svc.DeleteRecurring(ctx, uuid.NewString()); return err }, http.StatusNotFound},
		{"invalid new", func() error {
			r := salary()
			r.Principal = money.NewMoneyFromInt(10)
			_, err := svc.NewRecurring(ctx, r)
			return err
		}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.StatusCode(tt.call()))
		})
	}
	assert.Equal(t, 0, store.saves)
}

func TestGetTimeseriesRefreshesStaleSnapshot(t *testing.T) {
	user := &domain.User{
		Name: "sam",
		Snapshots: []domain.Snapshot{{
			NetWorth:      money.NewMoneyFromInt(1000),
			RunningIncome: money.NewMoneyFromInt(100),
			SnapshotTime:  testNow.Add(-48 * time.Hour).Unix(),
		}},
	}
	src := &fakeSnapshots{snap: domain.Snapshot{NetWorth: money.NewMoneyFromInt(1200), RunningIncome: money.NewMoneyFromInt(50)}}
	svc, store := newTestService(t, user, WithSnapshotSource(src))

	resp, err := svc.GetTimeseries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	require.Len(t, store.user.Snapshots, 2)
	latest := store.user.Snapshots[1]
	assert.Equal(t, testNow.Unix(), latest.SnapshotTime)
	assert.True(t, latest.RunningIncome.Equal(money.NewMoneyFromInt(150)))
	assert.Equal(t, testNow.Unix(), resp.Start)
	assert.Len(t, resp.Series, 2+30)

	_, err = svc.GetTimeseries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls, "fresh snapshot is not refreshed again")
}

func TestGetTimeseriesIgnoresFailingSource(t *testing.T) {
	user := &domain.User{Name: "sam"}
	src := &fakeSnapshots{err: errors.New("aggregator down")}
	svc, store := newTestService(t, user, WithSnapshotSource(src))

	resp, err := svc.GetTimeseries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, store.saves)
	assert.Len(t, resp.Series, 30)
}

func TestLoadErrorIsWrapped(t *testing.T) {
	freezeTime(t)
	store := &memStore{err: errors.New("disk gone")}
	svc := New(store, nil)

	_, err := svc.GetTimeseries(context.Background())
	assert.ErrorContains(t, err, "failed to load profile: disk gone")
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusCode(err))
}

func TestAssetClasses(t *testing.T) {
	svc := New(&memStore{}, nil)
	classes := svc.AssetClasses()
	require.Len(t, classes, 6)
	assert.Equal(t, domain.Cash, classes[0].Class)
}
