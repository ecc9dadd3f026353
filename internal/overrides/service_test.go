package overrides

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

type fakeRepo struct {
	byDate map[string]*DateOverride
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byDate: make(map[string]*DateOverride)}
}

func (f *fakeRepo) Upsert(_ context.Context, override *DateOverride) error {
	if existing, ok := f.byDate[override.DateKey]; ok {
		override.ID = existing.ID
	} else if override.ID == uuid.Nil {
		override.ID = uuid.New()
	}
	copied := *override
	f.byDate[override.DateKey] = &copied
	return nil
}

func (f *fakeRepo) GetByDateKey(_ context.Context, dateKey string) (*DateOverride, error) {
	override, ok := f.byDate[dateKey]
	if !ok {
		return nil, ErrOverrideNotFound
	}
	copied := *override
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context) ([]DateOverride, error) {
	list := make([]DateOverride, 0, len(f.byDate))
	for _, o := range f.byDate {
		list = append(list, *o)
	}
	return list, nil
}

func (f *fakeRepo) DeleteByDateKey(_ context.Context, dateKey string) error {
	if _, ok := f.byDate[dateKey]; !ok {
		return ErrOverrideNotFound
	}
	delete(f.byDate, dateKey)
	return nil
}

func TestGrantAndLookup(t *testing.T) {
	svc := NewService(newFakeRepo())
	staffID := uuid.New()

	granted, err := svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey:  "2026-09-07",
		OpenMin:  600,
		CloseMin: 900,
		Note:     "private corporate event",
	})
	require.NoError(t, err)
	assert.Equal(t, staffID, granted.CreatedBy)

	window, ok, err := svc.WindowOverride(context.Background(), "2026-09-07")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 600, window.OpenMin)
	assert.Equal(t, 900, window.CloseMin)
}

func TestGrantReplacesExisting(t *testing.T) {
	svc := NewService(newFakeRepo())
	staffID := uuid.New()

	_, err := svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey: "2026-09-07", OpenMin: 600, CloseMin: 900,
	})
	require.NoError(t, err)

	_, err = svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey: "2026-09-07", OpenMin: 540, CloseMin: 1320,
	})
	require.NoError(t, err)

	window, ok, err := svc.WindowOverride(context.Background(), "2026-09-07")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 540, window.OpenMin)
	assert.Equal(t, 1320, window.CloseMin)
}

func TestGrantValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	staffID := uuid.New()

	_, err := svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey: "not-a-date", OpenMin: 600, CloseMin: 900,
	})
	assert.Error(t, err)

	_, err = svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey: "2026-09-07", OpenMin: 900, CloseMin: 900,
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey: "2026-09-07", OpenMin: 1000, CloseMin: 900,
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	// Neither explicit hours nor a blackout suppression grants anything
	_, err = svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey: "2026-09-07",
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestGrantBlackoutSuppression(t *testing.T) {
	svc := NewService(newFakeRepo())
	staffID := uuid.New()

	// 2026-09-07 is a Monday, normally dark. Suppressing the blackout
	// without hours opens it with the standard evening window.
	_, err := svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey:          "2026-09-07",
		SuppressBlackout: true,
		Note:             "labor day opening",
	})
	require.NoError(t, err)

	window, ok, err := svc.WindowOverride(context.Background(), "2026-09-07")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, catalog.BlackoutLiftWindow(), *window)

	// Explicit hours alongside the suppression take precedence
	_, err = svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey:          "2026-09-07",
		OpenMin:          600,
		CloseMin:         1200,
		SuppressBlackout: true,
	})
	require.NoError(t, err)

	window, ok, err = svc.WindowOverride(context.Background(), "2026-09-07")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 600, window.OpenMin)
	assert.Equal(t, 1200, window.CloseMin)
}

func TestWindowOverrideMiss(t *testing.T) {
	svc := NewService(newFakeRepo())

	window, ok, err := svc.WindowOverride(context.Background(), "2026-09-08")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, window)
}

func TestRevoke(t *testing.T) {
	svc := NewService(newFakeRepo())
	staffID := uuid.New()

	_, err := svc.Grant(context.Background(), staffID, CreateOverrideRequest{
		DateKey: "2026-09-07", OpenMin: 600, CloseMin: 900,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), "2026-09-07"))

	_, ok, err := svc.WindowOverride(context.Background(), "2026-09-07")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Revoke(context.Background(), "2026-09-07"), ErrOverrideNotFound)
}
