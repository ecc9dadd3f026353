package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	counts map[ResourceType]int
}

func newFakeRepo(counts map[ResourceType]int) *fakeRepo {
	return &fakeRepo{counts: counts}
}

func (f *fakeRepo) Create(context.Context, *Resource) error { return nil }

func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*Resource, error) {
	return nil, ErrResourceNotFound
}

func (f *fakeRepo) GetAll(context.Context) ([]Resource, error) { return nil, nil }

func (f *fakeRepo) Update(context.Context, uuid.UUID, map[string]interface{}) (*Resource, error) {
	return nil, ErrResourceNotFound
}

func (f *fakeRepo) Delete(context.Context, uuid.UUID) error { return ErrResourceNotFound }

func (f *fakeRepo) CountActiveByType(_ context.Context, resourceType ResourceType) (int64, error) {
	return int64(f.counts[resourceType]), nil
}

func (f *fakeRepo) CountActiveAll(context.Context) (map[ResourceType]int, error) {
	out := make(map[ResourceType]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out, nil
}

func venueRepo() *fakeRepo {
	return newFakeRepo(map[ResourceType]int{
		TypeAxeBay:      4,
		TypeDuckpinLane: 6,
		TypePartyArea:   2,
	})
}

func TestCapacityOf(t *testing.T) {
	svc := NewService(venueRepo())

	count, err := svc.CapacityOf(context.Background(), TypeAxeBay)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = svc.CapacityOf(context.Background(), ResourceType("KARAOKE_ROOM"))
	assert.ErrorIs(t, err, ErrUnknownResourceType)
}

func TestCapacityOfRejectsZeroUnits(t *testing.T) {
	svc := NewService(newFakeRepo(map[ResourceType]int{TypeAxeBay: 4}))

	// A valid type with no active units cannot host anything
	_, err := svc.CapacityOf(context.Background(), TypePartyArea)
	assert.ErrorIs(t, err, ErrUnknownResourceType)
}

func TestMaxPartySize(t *testing.T) {
	svc := NewService(venueRepo())

	max, err := svc.MaxPartySize(context.Background(), TypeAxeBay)
	require.NoError(t, err)
	assert.Equal(t, 16, max) // 4 bays x 4 guests

	max, err = svc.MaxPartySize(context.Background(), TypeDuckpinLane)
	require.NoError(t, err)
	assert.Equal(t, 36, max) // 6 lanes x 6 guests

	// Party areas have no per-guest sizing; they are booked by area count
	_, err = svc.MaxPartySize(context.Background(), TypePartyArea)
	assert.ErrorIs(t, err, ErrUnknownResourceType)
}

func TestQuarterHourStarts(t *testing.T) {
	svc := NewService(venueRepo())

	assert.True(t, svc.QuarterHourStarts(TypeAxeBay))
	assert.False(t, svc.QuarterHourStarts(TypeDuckpinLane))
	assert.False(t, svc.QuarterHourStarts(TypePartyArea))
}

func TestWindowForWeekdays(t *testing.T) {
	svc := NewService(venueRepo())

	// 2026-09-04 is a Friday
	window, err := svc.WindowFor("2026-09-04", nil)
	require.NoError(t, err)
	require.NotNil(t, window)
	assert.Equal(t, 960, window.OpenMin)
	assert.Equal(t, 1440, window.CloseMin)

	// 2026-09-07 is a Monday: dark
	window, err = svc.WindowFor("2026-09-07", nil)
	require.NoError(t, err)
	assert.Nil(t, window)

	// 2026-09-05 is a Saturday
	window, err = svc.WindowFor("2026-09-05", nil)
	require.NoError(t, err)
	require.NotNil(t, window)
	assert.Equal(t, 600, window.OpenMin)
}

func TestWindowForOverride(t *testing.T) {
	svc := NewService(venueRepo())

	// An override opens a normally dark Monday
	window, err := svc.WindowFor("2026-09-07", &OperatingWindow{OpenMin: 600, CloseMin: 900})
	require.NoError(t, err)
	require.NotNil(t, window)
	assert.Equal(t, 600, window.OpenMin)
	assert.Equal(t, 900, window.CloseMin)

	// Degenerate override windows are rejected
	_, err = svc.WindowFor("2026-09-07", &OperatingWindow{OpenMin: 900, CloseMin: 900})
	assert.Error(t, err)
}

func TestWindowForInvalidDateKey(t *testing.T) {
	svc := NewService(venueRepo())

	_, err := svc.WindowFor("09/04/2026", nil)
	assert.ErrorIs(t, err, ErrInvalidDateKey)

	_, err = svc.WindowFor("", nil)
	assert.ErrorIs(t, err, ErrInvalidDateKey)
}

func TestParseDateKey(t *testing.T) {
	parsed, err := ParseDateKey("2026-09-04")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())

	_, err = ParseDateKey("2026-9-4")
	assert.Error(t, err)
}
