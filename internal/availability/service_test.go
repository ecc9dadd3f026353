package availability

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/pkg/cache"
)

type fakeCatalog struct {
	topo   Topology
	window *catalog.OperatingWindow
}

func (f *fakeCatalog) CapacityOf(_ context.Context, resourceType catalog.ResourceType) (int, error) {
	count, ok := f.topo.Capacity[resourceType]
	if !ok {
		return 0, catalog.ErrUnknownResourceType
	}
	return count, nil
}

func (f *fakeCatalog) Capacities(context.Context) (map[catalog.ResourceType]int, error) {
	return f.topo.Capacity, nil
}

func (f *fakeCatalog) PerUnitGuests(resourceType catalog.ResourceType) (int, error) {
	guests, ok := f.topo.GuestsPerUnit[resourceType]
	if !ok {
		return 0, catalog.ErrUnknownResourceType
	}
	return guests, nil
}

func (f *fakeCatalog) MaxPartySize(_ context.Context, resourceType catalog.ResourceType) (int, error) {
	return f.topo.Capacity[resourceType] * f.topo.GuestsPerUnit[resourceType], nil
}

func (f *fakeCatalog) QuarterHourStarts(resourceType catalog.ResourceType) bool {
	return f.topo.QuarterHour[resourceType]
}

func (f *fakeCatalog) WindowFor(_ string, override *catalog.OperatingWindow) (*catalog.OperatingWindow, error) {
	if override != nil {
		return override, nil
	}
	return f.window, nil
}

func (f *fakeCatalog) CreateResource(context.Context, catalog.CreateResourceRequest) (*catalog.Resource, error) {
	return nil, nil
}

func (f *fakeCatalog) GetResource(context.Context, string) (*catalog.Resource, error) {
	return nil, nil
}

func (f *fakeCatalog) ListResources(context.Context) ([]catalog.Resource, error) {
	return nil, nil
}

func (f *fakeCatalog) UpdateResource(context.Context, string, catalog.UpdateResourceRequest) (*catalog.Resource, error) {
	return nil, nil
}

func (f *fakeCatalog) DeleteResource(context.Context, string) error {
	return nil
}

type fakeSnapshots struct {
	calls     int
	intervals []Interval
}

func (f *fakeSnapshots) IntervalsForDate(context.Context, string) ([]Interval, error) {
	f.calls++
	return f.intervals, nil
}

type fakeCacheStore struct {
	store map[string][]byte
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{store: make(map[string][]byte)}
}

func (f *fakeCacheStore) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := f.store[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCacheStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = data
	return nil
}

func (f *fakeCacheStore) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeCacheStore) DeletePattern(context.Context, string) error { return nil }

func (f *fakeCacheStore) Exists(_ context.Context, key string) bool {
	_, ok := f.store[key]
	return ok
}

func (f *fakeCacheStore) MGet(context.Context, []string, interface{}) error { return nil }

func (f *fakeCacheStore) MSet(context.Context, map[string]interface{}, time.Duration) error {
	return nil
}

func (f *fakeCacheStore) GetOrSet(context.Context, string, time.Duration, func() (interface{}, error), interface{}) error {
	return nil
}

func (f *fakeCacheStore) Ping(context.Context) error { return nil }

func TestSearchCachesPerRequestShape(t *testing.T) {
	snapshots := &fakeSnapshots{}
	store := newFakeCacheStore()

	svc := NewService(&fakeCatalog{
		topo:   testTopology(),
		window: &catalog.OperatingWindow{OpenMin: 960, CloseMin: 1380},
	}, nil, snapshots)
	svc.SetCacheService(store, 30*time.Second)

	query := Query{
		DateKey: "2026-09-04",
		Request: Request{Activity: NewSingle(catalog.TypeAxeBay, 60), PartySize: 8},
	}

	first, err := svc.Search(context.Background(), query)
	require.NoError(t, err)

	second, err := svc.Search(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, 1, snapshots.calls, "identical repeat search must be served from cache")
	assert.Equal(t, first.Open, second.Open)
	assert.Equal(t, first.Blocked, second.Blocked)

	// A different configuration fingerprints to its own key
	other := query
	other.Request.PartySize = 16
	_, err = svc.Search(context.Background(), other)
	require.NoError(t, err)

	assert.Equal(t, 2, snapshots.calls)
	assert.Len(t, store.store, 2)
}
