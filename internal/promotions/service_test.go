package promotions

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byCode map[string]*Promotion
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byCode: make(map[string]*Promotion)}
}

func (f *fakeRepo) Create(_ context.Context, promotion *Promotion) error {
	promotion.Code = strings.ToUpper(promotion.Code)
	f.byCode[promotion.Code] = promotion
	return nil
}

func (f *fakeRepo) GetByCode(_ context.Context, code string) (*Promotion, error) {
	promotion, ok := f.byCode[strings.ToUpper(code)]
	if !ok {
		return nil, ErrPromotionNotFound
	}
	copied := *promotion
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context) ([]Promotion, error) {
	list := make([]Promotion, 0, len(f.byCode))
	for _, p := range f.byCode {
		list = append(list, *p)
	}
	return list, nil
}

func (f *fakeRepo) Update(_ context.Context, promotion *Promotion) error {
	f.byCode[promotion.Code] = promotion
	return nil
}

func (f *fakeRepo) DeleteByCode(_ context.Context, code string) error {
	key := strings.ToUpper(code)
	if _, ok := f.byCode[key]; !ok {
		return ErrPromotionNotFound
	}
	delete(f.byCode, key)
	return nil
}

func TestApplyPercentOff(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreatePromotionRequest{Code: "BIRTHDAY10", PercentOff: 10})
	require.NoError(t, err)

	result, err := svc.Apply(context.Background(), "birthday10", 10800)
	require.NoError(t, err)

	assert.Equal(t, 1080, result.DiscountCents)
	assert.Equal(t, 9720, result.TotalCents)
}

func TestApplyCentsOffFloorsAtZero(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreatePromotionRequest{Code: "FLAT50", CentsOff: 5000})
	require.NoError(t, err)

	result, err := svc.Apply(context.Background(), "FLAT50", 3600)
	require.NoError(t, err)

	assert.Equal(t, 3600, result.DiscountCents)
	assert.Equal(t, 0, result.TotalCents)
}

func TestApplyRejectsInactiveAndExpired(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreatePromotionRequest{Code: "GONE", PercentOff: 20})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(context.Background(), "GONE"))

	_, err = svc.Apply(context.Background(), "GONE", 3600)
	assert.ErrorIs(t, err, ErrPromotionInactive)

	past := time.Now().Add(-24 * time.Hour)
	_, err = svc.Create(context.Background(), CreatePromotionRequest{Code: "STALE", PercentOff: 20, ExpiresAt: &past})
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), "STALE", 3600)
	assert.ErrorIs(t, err, ErrPromotionExpired)
}

func TestApplyUnknownCode(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Apply(context.Background(), "NOPE", 3600)
	assert.ErrorIs(t, err, ErrPromotionNotFound)
}

func TestCreateRequiresExactlyOneDiscount(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreatePromotionRequest{Code: "BOTH", PercentOff: 10, CentsOff: 500})
	assert.ErrorIs(t, err, ErrInvalidPromotion)

	_, err = svc.Create(context.Background(), CreatePromotionRequest{Code: "NEITHER"})
	assert.ErrorIs(t, err, ErrInvalidPromotion)
}
