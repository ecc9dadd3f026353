package overrides

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/pkg/logger"
)

var ErrInvalidWindow = errors.New("override window must satisfy open < close")

type Service interface {
	// Grant records (or replaces) an override for a date.
	Grant(ctx context.Context, staffID uuid.UUID, req CreateOverrideRequest) (*DateOverride, error)
	Revoke(ctx context.Context, dateKey string) error
	List(ctx context.Context) ([]DateOverride, error)

	// WindowOverride implements the lookup the catalog and availability layers
	// consume: the pre-validated window for a date, if one has been granted.
	WindowOverride(ctx context.Context, dateKey string) (*catalog.OperatingWindow, bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Grant(ctx context.Context, staffID uuid.UUID, req CreateOverrideRequest) (*DateOverride, error) {
	if _, err := catalog.ParseDateKey(req.DateKey); err != nil {
		return nil, fmt.Errorf("invalid date key %q: %w", req.DateKey, err)
	}
	explicit := req.OpenMin != 0 || req.CloseMin != 0
	if explicit && req.OpenMin >= req.CloseMin {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidWindow, req.OpenMin, req.CloseMin)
	}
	if !explicit && !req.SuppressBlackout {
		return nil, fmt.Errorf("%w: an override needs explicit hours or a blackout suppression", ErrInvalidWindow)
	}

	override := &DateOverride{
		DateKey:          req.DateKey,
		OpenMin:          req.OpenMin,
		CloseMin:         req.CloseMin,
		SuppressBlackout: req.SuppressBlackout,
		Note:             req.Note,
		CreatedBy:        staffID,
	}

	if err := s.repo.Upsert(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to store override: %w", err)
	}

	window := override.Window()
	logger.GetDefault().LogOverrideApplied(ctx, override.DateKey, window.OpenMin, window.CloseMin, staffID.String())
	return override, nil
}

func (s *service) Revoke(ctx context.Context, dateKey string) error {
	return s.repo.DeleteByDateKey(ctx, dateKey)
}

func (s *service) List(ctx context.Context) ([]DateOverride, error) {
	return s.repo.List(ctx)
}

func (s *service) WindowOverride(ctx context.Context, dateKey string) (*catalog.OperatingWindow, bool, error) {
	override, err := s.repo.GetByDateKey(ctx, dateKey)
	if err != nil {
		if errors.Is(err, ErrOverrideNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	window := override.Window()
	return &window, true, nil
}
