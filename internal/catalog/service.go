package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service interface {
	// Capacity lookups used by the engine
	CapacityOf(ctx context.Context, resourceType ResourceType) (int, error)
	Capacities(ctx context.Context) (map[ResourceType]int, error)
	PerUnitGuests(resourceType ResourceType) (int, error)
	MaxPartySize(ctx context.Context, resourceType ResourceType) (int, error)
	QuarterHourStarts(resourceType ResourceType) bool

	// Operating window resolution. A non-nil override is a pre-validated
	// Override Authority decision for the exact date; no credential check
	// happens here. A nil window result means the date is closed.
	WindowFor(dateKey string, override *OperatingWindow) (*OperatingWindow, error)

	// Resource administration
	CreateResource(ctx context.Context, req CreateResourceRequest) (*Resource, error)
	GetResource(ctx context.Context, id string) (*Resource, error)
	ListResources(ctx context.Context) ([]Resource, error)
	UpdateResource(ctx context.Context, id string, req UpdateResourceRequest) (*Resource, error)
	DeleteResource(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CapacityOf(ctx context.Context, resourceType ResourceType) (int, error) {
	if !resourceType.IsValid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownResourceType, resourceType)
	}

	count, err := s.repo.CountActiveByType(ctx, resourceType)
	if err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownResourceType, resourceType)
	}

	return int(count), nil
}

func (s *service) Capacities(ctx context.Context) (map[ResourceType]int, error) {
	counts, err := s.repo.CountActiveAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count resources: %w", err)
	}
	return counts, nil
}

func (s *service) PerUnitGuests(resourceType ResourceType) (int, error) {
	guests, ok := perUnitGuests[resourceType]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no per-unit guest capacity", ErrUnknownResourceType, resourceType)
	}
	return guests, nil
}

// MaxPartySize is the largest party the venue can physically seat on a type:
// every unit full at once. Larger requests are rejected up front rather than
// scanned into a guaranteed all-blocked result.
func (s *service) MaxPartySize(ctx context.Context, resourceType ResourceType) (int, error) {
	capacity, err := s.CapacityOf(ctx, resourceType)
	if err != nil {
		return 0, err
	}
	guests, err := s.PerUnitGuests(resourceType)
	if err != nil {
		return 0, err
	}
	return capacity * guests, nil
}

func (s *service) QuarterHourStarts(resourceType ResourceType) bool {
	return quarterHourStarts[resourceType]
}

func (s *service) WindowFor(dateKey string, override *OperatingWindow) (*OperatingWindow, error) {
	date, err := ParseDateKey(dateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateKey, dateKey)
	}

	if override != nil {
		if override.OpenMin >= override.CloseMin {
			return nil, fmt.Errorf("override window invalid: open %d >= close %d", override.OpenMin, override.CloseMin)
		}
		w := *override
		return &w, nil
	}

	window := defaultWeekHours[date.Weekday()]
	if window == nil {
		return nil, nil // closed day
	}
	w := *window
	return &w, nil
}

//  RESOURCE ADMINISTRATION

func (s *service) CreateResource(ctx context.Context, req CreateResourceRequest) (*Resource, error) {
	resourceType := ResourceType(req.Type)
	if !resourceType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResourceType, req.Type)
	}

	resource := &Resource{
		Type:         resourceType,
		Label:        req.Label,
		Active:       true,
		DisplayOrder: req.DisplayOrder,
	}
	if req.Active != nil {
		resource.Active = *req.Active
	}

	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return resource, nil
}

func (s *service) GetResource(ctx context.Context, id string) (*Resource, error) {
	resourceID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid resource ID: %w", err)
	}
	return s.repo.GetByID(ctx, resourceID)
}

func (s *service) ListResources(ctx context.Context) ([]Resource, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) UpdateResource(ctx context.Context, id string, req UpdateResourceRequest) (*Resource, error) {
	resourceID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid resource ID: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	if len(updates) == 0 {
		return s.repo.GetByID(ctx, resourceID)
	}

	return s.repo.Update(ctx, resourceID, updates)
}

func (s *service) DeleteResource(ctx context.Context, id string) error {
	resourceID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid resource ID: %w", err)
	}
	return s.repo.Delete(ctx, resourceID)
}
