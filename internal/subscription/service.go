package subscription

import (
	"context"
	"fmt"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/plan"
)

var (
	ErrMappingNotFound = fmt.Errorf("user subscription mapping %w", api.ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", api.ErrNotFound)
)

// PlanReader looks up a tenant's subscription plan.
type PlanReader interface {
	Get(ctx context.Context, tenantID string, id int) (*plan.Plan, error)
}

type Service interface {
	Create(ctx context.Context, tenantID string, req CreateMappingRequest) (*Mapping, error)
	List(ctx context.Context, tenantID string) ([]Mapping, error)
	Get(ctx context.Context, tenantID string, id int) (*Mapping, error)
	Update(ctx context.Context, tenantID string, id int, patch MappingPatch) (*Mapping, error)
	Delete(ctx context.Context, tenantID string, id int) error
	Balance(ctx context.Context, tenantID string, id int) (*Balance, error)
}

type service struct {
	repo  Repository
	plans PlanReader
	loc   *time.Location
	now   func() time.Time
}

func NewService(repo Repository, plans PlanReader, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:  repo,
		plans: plans,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *service) clock() time.Time {
	return s.now().In(s.loc)
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateMappingRequest) (*Mapping, error) {
	if req.EffectiveDate.IsZero() {
		return nil, api.Invalid("EffectiveDate", "EffectiveDate is required")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, api.Invalid("Price", "Price must not be negative")
	}

	ok, err := s.repo.UserExists(ctx, tenantID, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	p, err := s.plans.Get(ctx, tenantID, req.SubscriptionPlanID)
	if err != nil {
		return nil, err
	}

	m := &Mapping{
		TenantID:           tenantID,
		UserID:             req.UserID,
		SubscriptionPlanID: p.ID,
		EffectiveDate:      req.EffectiveDate,
		ValidUntil:         req.EffectiveDate.AddDays(p.Days),
		Price:              p.Amount,
		DiscountCoupon:     req.DiscountCoupon,
		IsActive:           true,
		Remarks:            req.Remarks,
		CreatedBy:          req.CreatedBy,
	}
	if req.ValidUntil != nil && !req.ValidUntil.IsZero() {
		m.ValidUntil = *req.ValidUntil
	}
	if req.Price != nil {
		m.Price = *req.Price
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := validateWindow(m); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) List(ctx context.Context, tenantID string) ([]Mapping, error) {
	return s.repo.List(ctx, tenantID)
}

func (s *service) Get(ctx context.Context, tenantID string, id int) (*Mapping, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) Update(ctx context.Context, tenantID string, id int, patch MappingPatch) (*Mapping, error) {
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, api.Invalid("Price", "Price must not be negative")
	}
	if patch.EffectiveDate != nil && patch.EffectiveDate.IsZero() {
		return nil, api.Invalid("EffectiveDate", "EffectiveDate must be a date in format YYYY-MM-DD")
	}
	if patch.ValidUntil != nil && patch.ValidUntil.IsZero() {
		return nil, api.Invalid("ValidUntil", "ValidUntil must be a date in format YYYY-MM-DD")
	}

	m, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if patch.SubscriptionPlanID != nil && *patch.SubscriptionPlanID != m.SubscriptionPlanID {
		if _, err := s.plans.Get(ctx, tenantID, *patch.SubscriptionPlanID); err != nil {
			return nil, err
		}
	}

	wasActive := m.IsActive
	patch.Apply(m)
	if m.IsActive != wasActive {
		today := api.DateOf(s.clock())
		if m.IsActive {
			m.ReactivateDate = &today
		} else {
			m.DeactivateDate = &today
		}
	}

	if err := validateWindow(m); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, tenantID string, id int) error {
	return s.repo.Delete(ctx, tenantID, id)
}

func (s *service) Balance(ctx context.Context, tenantID string, id int) (*Balance, error) {
	m, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.PaymentAmounts(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	b := Resolve(*m, payments, s.clock())
	return &b, nil
}

func validateWindow(m *Mapping) error {
	if m.ValidUntil.Before(m.EffectiveDate.Time) {
		return api.Invalid("ValidUntil", "ValidUntil must not be before EffectiveDate")
	}
	return nil
}
