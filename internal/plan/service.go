package plan

import (
	"context"
	"fmt"

	"memberdesk/internal/api"
)

var (
	ErrPlanNotFound = fmt.Errorf("subscription plan %w", api.ErrNotFound)
	ErrPlanInUse    = api.Invalid("Id", "subscription plan is referenced by user subscriptions")
)

type Service interface {
	Create(ctx context.Context, tenantID string, req CreatePlanRequest) (*Plan, error)
	List(ctx context.Context, tenantID string) ([]Plan, error)
	Get(ctx context.Context, tenantID string, id int) (*Plan, error)
	Update(ctx context.Context, tenantID string, id int, patch PlanPatch) (*Plan, error)
	Delete(ctx context.Context, tenantID string, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, tenantID string, req CreatePlanRequest) (*Plan, error) {
	if req.Amount.IsNegative() {
		return nil, errNegativeAmount
	}

	p := &Plan{
		TenantID:  tenantID,
		Name:      req.Name,
		Shortcode: req.Shortcode,
		Amount:    *req.Amount,
		Days:      req.Days,
		IsActive:  true,
		Sessions:  req.Sessions,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context, tenantID string) ([]Plan, error) {
	return s.repo.List(ctx, tenantID)
}

func (s *service) Get(ctx context.Context, tenantID string, id int) (*Plan, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) Update(ctx context.Context, tenantID string, id int, patch PlanPatch) (*Plan, error) {
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return nil, errNegativeAmount
	}

	p, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, tenantID string, id int) error {
	return s.repo.Delete(ctx, tenantID, id)
}

var errNegativeAmount = api.Invalid("Amount", "Amount must not be negative")
