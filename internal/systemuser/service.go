package systemuser

import (
	"context"
	"fmt"

	"memberdesk/internal/api"
	"memberdesk/internal/auth"
	"memberdesk/internal/logger"
)

var (
	ErrSystemUserNotFound = fmt.Errorf("system user %w", api.ErrNotFound)
	ErrSystemUserInUse    = api.Invalid("Id", "system user has recorded attendance and cannot be deleted")
)

type Service interface {
	Create(ctx context.Context, tenantID string, req CreateSystemUserRequest) (*SystemUser, error)
	List(ctx context.Context, tenantID string) ([]SystemUser, error)
	Get(ctx context.Context, tenantID string, id int) (*SystemUser, error)
	Update(ctx context.Context, tenantID string, id int, patch SystemUserPatch) (*SystemUser, error)
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

func (s *service) Create(ctx context.Context, tenantID string, req CreateSystemUserRequest) (*SystemUser, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash system user password: %w", err)
	}

	u := &SystemUser{
		TenantID:     tenantID,
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		UserName:     req.UserName,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("system user created", "tenant_id", tenantID, "system_user_id", u.ID, "role", u.Role)
	return u, nil
}

func (s *service) List(ctx context.Context, tenantID string) ([]SystemUser, error) {
	return s.repo.List(ctx, tenantID)
}

func (s *service) Get(ctx context.Context, tenantID string, id int) (*SystemUser, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) Update(ctx context.Context, tenantID string, id int, patch SystemUserPatch) (*SystemUser, error) {
	u, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(u)
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash system user password: %w", err)
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, tenantID string, id int) error {
	return s.repo.Delete(ctx, tenantID, id)
}
