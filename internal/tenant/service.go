package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"memberdesk/internal/api"
	"memberdesk/internal/auth"
	"memberdesk/internal/logger"

	"github.com/google/uuid"
)

const tokenRole = "tenant"

var (
	ErrTenantNotFound     = fmt.Errorf("tenant %w", api.ErrNotFound)
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	Create(ctx context.Context, req CreateTenantRequest) (*Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
	Get(ctx context.Context, id string) (*Tenant, error)
	Update(ctx context.Context, id string, patch TenantPatch) (*Tenant, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Validate(ctx context.Context, req ValidateRequest) (*ValidateResponse, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Create(ctx context.Context, req CreateTenantRequest) (*Tenant, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash tenant password: %w", err)
	}

	id := req.ID
	if id == "" {
		id = newTenantID()
	}

	t := &Tenant{
		ID:           id,
		GUID:         uuid.NewString(),
		Name:         req.Name,
		UserName:     req.UserName,
		EmailID:      strings.ToLower(req.EmailID),
		MobileNo:     req.MobileNo,
		Location:     req.Location,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("tenant created", "tenant_id", t.ID)
	return t, nil
}

func (s *service) List(ctx context.Context) ([]Tenant, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, patch TenantPatch) (*Tenant, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(t)
	t.EmailID = strings.ToLower(t.EmailID)
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash tenant password: %w", err)
		}
		t.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("tenant deleted", "tenant_id", id)
	return nil
}

func (s *service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// Validate checks tenant credentials against the stored bcrypt hash and
// issues a token pair scoped to the tenant.
func (s *service) Validate(ctx context.Context, req ValidateRequest) (*ValidateResponse, error) {
	t, err := s.repo.GetByEmail(ctx, strings.ToLower(req.EmailID))
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(t.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(t.ID, t.EmailID, tokenRole, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &ValidateResponse{
		Tenant:       *t,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	accessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	exists, err := s.repo.Exists(ctx, claims.TenantID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrInvalidCredentials
	}
	return accessToken, nil
}

func newTenantID() string {
	return "T" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
