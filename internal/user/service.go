package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/logger"
	"memberdesk/internal/upload"
)

var (
	ErrUserNotFound = fmt.Errorf("user %w", api.ErrNotFound)
	errInvalidDOB   = api.Invalid("DOB", "DOB must be a date in YYYY-MM-DD format")
)

type Service interface {
	Create(ctx context.Context, tenantID string, req CreateUserRequest, images Images) (*User, error)
	List(ctx context.Context, tenantID string) ([]User, error)
	Get(ctx context.Context, tenantID string, id int) (*User, error)
	Update(ctx context.Context, tenantID string, id int, patch UserPatch) (*User, error)
	Delete(ctx context.Context, tenantID string, id int) error
}

type service struct {
	repo    Repository
	storage *upload.Storage
	loc     *time.Location
	now     func() time.Time
}

func NewService(repo Repository, storage *upload.Storage, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:    repo,
		storage: storage,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *service) clock() time.Time {
	return s.now().In(s.loc)
}

// Create stores a member and their images together. The images are staged
// first, promoted into the member's folder once the row exists, and removed
// again if the transaction does not commit.
func (s *service) Create(ctx context.Context, tenantID string, req CreateUserRequest, images Images) (*User, error) {
	dob, err := api.ParseDate(req.DOB)
	if err != nil {
		return nil, errInvalidDOB
	}

	u := &User{
		TenantID:         tenantID,
		Name:             strings.TrimSpace(req.Name),
		Wing:             optional(req.Wing),
		RoomNo:           optional(req.RoomNo),
		MobileNo:         strings.TrimSpace(req.MobileNo),
		EmailID:          strings.ToLower(strings.TrimSpace(req.EmailID)),
		Gender:           req.Gender,
		PermanentAddress: optional(req.PermanentAddress),
		PresentAddress:   optional(req.PresentAddress),
		Location:         req.Location,
		DOB:              dob,
		IsTrainer:        req.IsTrainer,
		CreatedBy:        optional(req.CreatedBy),
		CreatedDate:      s.clock(),
	}

	staging := s.storage.NewStaging()
	defer staging.Discard()

	if err := staging.Add(ProfileImageField, images.Profile); err != nil {
		return nil, err
	}
	if err := staging.Add(AadharImageField, images.Aadhar); err != nil {
		return nil, err
	}

	attach := func(u *User) error {
		if staging.Has(ProfileImageField) {
			url, err := staging.Promote(tenantID, u.ID, ProfileImageField, "profile")
			if err != nil {
				return err
			}
			u.ProfileImagePath = &url
		}
		if staging.Has(AadharImageField) {
			url, err := staging.Promote(tenantID, u.ID, AadharImageField, "aadhar")
			if err != nil {
				return err
			}
			u.AadharImagePath = &url
		}
		return nil
	}

	if err := s.repo.Create(ctx, u, attach); err != nil {
		staging.Rollback()
		return nil, err
	}

	logger.Info("user created", "tenant_id", tenantID, "user_id", u.ID)
	return u, nil
}

func (s *service) List(ctx context.Context, tenantID string) ([]User, error) {
	return s.repo.List(ctx, tenantID)
}

func (s *service) Get(ctx context.Context, tenantID string, id int) (*User, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) Update(ctx context.Context, tenantID string, id int, patch UserPatch) (*User, error) {
	if patch.DOB != nil && patch.DOB.IsZero() {
		return nil, errInvalidDOB
	}

	u, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(u)
	u.EmailID = strings.ToLower(u.EmailID)
	now := s.clock()
	u.UpdatedDate = &now

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the member, their subscriptions, payments and attendance,
// then the member's upload folder.
func (s *service) Delete(ctx context.Context, tenantID string, id int) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	if err := s.storage.RemoveUserFolder(tenantID, id); err != nil {
		logger.Warn("user folder not removed", "tenant_id", tenantID, "user_id", id, "error", err)
	}
	logger.Info("user deleted", "tenant_id", tenantID, "user_id", id)
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
