package systemuser

import "context"

type Repository interface {
	Create(ctx context.Context, u *SystemUser) error
	List(ctx context.Context, tenantID string) ([]SystemUser, error)
	GetByID(ctx context.Context, tenantID string, id int) (*SystemUser, error)
	Update(ctx context.Context, u *SystemUser) error
	Delete(ctx context.Context, tenantID string, id int) error
}
