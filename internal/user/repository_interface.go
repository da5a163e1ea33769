package user

import "context"

type Repository interface {
	// Create inserts u and, inside the same transaction, lets attach place
	// the member's files once the id is known. Image paths set by attach
	// are written before commit.
	Create(ctx context.Context, u *User, attach func(u *User) error) error
	List(ctx context.Context, tenantID string) ([]User, error)
	GetByID(ctx context.Context, tenantID string, id int) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, tenantID string, id int) error
}
