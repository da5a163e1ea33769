package plan

import "context"

type Repository interface {
	Create(ctx context.Context, p *Plan) error
	List(ctx context.Context, tenantID string) ([]Plan, error)
	GetByID(ctx context.Context, tenantID string, id int) (*Plan, error)
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, tenantID string, id int) error
}
