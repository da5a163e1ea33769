package plan

import (
	"context"

	"memberdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const planColumns = `id, tenant_id, name, shortcode, amount, days, is_active, sessions`

func (r *repository) Create(ctx context.Context, p *Plan) error {
	query := `
		INSERT INTO subscription_plans (tenant_id, name, shortcode, amount, days, is_active, sessions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		p.TenantID, p.Name, p.Shortcode, p.Amount, p.Days, p.IsActive, p.Sessions,
	).Scan(&p.ID)
	return db.WrapError(err, nil)
}

func (r *repository) List(ctx context.Context, tenantID string) ([]Plan, error) {
	query := `SELECT ` + planColumns + ` FROM subscription_plans WHERE tenant_id = $1 ORDER BY id`

	plans := []Plan{}
	if err := r.db.SelectContext(ctx, &plans, query, tenantID); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID string, id int) (*Plan, error) {
	query := `SELECT ` + planColumns + ` FROM subscription_plans WHERE tenant_id = $1 AND id = $2`

	var p Plan
	if err := r.db.GetContext(ctx, &p, query, tenantID, id); err != nil {
		return nil, db.WrapError(err, ErrPlanNotFound)
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Plan) error {
	query := `
		UPDATE subscription_plans
		SET name = $3, shortcode = $4, amount = $5, days = $6, is_active = $7, sessions = $8
		WHERE tenant_id = $1 AND id = $2
	`

	res, err := r.db.ExecContext(ctx, query,
		p.TenantID, p.ID, p.Name, p.Shortcode, p.Amount, p.Days, p.IsActive, p.Sessions,
	)
	if err != nil {
		return db.WrapError(err, nil)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, tenantID string, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscription_plans WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrPlanInUse
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPlanNotFound
	}
	return nil
}
