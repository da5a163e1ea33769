package subscription

import (
	"context"
	"time"

	"memberdesk/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const mappingColumns = `id, tenant_id, user_id, subscription_plan_id, effective_date, valid_until, price,
	discount_coupon, is_active, deactivate_date, reactivate_date, remarks, created_by, updated_by,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, m *Mapping) error {
	query := `
		INSERT INTO user_subscription_plan_mappings
			(tenant_id, user_id, subscription_plan_id, effective_date, valid_until, price,
			 discount_coupon, is_active, remarks, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		m.TenantID, m.UserID, m.SubscriptionPlanID, m.EffectiveDate, m.ValidUntil, m.Price,
		m.DiscountCoupon, m.IsActive, m.Remarks, m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return db.WrapError(err, nil)
}

func (r *repository) List(ctx context.Context, tenantID string) ([]Mapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM user_subscription_plan_mappings WHERE tenant_id = $1 ORDER BY id`

	mappings := []Mapping{}
	if err := r.db.SelectContext(ctx, &mappings, query, tenantID); err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID string, id int) (*Mapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM user_subscription_plan_mappings WHERE tenant_id = $1 AND id = $2`

	var m Mapping
	if err := r.db.GetContext(ctx, &m, query, tenantID, id); err != nil {
		return nil, db.WrapError(err, ErrMappingNotFound)
	}
	return &m, nil
}

func (r *repository) Update(ctx context.Context, m *Mapping) error {
	query := `
		UPDATE user_subscription_plan_mappings
		SET subscription_plan_id = $3, effective_date = $4, valid_until = $5, price = $6,
		    discount_coupon = $7, is_active = $8, deactivate_date = $9, reactivate_date = $10,
		    remarks = $11, updated_by = $12, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2
		RETURNING updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		m.TenantID, m.ID, m.SubscriptionPlanID, m.EffectiveDate, m.ValidUntil, m.Price,
		m.DiscountCoupon, m.IsActive, m.DeactivateDate, m.ReactivateDate, m.Remarks, m.UpdatedBy,
	).Scan(&m.UpdatedAt)
	return db.WrapError(err, ErrMappingNotFound)
}

func (r *repository) Delete(ctx context.Context, tenantID string, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_subscription_plan_mappings WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMappingNotFound
	}
	return nil
}

func (r *repository) UserExists(ctx context.Context, tenantID string, userID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE tenant_id = $1 AND id = $2)`, tenantID, userID)
}

func (r *repository) PaymentAmounts(ctx context.Context, tenantID string, mappingID int) ([]decimal.Decimal, error) {
	query := `SELECT amount_received FROM payment_history WHERE tenant_id = $1 AND mapping_id = $2 ORDER BY id`

	amounts := []decimal.Decimal{}
	if err := r.db.SelectContext(ctx, &amounts, query, tenantID, mappingID); err != nil {
		return nil, err
	}
	return amounts, nil
}

// CountActive returns the number of active mappings per tenant at now.
func (r *repository) CountActive(ctx context.Context, now time.Time) (map[string]int, error) {
	query := `
		SELECT tenant_id, COUNT(*) AS active
		FROM user_subscription_plan_mappings
		WHERE is_active AND valid_until > $1::date
		GROUP BY tenant_id
	`

	var rows []struct {
		TenantID string `db:"tenant_id"`
		Active   int    `db:"active"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, now.Format("2006-01-02")); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.TenantID] = row.Active
	}
	return counts, nil
}
