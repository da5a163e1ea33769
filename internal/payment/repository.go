package payment

import (
	"context"
	"fmt"
	"strings"

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

const paymentColumns = `id, tenant_id, user_id, mapping_id, transaction_ref_id, amount_received, payment_type,
	image_path, payment_date, created_by, created_date, updated_by, updated_date`

// pendingLocked locks the mapping row and returns price minus the payments
// recorded against it, leaving out excludeID.
func pendingLocked(ctx context.Context, tx *sqlx.Tx, tenantID string, userID, mappingID, excludeID int) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := tx.GetContext(ctx, &price, `
		SELECT price FROM user_subscription_plan_mappings
		WHERE tenant_id = $1 AND user_id = $2 AND id = $3
		FOR UPDATE
	`, tenantID, userID, mappingID)
	if err != nil {
		return decimal.Zero, db.WrapError(err, ErrMappingNotFound)
	}

	var paid decimal.Decimal
	err = tx.GetContext(ctx, &paid, `
		SELECT COALESCE(SUM(amount_received), 0) FROM payment_history
		WHERE tenant_id = $1 AND mapping_id = $2 AND id <> $3
	`, tenantID, mappingID, excludeID)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Sub(paid), nil
}

func (r *repository) Record(ctx context.Context, p *Payment, attach func(p *Payment) error) (decimal.Decimal, error) {
	var remaining decimal.Decimal

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		pending, err := pendingLocked(ctx, tx, p.TenantID, p.UserID, p.MappingID, 0)
		if err != nil {
			return err
		}
		if p.AmountReceived.GreaterThan(pending) {
			return ErrExceedsPending
		}

		if attach != nil {
			if err := attach(p); err != nil {
				return err
			}
		}

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO payment_history
				(tenant_id, user_id, mapping_id, transaction_ref_id, amount_received, payment_type,
				 image_path, payment_date, created_by, created_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`,
			p.TenantID, p.UserID, p.MappingID, p.TransactionRefID, p.AmountReceived, p.PaymentType,
			p.ImagePath, p.PaymentDate, p.CreatedBy, p.CreatedDate,
		).Scan(&p.ID)
		if err != nil {
			return err
		}

		remaining = pending.Sub(p.AmountReceived)
		return nil
	})
	return remaining, err
}

func (r *repository) List(ctx context.Context, tenantID string, filter ListFilter) ([]Payment, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT p.id, p.tenant_id, p.user_id, p.mapping_id, p.transaction_ref_id, p.amount_received,
		       p.payment_type, p.image_path, p.payment_date, p.created_by, p.created_date, p.updated_by,
		       p.updated_date, u.name AS member_name, sp.name AS plan_name
		FROM payment_history p
		JOIN users u ON u.id = p.user_id
		JOIN user_subscription_plan_mappings m ON m.id = p.mapping_id
		JOIN subscription_plans sp ON sp.id = m.subscription_plan_id
		WHERE p.tenant_id = $1`)

	args := []interface{}{tenantID}
	if filter.UserID > 0 {
		args = append(args, filter.UserID)
		fmt.Fprintf(&sb, " AND p.user_id = $%d", len(args))
	}
	if filter.MappingID > 0 {
		args = append(args, filter.MappingID)
		fmt.Fprintf(&sb, " AND p.mapping_id = $%d", len(args))
	}
	sb.WriteString(" ORDER BY p.payment_date DESC, p.id DESC")

	payments := []Payment{}
	if err := r.db.SelectContext(ctx, &payments, sb.String(), args...); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID string, id int) (*Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_history WHERE tenant_id = $1 AND id = $2`

	var p Payment
	if err := r.db.GetContext(ctx, &p, query, tenantID, id); err != nil {
		return nil, db.WrapError(err, ErrPaymentNotFound)
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Payment) (decimal.Decimal, error) {
	var remaining decimal.Decimal

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		pending, err := pendingLocked(ctx, tx, p.TenantID, p.UserID, p.MappingID, p.ID)
		if err != nil {
			return err
		}
		if p.AmountReceived.GreaterThan(pending) {
			return ErrExceedsPending
		}

		err = tx.QueryRowxContext(ctx, `
			UPDATE payment_history
			SET transaction_ref_id = $3, amount_received = $4, payment_type = $5, payment_date = $6,
			    updated_by = $7, updated_date = $8
			WHERE tenant_id = $1 AND id = $2
			RETURNING updated_date
		`,
			p.TenantID, p.ID, p.TransactionRefID, p.AmountReceived, p.PaymentType, p.PaymentDate,
			p.UpdatedBy, p.UpdatedDate,
		).Scan(&p.UpdatedDate)
		if err != nil {
			return db.WrapError(err, ErrPaymentNotFound)
		}

		remaining = pending.Sub(p.AmountReceived)
		return nil
	})
	return remaining, err
}

func (r *repository) Delete(ctx context.Context, tenantID string, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payment_history WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *repository) ReceiptDetails(ctx context.Context, tenantID string, paymentID int) (*ReceiptDetails, error) {
	query := `
		SELECT u.name AS member_name, u.email_id AS member_email, sp.name AS plan_name, t.name AS tenant_name
		FROM payment_history p
		JOIN users u ON u.id = p.user_id
		JOIN user_subscription_plan_mappings m ON m.id = p.mapping_id
		JOIN subscription_plans sp ON sp.id = m.subscription_plan_id
		JOIN tenants t ON t.id = p.tenant_id
		WHERE p.tenant_id = $1 AND p.id = $2
	`

	var d ReceiptDetails
	if err := r.db.GetContext(ctx, &d, query, tenantID, paymentID); err != nil {
		return nil, db.WrapError(err, ErrPaymentNotFound)
	}
	return &d, nil
}
