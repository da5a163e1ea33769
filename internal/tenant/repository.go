package tenant

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

const tenantColumns = `id, guid, name, user_name, email_id, mobile_no, location, password_hash, created_at`

func (r *repository) Create(ctx context.Context, t *Tenant) error {
	query := `
		INSERT INTO tenants (id, guid, name, user_name, email_id, mobile_no, location, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		t.ID, t.GUID, t.Name, t.UserName, t.EmailID, t.MobileNo, t.Location, t.PasswordHash,
	).Scan(&t.CreatedAt)
	return db.WrapError(err, nil)
}

func (r *repository) List(ctx context.Context) ([]Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at DESC`

	tenants := []Tenant{}
	if err := r.db.SelectContext(ctx, &tenants, query); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`

	var t Tenant
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, db.WrapError(err, ErrTenantNotFound)
	}
	return &t, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE email_id = $1`

	var t Tenant
	if err := r.db.GetContext(ctx, &t, query, email); err != nil {
		return nil, db.WrapError(err, ErrTenantNotFound)
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Tenant) error {
	query := `
		UPDATE tenants
		SET name = $2, user_name = $3, email_id = $4, mobile_no = $5, location = $6, password_hash = $7
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.UserName, t.EmailID, t.MobileNo, t.Location, t.PasswordHash,
	)
	if err != nil {
		return db.WrapError(err, nil)
	}
	return requireRow(res.RowsAffected())
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res.RowsAffected())
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1)`, id)
}

func requireRow(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTenantNotFound
	}
	return nil
}
