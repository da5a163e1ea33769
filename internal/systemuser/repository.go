package systemuser

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

const systemUserColumns = `id, tenant_id, full_name, mobile_number, user_name, password_hash, role`

func (r *repository) Create(ctx context.Context, u *SystemUser) error {
	query := `
		INSERT INTO system_users (tenant_id, full_name, mobile_number, user_name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		u.TenantID, u.FullName, u.MobileNumber, u.UserName, u.PasswordHash, u.Role,
	).Scan(&u.ID)
	return db.WrapError(err, nil)
}

func (r *repository) List(ctx context.Context, tenantID string) ([]SystemUser, error) {
	query := `SELECT ` + systemUserColumns + ` FROM system_users WHERE tenant_id = $1 ORDER BY id`

	users := []SystemUser{}
	if err := r.db.SelectContext(ctx, &users, query, tenantID); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID string, id int) (*SystemUser, error) {
	query := `SELECT ` + systemUserColumns + ` FROM system_users WHERE tenant_id = $1 AND id = $2`

	var u SystemUser
	if err := r.db.GetContext(ctx, &u, query, tenantID, id); err != nil {
		return nil, db.WrapError(err, ErrSystemUserNotFound)
	}
	return &u, nil
}

func (r *repository) Update(ctx context.Context, u *SystemUser) error {
	query := `
		UPDATE system_users
		SET full_name = $3, mobile_number = $4, user_name = $5, password_hash = $6, role = $7
		WHERE tenant_id = $1 AND id = $2
	`

	res, err := r.db.ExecContext(ctx, query,
		u.TenantID, u.ID, u.FullName, u.MobileNumber, u.UserName, u.PasswordHash, u.Role,
	)
	if err != nil {
		return db.WrapError(err, nil)
	}
	return requireRow(res.RowsAffected())
}

func (r *repository) Delete(ctx context.Context, tenantID string, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM system_users WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrSystemUserInUse
		}
		return err
	}
	return requireRow(res.RowsAffected())
}

func requireRow(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSystemUserNotFound
	}
	return nil
}
