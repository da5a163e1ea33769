package user

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

const userColumns = `id, tenant_id, name, wing, room_no, mobile_no, email_id, gender, aadhar_image_path,
	permanent_address, present_address, location, profile_image_path, dob, is_trainer,
	created_by, created_date, updated_by, updated_date`

func (r *repository) Create(ctx context.Context, u *User, attach func(u *User) error) error {
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO users
				(tenant_id, name, wing, room_no, mobile_no, email_id, gender, permanent_address,
				 present_address, location, dob, is_trainer, created_by, created_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id
		`,
			u.TenantID, u.Name, u.Wing, u.RoomNo, u.MobileNo, u.EmailID, u.Gender, u.PermanentAddress,
			u.PresentAddress, u.Location, u.DOB, u.IsTrainer, u.CreatedBy, u.CreatedDate,
		).Scan(&u.ID)
		if err != nil {
			return err
		}

		if attach == nil {
			return nil
		}
		if err := attach(u); err != nil {
			return err
		}
		if u.ProfileImagePath == nil && u.AadharImagePath == nil {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE users SET profile_image_path = $2, aadhar_image_path = $3 WHERE id = $1
		`, u.ID, u.ProfileImagePath, u.AadharImagePath)
		return err
	})
	return db.WrapError(err, nil)
}

func (r *repository) List(ctx context.Context, tenantID string) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 ORDER BY id`

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query, tenantID); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID string, id int) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 AND id = $2`

	var u User
	if err := r.db.GetContext(ctx, &u, query, tenantID, id); err != nil {
		return nil, db.WrapError(err, ErrUserNotFound)
	}
	return &u, nil
}

func (r *repository) Update(ctx context.Context, u *User) error {
	query := `
		UPDATE users
		SET name = $3, wing = $4, room_no = $5, mobile_no = $6, email_id = $7, gender = $8,
		    permanent_address = $9, present_address = $10, location = $11, dob = $12,
		    is_trainer = $13, updated_by = $14, updated_date = $15
		WHERE tenant_id = $1 AND id = $2
	`

	res, err := r.db.ExecContext(ctx, query,
		u.TenantID, u.ID, u.Name, u.Wing, u.RoomNo, u.MobileNo, u.EmailID, u.Gender,
		u.PermanentAddress, u.PresentAddress, u.Location, u.DOB,
		u.IsTrainer, u.UpdatedBy, u.UpdatedDate,
	)
	if err != nil {
		return db.WrapError(err, nil)
	}
	return requireRow(res.RowsAffected())
}

func (r *repository) Delete(ctx context.Context, tenantID string, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	return requireRow(res.RowsAffected())
}

func requireRow(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
