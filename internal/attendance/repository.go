package attendance

import (
	"context"
	"fmt"
	"strings"

	"memberdesk/internal/api"
	"memberdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const dayConstraint = "attendance_tenant_user_day_key"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const attendanceColumns = `id, tenant_id, user_id, attendance_date, check_in, check_in_by, check_out, check_out_by`

func (r *repository) UserExists(ctx context.Context, tenantID string, userID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE tenant_id = $1 AND id = $2)`, tenantID, userID)
}

func (r *repository) SystemUserExists(ctx context.Context, tenantID string, id int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM system_users WHERE tenant_id = $1 AND id = $2)`, tenantID, id)
}

func (r *repository) CheckIn(ctx context.Context, a *Attendance) error {
	query := `
		INSERT INTO attendance (tenant_id, user_id, attendance_date, check_in, check_in_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		a.TenantID, a.UserID, a.AttendanceDate, a.CheckIn, a.CheckInBy,
	).Scan(&a.ID)
	if db.IsUniqueViolation(err, dayConstraint) {
		return ErrAlreadyCheckedIn
	}
	return err
}

func (r *repository) GetForDay(ctx context.Context, tenantID string, userID int, day api.Date) (*Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance
		WHERE tenant_id = $1 AND user_id = $2 AND attendance_date = $3`

	var a Attendance
	if err := r.db.GetContext(ctx, &a, query, tenantID, userID, day); err != nil {
		return nil, db.WrapError(err, ErrNotCheckedIn)
	}
	return &a, nil
}

func (r *repository) CheckOut(ctx context.Context, a *Attendance) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE attendance SET check_out = $3, check_out_by = $4
		WHERE tenant_id = $1 AND id = $2 AND check_out IS NULL
	`, a.TenantID, a.ID, a.CheckOut, a.CheckOutBy)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAlreadyCheckedOut
	}
	return nil
}

func (r *repository) List(ctx context.Context, tenantID string, filter ListFilter) ([]Entry, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT a.id, a.tenant_id, a.user_id, a.attendance_date, a.check_in, a.check_in_by,
		       a.check_out, a.check_out_by, u.name AS user_name,
		       si.full_name AS check_in_by_name, so.full_name AS check_out_by_name
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		JOIN system_users si ON si.id = a.check_in_by
		LEFT JOIN system_users so ON so.id = a.check_out_by
		WHERE a.tenant_id = $1`)

	args := []interface{}{tenantID}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		fmt.Fprintf(&sb, " AND a.attendance_date = $%d", len(args))
	}
	if filter.UserID > 0 {
		args = append(args, filter.UserID)
		fmt.Fprintf(&sb, " AND a.user_id = $%d", len(args))
	}
	sb.WriteString(" ORDER BY a.check_in DESC, a.id DESC")

	entries := []Entry{}
	if err := r.db.SelectContext(ctx, &entries, sb.String(), args...); err != nil {
		return nil, err
	}
	return entries, nil
}

