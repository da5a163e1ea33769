package userdetail

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"memberdesk/internal/api"
	"memberdesk/internal/attendance"
	"memberdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

// likeEscaper makes a search term match literally inside an ILIKE pattern.
// Backslash is the default LIKE escape character in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Search(ctx context.Context, tenantID string, req SearchRequest) ([]Member, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, mobile_no, profile_image_path FROM users WHERE tenant_id = $1`)

	args := []interface{}{tenantID}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		args = append(args, likeEscaper.Replace(strings.TrimSpace(*req.Name)))
		fmt.Fprintf(&sb, ` AND name ILIKE '%%' || $%d || '%%'`, len(args))
	}
	if req.MobileNo != nil && strings.TrimSpace(*req.MobileNo) != "" {
		args = append(args, strings.TrimSpace(*req.MobileNo))
		fmt.Fprintf(&sb, " AND mobile_no = $%d", len(args))
	}
	sb.WriteString(" ORDER BY name, id")

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, sb.String(), args...); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) GetMember(ctx context.Context, tenantID string, id int) (*Member, error) {
	var m Member
	err := r.db.GetContext(ctx, &m,
		`SELECT id, name, mobile_no, profile_image_path FROM users WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)
	if err != nil {
		return nil, db.WrapError(err, ErrUserNotFound)
	}
	return &m, nil
}

func (r *repository) Subscriptions(ctx context.Context, tenantID string, userIDs []int) ([]subscriptionRow, error) {
	rows := []subscriptionRow{}
	if len(userIDs) == 0 {
		return rows, nil
	}

	query, args, err := sqlx.In(`
		SELECT m.id, m.user_id, m.price, m.valid_until, m.is_active,
		       sp.name AS plan_name, sp.shortcode,
		       COALESCE((SELECT SUM(p.amount_received) FROM payment_history p WHERE p.mapping_id = m.id), 0) AS total_paid
		FROM user_subscription_plan_mappings m
		JOIN subscription_plans sp ON sp.id = m.subscription_plan_id
		WHERE m.tenant_id = ? AND m.user_id IN (?)
		ORDER BY m.user_id, m.valid_until DESC, m.id DESC
	`, tenantID, userIDs)
	if err != nil {
		return nil, err
	}

	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Attendance(ctx context.Context, tenantID string, userID int, day api.Date) (*attendance.Attendance, error) {
	var a attendance.Attendance
	err := r.db.GetContext(ctx, &a, `
		SELECT id, tenant_id, user_id, attendance_date, check_in, check_in_by, check_out, check_out_by
		FROM attendance
		WHERE tenant_id = $1 AND user_id = $2 AND attendance_date = $3
	`, tenantID, userID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
