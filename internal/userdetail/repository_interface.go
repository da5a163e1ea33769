package userdetail

import (
	"context"

	"memberdesk/internal/api"
	"memberdesk/internal/attendance"
)

type Repository interface {
	Search(ctx context.Context, tenantID string, req SearchRequest) ([]Member, error)
	GetMember(ctx context.Context, tenantID string, id int) (*Member, error)
	Subscriptions(ctx context.Context, tenantID string, userIDs []int) ([]subscriptionRow, error)
	// Attendance returns the member's row for day, or nil when there is none.
	Attendance(ctx context.Context, tenantID string, userID int, day api.Date) (*attendance.Attendance, error)
}
