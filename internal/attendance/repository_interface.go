package attendance

import (
	"context"

	"memberdesk/internal/api"
)

type Repository interface {
	UserExists(ctx context.Context, tenantID string, userID int) (bool, error)
	SystemUserExists(ctx context.Context, tenantID string, id int) (bool, error)
	// CheckIn inserts the day's row. A second row for the same member and
	// day fails with ErrAlreadyCheckedIn.
	CheckIn(ctx context.Context, a *Attendance) error
	GetForDay(ctx context.Context, tenantID string, userID int, day api.Date) (*Attendance, error)
	// CheckOut stamps the check-out of an open row. It fails with
	// ErrAlreadyCheckedOut when the row was closed in the meantime.
	CheckOut(ctx context.Context, a *Attendance) error
	List(ctx context.Context, tenantID string, filter ListFilter) ([]Entry, error)
}
