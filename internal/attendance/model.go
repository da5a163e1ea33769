package attendance

import (
	"time"

	"memberdesk/internal/api"
)

// TimeLayout renders check-in and check-out times.
const TimeLayout = "02 Jan 2006, 15:04"

type Attendance struct {
	ID             int        `db:"id" json:"Id"`
	TenantID       string     `db:"tenant_id" json:"TenantId"`
	UserID         int        `db:"user_id" json:"UserId"`
	AttendanceDate api.Date   `db:"attendance_date" json:"AttendanceDate" swaggertype:"string" example:"10 Mar 2025"`
	CheckIn        time.Time  `db:"check_in" json:"CheckIn"`
	CheckInBy      int        `db:"check_in_by" json:"CheckInBy"`
	CheckOut       *time.Time `db:"check_out" json:"CheckOut"`
	CheckOutBy     *int       `db:"check_out_by" json:"CheckOutBy"`
}

// Entry is an attendance row joined with the member and staff names.
type Entry struct {
	Attendance
	UserName       string  `db:"user_name"`
	CheckInByName  string  `db:"check_in_by_name"`
	CheckOutByName *string `db:"check_out_by_name"`
}

// Record is the list view of an attendance row, times rendered in the
// business timezone.
type Record struct {
	ID             int     `json:"Id"`
	UserID         int     `json:"UserId"`
	UserName       string  `json:"UserName"`
	AttendanceDate string  `json:"AttendanceDate" example:"10 Mar 2025"`
	CheckIn        string  `json:"CheckIn" example:"10 Mar 2025, 07:05"`
	CheckInBy      int     `json:"CheckInBy"`
	CheckInByName  string  `json:"CheckInByName"`
	CheckOut       *string `json:"CheckOut" example:"10 Mar 2025, 08:40"`
	CheckOutBy     *int    `json:"CheckOutBy"`
	CheckOutByName *string `json:"CheckOutByName"`
}

// MarkRequest checks a member in or out. Exactly one of CheckInBy and
// CheckOutBy names the acting system user.
type MarkRequest struct {
	UserID     int  `json:"UserId" binding:"required,gt=0"`
	CheckInBy  *int `json:"CheckInBy" binding:"omitempty,gt=0"`
	CheckOutBy *int `json:"CheckOutBy" binding:"omitempty,gt=0"`
}

type ListFilter struct {
	Date   *api.Date
	UserID int
}

type MarkResponse struct {
	Message    string      `json:"message" example:"Checked in successfully"`
	Attendance *Attendance `json:"attendance"`
}
