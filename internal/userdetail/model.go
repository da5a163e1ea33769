package userdetail

import (
	"memberdesk/internal/api"

	"github.com/shopspring/decimal"
)

type SearchRequest struct {
	Name     *string `json:"Name" binding:"omitempty,max=100"`
	MobileNo *string `json:"MobileNo" binding:"omitempty,max=20"`
}

type Member struct {
	ID               int     `db:"id" json:"Id"`
	Name             string  `db:"name" json:"Name"`
	MobileNo         string  `db:"mobile_no" json:"MobileNo"`
	ProfileImagePath *string `db:"profile_image_path" json:"ProfileImagePath"`
}

// Subscription is a mapping as shown on the member screens.
type Subscription struct {
	ID         int     `json:"Id"`
	PlanName   string  `json:"PlanName"`
	Shortcode  string  `json:"Shortcode"`
	Status     string  `json:"Status" example:"Active"`
	DueDate    *string `json:"DueDate" example:"31 Mar 2025"`
	PendingDue string  `json:"PendingDue" example:"600"`
}

type MemberSummary struct {
	Member
	Subscriptions []Subscription `json:"Subscriptions"`
}

type TodayAttendance struct {
	CheckIn    string  `json:"CheckIn" example:"10 Mar 2025, 07:05"`
	CheckInBy  int     `json:"CheckInBy"`
	CheckOut   *string `json:"CheckOut"`
	CheckOutBy *int    `json:"CheckOutBy"`
}

type MemberDetail struct {
	Member
	CheckedIn     bool             `json:"CheckedIn"`
	CheckedOut    bool             `json:"CheckedOut"`
	Subscriptions []Subscription   `json:"Subscriptions"`
	Attendance    *TodayAttendance `json:"Attendance"`
}

// subscriptionRow is a mapping with its plan and the sum paid against it.
type subscriptionRow struct {
	ID         int             `db:"id"`
	UserID     int             `db:"user_id"`
	Price      decimal.Decimal `db:"price"`
	ValidUntil api.Date        `db:"valid_until"`
	IsActive   bool            `db:"is_active"`
	PlanName   string          `db:"plan_name"`
	Shortcode  string          `db:"shortcode"`
	TotalPaid  decimal.Decimal `db:"total_paid"`
}
