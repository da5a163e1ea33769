package events

import "time"

type PaymentRecordedData struct {
	PaymentID      int       `json:"payment_id"`
	UserID         int       `json:"user_id"`
	MappingID      int       `json:"mapping_id"`
	AmountReceived string    `json:"amount_received"`
	PaymentType    string    `json:"payment_type"`
	PendingDue     string    `json:"pending_due"`
	PaymentDate    time.Time `json:"payment_date"`
}

type AttendanceData struct {
	AttendanceID int       `json:"attendance_id"`
	UserID       int       `json:"user_id"`
	SystemUserID int       `json:"system_user_id"`
	Date         string    `json:"date"`
	At           time.Time `json:"at"`
}
