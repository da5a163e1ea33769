package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeCash   = "C"
	TypeOnline = "O"

	// ReceiptField is the multipart field carrying the receipt file.
	ReceiptField = "imagePath"
)

type Payment struct {
	ID               int             `db:"id" json:"Id"`
	TenantID         string          `db:"tenant_id" json:"TenantId"`
	UserID           int             `db:"user_id" json:"UserId"`
	MappingID        int             `db:"mapping_id" json:"MappingId"`
	TransactionRefID *string         `db:"transaction_ref_id" json:"TransactionRefId"`
	AmountReceived   decimal.Decimal `db:"amount_received" json:"AmountReceived" swaggertype:"string" example:"400"`
	PaymentType      string          `db:"payment_type" json:"PaymentType" example:"C"`
	ImagePath        *string         `db:"image_path" json:"imagePath"`
	PaymentDate      time.Time       `db:"payment_date" json:"PaymentDate"`
	CreatedBy        *string         `db:"created_by" json:"CreatedBy"`
	CreatedDate      time.Time       `db:"created_date" json:"CreatedDate"`
	UpdatedBy        *string         `db:"updated_by" json:"UpdatedBy"`
	UpdatedDate      *time.Time      `db:"updated_date" json:"UpdatedDate"`

	// Filled by List only.
	MemberName string `db:"member_name" json:"MemberName,omitempty"`
	PlanName   string `db:"plan_name" json:"PlanName,omitempty"`
}

// RecordRequest is the multipart form of POST /payment-history/. The receipt
// file travels in the imagePath field.
type RecordRequest struct {
	UserID           int    `form:"UserId" binding:"required,gt=0"`
	MappingID        int    `form:"MappingId" binding:"required,gt=0"`
	TransactionRefID string `form:"TransactionRefId" binding:"max=100"`
	AmountReceived   string `form:"AmountReceived" binding:"required"`
	PaymentType      string `form:"PaymentType" binding:"required,oneof=C O"`
	PaymentDate      string `form:"PaymentDate"`
	CreatedBy        string `form:"CreatedBy" binding:"max=50"`
}

// PaymentPatch is a partial update. The user, mapping and receipt file of a
// payment cannot be changed.
type PaymentPatch struct {
	TransactionRefID *string          `json:"TransactionRefId" binding:"omitempty,max=100"`
	AmountReceived   *decimal.Decimal `json:"AmountReceived" swaggertype:"string"`
	PaymentType      *string          `json:"PaymentType" binding:"omitempty,oneof=C O"`
	PaymentDate      *string          `json:"PaymentDate" example:"2025-03-10"`
	UpdatedBy        *string          `json:"UpdatedBy" binding:"omitempty,max=50"`
}

func (p PaymentPatch) Apply(pm *Payment, paymentDate *time.Time) {
	if p.TransactionRefID != nil {
		pm.TransactionRefID = p.TransactionRefID
	}
	if p.AmountReceived != nil {
		pm.AmountReceived = *p.AmountReceived
	}
	if p.PaymentType != nil {
		pm.PaymentType = *p.PaymentType
	}
	if paymentDate != nil {
		pm.PaymentDate = *paymentDate
	}
	if p.UpdatedBy != nil {
		pm.UpdatedBy = p.UpdatedBy
	}
}

type ListFilter struct {
	UserID    int
	MappingID int
}

// ReceiptDetails is what the receipt email needs beyond the payment itself.
type ReceiptDetails struct {
	MemberName  string `db:"member_name"`
	MemberEmail string `db:"member_email"`
	PlanName    string `db:"plan_name"`
	TenantName  string `db:"tenant_name"`
}
