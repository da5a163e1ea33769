package subscription

import (
	"time"

	"memberdesk/internal/api"

	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"

	// NotApplicable is reported as PendingDue once a mapping is fully paid.
	NotApplicable = "NA"
)

type Balance struct {
	MappingID     int             `json:"MappingId"`
	Price         decimal.Decimal `json:"Price" swaggertype:"string" example:"1000"`
	TotalPaid     decimal.Decimal `json:"TotalPaid" swaggertype:"string" example:"400"`
	PendingDue    string          `json:"PendingDue" example:"600"`
	PendingAmount decimal.Decimal `json:"PendingAmount" swaggertype:"string" example:"600"`
	Status        string          `json:"Status" example:"Active"`
	DueDate       *string         `json:"DueDate" example:"31 Mar 2025"`
}

// Resolve computes the outstanding balance and status of m given the amounts
// already received against it. ValidUntil is read as midnight at the start
// of that day in now's location, so callers should pass now in the business
// timezone.
func Resolve(m Mapping, payments []decimal.Decimal, now time.Time) Balance {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p)
	}

	b := Balance{
		MappingID:     m.ID,
		Price:         m.Price,
		TotalPaid:     paid,
		PendingDue:    NotApplicable,
		PendingAmount: decimal.Zero,
		Status:        StatusInactive,
	}

	if pending := m.Price.Sub(paid); pending.IsPositive() {
		b.PendingDue = pending.String()
		b.PendingAmount = pending
	}

	if current(m.ValidUntil, now) {
		due := m.ValidUntil.Format(api.DisplayDateLayout)
		b.DueDate = &due
		if m.IsActive {
			b.Status = StatusActive
		}
	}
	return b
}

// IsActive reports whether m counts as active at now.
func IsActive(m Mapping, now time.Time) bool {
	return m.IsActive && current(m.ValidUntil, now)
}

func current(validUntil api.Date, now time.Time) bool {
	return !validUntil.IsZero() && validUntil.In(now.Location()).After(now)
}
