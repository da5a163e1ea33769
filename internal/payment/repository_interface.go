package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Record admits and inserts p in one transaction and returns what is
	// still pending on the mapping afterwards. attach runs once the amount
	// is admitted and before the insert; it may set p.ImagePath.
	Record(ctx context.Context, p *Payment, attach func(p *Payment) error) (decimal.Decimal, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]Payment, error)
	GetByID(ctx context.Context, tenantID string, id int) (*Payment, error)
	// Update re-runs the admission check without the payment's own previous
	// amount before writing p.
	Update(ctx context.Context, p *Payment) (decimal.Decimal, error)
	Delete(ctx context.Context, tenantID string, id int) error
	ReceiptDetails(ctx context.Context, tenantID string, paymentID int) (*ReceiptDetails, error)
}
