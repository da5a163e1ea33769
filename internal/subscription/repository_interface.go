package subscription

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, m *Mapping) error
	List(ctx context.Context, tenantID string) ([]Mapping, error)
	GetByID(ctx context.Context, tenantID string, id int) (*Mapping, error)
	Update(ctx context.Context, m *Mapping) error
	Delete(ctx context.Context, tenantID string, id int) error
	UserExists(ctx context.Context, tenantID string, userID int) (bool, error)
	PaymentAmounts(ctx context.Context, tenantID string, mappingID int) ([]decimal.Decimal, error)
	CountActive(ctx context.Context, now time.Time) (map[string]int, error)
}
