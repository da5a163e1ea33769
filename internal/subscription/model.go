package subscription

import (
	"time"

	"memberdesk/internal/api"

	"github.com/shopspring/decimal"
)

// Mapping is a plan purchased by a member, with its own price and validity.
type Mapping struct {
	ID                 int             `db:"id" json:"Id"`
	TenantID           string          `db:"tenant_id" json:"TenantId"`
	UserID             int             `db:"user_id" json:"UserId"`
	SubscriptionPlanID int             `db:"subscription_plan_id" json:"SubscriptionPlanId"`
	EffectiveDate      api.Date        `db:"effective_date" json:"EffectiveDate" swaggertype:"string" example:"01 Mar 2025"`
	ValidUntil         api.Date        `db:"valid_until" json:"ValidUntil" swaggertype:"string" example:"31 Mar 2025"`
	Price              decimal.Decimal `db:"price" json:"Price" swaggertype:"string" example:"1000"`
	DiscountCoupon     *string         `db:"discount_coupon" json:"DiscountCoupon"`
	IsActive           bool            `db:"is_active" json:"isActive"`
	DeactivateDate     *api.Date       `db:"deactivate_date" json:"DeactivateDate" swaggertype:"string"`
	ReactivateDate     *api.Date       `db:"reactivate_date" json:"ReactivateDate" swaggertype:"string"`
	Remarks            *string         `db:"remarks" json:"Remarks"`
	CreatedBy          *string         `db:"created_by" json:"CreatedBy"`
	UpdatedBy          *string         `db:"updated_by" json:"UpdatedBy"`
	CreatedAt          time.Time       `db:"created_at" json:"CreatedAt"`
	UpdatedAt          time.Time       `db:"updated_at" json:"UpdatedAt"`
}

type CreateMappingRequest struct {
	UserID             int              `json:"UserId" binding:"required,gt=0"`
	SubscriptionPlanID int              `json:"SubscriptionPlanId" binding:"required,gt=0"`
	EffectiveDate      api.Date         `json:"EffectiveDate" swaggertype:"string" example:"2025-03-01"`
	ValidUntil         *api.Date        `json:"ValidUntil" swaggertype:"string" example:"2025-03-31"`
	Price              *decimal.Decimal `json:"Price" swaggertype:"string" example:"1000"`
	DiscountCoupon     *string          `json:"DiscountCoupon" binding:"omitempty,max=50"`
	IsActive           *bool            `json:"isActive"`
	Remarks            *string          `json:"Remarks" binding:"omitempty,max=500"`
	CreatedBy          *string          `json:"CreatedBy" binding:"omitempty,max=50"`
}

// MappingPatch is a partial update. Nil fields keep their stored value.
type MappingPatch struct {
	SubscriptionPlanID *int             `json:"SubscriptionPlanId" binding:"omitempty,gt=0"`
	EffectiveDate      *api.Date        `json:"EffectiveDate" swaggertype:"string" example:"2025-03-01"`
	ValidUntil         *api.Date        `json:"ValidUntil" swaggertype:"string" example:"2025-03-31"`
	Price              *decimal.Decimal `json:"Price" swaggertype:"string"`
	DiscountCoupon     *string          `json:"DiscountCoupon" binding:"omitempty,max=50"`
	IsActive           *bool            `json:"isActive"`
	Remarks            *string          `json:"Remarks" binding:"omitempty,max=500"`
	UpdatedBy          *string          `json:"UpdatedBy" binding:"omitempty,max=50"`
}

// Apply copies every set field onto m. Activation stamps are handled by the
// service since they depend on the previous state and the clock.
func (p MappingPatch) Apply(m *Mapping) {
	if p.SubscriptionPlanID != nil {
		m.SubscriptionPlanID = *p.SubscriptionPlanID
	}
	if p.EffectiveDate != nil {
		m.EffectiveDate = *p.EffectiveDate
	}
	if p.ValidUntil != nil {
		m.ValidUntil = *p.ValidUntil
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.DiscountCoupon != nil {
		m.DiscountCoupon = p.DiscountCoupon
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
	if p.Remarks != nil {
		m.Remarks = p.Remarks
	}
	if p.UpdatedBy != nil {
		m.UpdatedBy = p.UpdatedBy
	}
}
