package plan

import "github.com/shopspring/decimal"

type Plan struct {
	ID        int             `db:"id" json:"Id"`
	TenantID  string          `db:"tenant_id" json:"TenantId"`
	Name      string          `db:"name" json:"Name"`
	Shortcode string          `db:"shortcode" json:"Shortcode"`
	Amount    decimal.Decimal `db:"amount" json:"Amount" swaggertype:"string" example:"1000"`
	Days      int             `db:"days" json:"Days"`
	IsActive  bool            `db:"is_active" json:"IsActive"`
	Sessions  *int            `db:"sessions" json:"Sessions"`
}

type CreatePlanRequest struct {
	Name      string           `json:"Name" binding:"required,max=100"`
	Shortcode string           `json:"Shortcode" binding:"required,max=20"`
	Amount    *decimal.Decimal `json:"Amount" binding:"required" swaggertype:"string" example:"1000"`
	Days      int              `json:"Days" binding:"required,gte=1"`
	IsActive  *bool            `json:"IsActive"`
	Sessions  *int             `json:"Sessions" binding:"omitempty,gte=0"`
}

// PlanPatch is a partial update. Nil fields keep their stored value; an
// explicit false or 0 is applied.
type PlanPatch struct {
	Name      *string          `json:"Name" binding:"omitempty,max=100"`
	Shortcode *string          `json:"Shortcode" binding:"omitempty,max=20"`
	Amount    *decimal.Decimal `json:"Amount" swaggertype:"string"`
	Days      *int             `json:"Days" binding:"omitempty,gte=1"`
	IsActive  *bool            `json:"IsActive"`
	Sessions  *int             `json:"Sessions" binding:"omitempty,gte=0"`
}

func (p PlanPatch) Apply(pl *Plan) {
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.Shortcode != nil {
		pl.Shortcode = *p.Shortcode
	}
	if p.Amount != nil {
		pl.Amount = *p.Amount
	}
	if p.Days != nil {
		pl.Days = *p.Days
	}
	if p.IsActive != nil {
		pl.IsActive = *p.IsActive
	}
	if p.Sessions != nil {
		sessions := *p.Sessions
		pl.Sessions = &sessions
	}
}
