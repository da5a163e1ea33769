package tenant

import "time"

type Tenant struct {
	ID           string    `db:"id" json:"Id"`
	GUID         string    `db:"guid" json:"guid"`
	Name         string    `db:"name" json:"Name"`
	UserName     string    `db:"user_name" json:"username"`
	EmailID      string    `db:"email_id" json:"EmailId"`
	MobileNo     string    `db:"mobile_no" json:"MobileNo"`
	Location     string    `db:"location" json:"Location"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"CreatedAt"`
}

type CreateTenantRequest struct {
	ID       string `json:"Id" binding:"omitempty,max=10,alphanum"`
	Name     string `json:"Name" binding:"required,max=100"`
	UserName string `json:"username" binding:"required,max=50"`
	EmailID  string `json:"EmailId" binding:"required,email"`
	MobileNo string `json:"MobileNo" binding:"required,max=20"`
	Location string `json:"Location" binding:"max=200"`
	Password string `json:"Password" binding:"required,min=6"`
}

// TenantPatch is a partial update. Nil fields keep their stored value.
type TenantPatch struct {
	Name     *string `json:"Name" binding:"omitempty,max=100"`
	UserName *string `json:"username" binding:"omitempty,max=50"`
	EmailID  *string `json:"EmailId" binding:"omitempty,email"`
	MobileNo *string `json:"MobileNo" binding:"omitempty,max=20"`
	Location *string `json:"Location" binding:"omitempty,max=200"`
	Password *string `json:"Password" binding:"omitempty,min=6"`
}

// Apply copies the present fields onto t. Password is handled by the
// service since it has to be hashed.
func (p TenantPatch) Apply(t *Tenant) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.UserName != nil {
		t.UserName = *p.UserName
	}
	if p.EmailID != nil {
		t.EmailID = *p.EmailID
	}
	if p.MobileNo != nil {
		t.MobileNo = *p.MobileNo
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
}

type ValidateRequest struct {
	EmailID  string `json:"EmailId" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

type ValidateResponse struct {
	Tenant       Tenant `json:"Tenant"`
	AccessToken  string `json:"AccessToken"`
	RefreshToken string `json:"RefreshToken"`
}

type RefreshRequest struct {
	RefreshToken string `json:"RefreshToken" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"AccessToken"`
}
