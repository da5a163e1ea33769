package systemuser

type SystemUser struct {
	ID           int     `db:"id" json:"Id"`
	TenantID     string  `db:"tenant_id" json:"TenantId"`
	FullName     string  `db:"full_name" json:"FullName"`
	MobileNumber *string `db:"mobile_number" json:"MobileNumber"`
	UserName     string  `db:"user_name" json:"UserName"`
	PasswordHash string  `db:"password_hash" json:"-"`
	Role         string  `db:"role" json:"Role"`
}

type CreateSystemUserRequest struct {
	FullName     string  `json:"FullName" binding:"required,max=100"`
	MobileNumber *string `json:"MobileNumber" binding:"omitempty,max=20"`
	UserName     string  `json:"UserName" binding:"required,max=50"`
	Password     string  `json:"Password" binding:"required,min=6"`
	Role         string  `json:"Role" binding:"required,max=30"`
}

type SystemUserPatch struct {
	FullName     *string `json:"FullName" binding:"omitempty,max=100"`
	MobileNumber *string `json:"MobileNumber" binding:"omitempty,max=20"`
	UserName     *string `json:"UserName" binding:"omitempty,max=50"`
	Password     *string `json:"Password" binding:"omitempty,min=6"`
	Role         *string `json:"Role" binding:"omitempty,max=30"`
}

// Apply copies the present fields onto u. Password is hashed by the service.
func (p SystemUserPatch) Apply(u *SystemUser) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.MobileNumber != nil {
		u.MobileNumber = p.MobileNumber
	}
	if p.UserName != nil {
		u.UserName = *p.UserName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
