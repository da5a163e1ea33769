package user

import (
	"mime/multipart"
	"time"

	"memberdesk/internal/api"
)

// Multipart fields carrying the member's images.
const (
	ProfileImageField = "ProfileImagePath"
	AadharImageField  = "AadharImagePath"
)

type User struct {
	ID               int        `db:"id" json:"Id"`
	TenantID         string     `db:"tenant_id" json:"TenantId"`
	Name             string     `db:"name" json:"Name"`
	Wing             *string    `db:"wing" json:"Wing"`
	RoomNo           *string    `db:"room_no" json:"RoomNo"`
	MobileNo         string     `db:"mobile_no" json:"MobileNo"`
	EmailID          string     `db:"email_id" json:"EmailId"`
	Gender           string     `db:"gender" json:"Gender"`
	AadharImagePath  *string    `db:"aadhar_image_path" json:"AadharImagePath"`
	PermanentAddress *string    `db:"permanent_address" json:"PermanentAddress"`
	PresentAddress   *string    `db:"present_address" json:"PresentAddress"`
	Location         string     `db:"location" json:"Location"`
	ProfileImagePath *string    `db:"profile_image_path" json:"ProfileImagePath"`
	DOB              api.Date   `db:"dob" json:"DOB" swaggertype:"string" example:"14 Aug 1995"`
	IsTrainer        bool       `db:"is_trainer" json:"IsTrainer"`
	CreatedBy        *string    `db:"created_by" json:"CreatedBy"`
	CreatedDate      time.Time  `db:"created_date" json:"CreatedDate"`
	UpdatedBy        *string    `db:"updated_by" json:"UpdatedBy"`
	UpdatedDate      *time.Time `db:"updated_date" json:"UpdatedDate"`
}

// CreateUserRequest is the multipart form of POST /users/:tenantId.
type CreateUserRequest struct {
	Name             string `form:"Name" binding:"required,max=100"`
	Wing             string `form:"Wing" binding:"max=20"`
	RoomNo           string `form:"RoomNo" binding:"max=20"`
	MobileNo         string `form:"MobileNo" binding:"required,max=20"`
	EmailID          string `form:"EmailId" binding:"required,email,max=100"`
	Gender           string `form:"Gender" binding:"required,max=10"`
	PermanentAddress string `form:"PermanentAddress" binding:"max=500"`
	PresentAddress   string `form:"PresentAddress" binding:"max=500"`
	Location         string `form:"Location" binding:"required,max=200"`
	DOB              string `form:"DOB" binding:"required"`
	IsTrainer        bool   `form:"IsTrainer"`
	CreatedBy        string `form:"CreatedBy" binding:"max=50"`
}

// Images are the optional files sent with a new member.
type Images struct {
	Profile *multipart.FileHeader
	Aadhar  *multipart.FileHeader
}

// UserPatch is a partial update. Nil fields keep their stored value; an
// explicit "" clears an optional field.
type UserPatch struct {
	Name             *string   `json:"Name" binding:"omitempty,max=100"`
	Wing             *string   `json:"Wing" binding:"omitempty,max=20"`
	RoomNo           *string   `json:"RoomNo" binding:"omitempty,max=20"`
	MobileNo         *string   `json:"MobileNo" binding:"omitempty,max=20"`
	EmailID          *string   `json:"EmailId" binding:"omitempty,email,max=100"`
	Gender           *string   `json:"Gender" binding:"omitempty,max=10"`
	PermanentAddress *string   `json:"PermanentAddress" binding:"omitempty,max=500"`
	PresentAddress   *string   `json:"PresentAddress" binding:"omitempty,max=500"`
	Location         *string   `json:"Location" binding:"omitempty,max=200"`
	DOB              *api.Date `json:"DOB" swaggertype:"string" example:"1995-08-14"`
	IsTrainer        *bool     `json:"IsTrainer"`
	UpdatedBy        *string   `json:"UpdatedBy" binding:"omitempty,max=50"`
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Wing != nil {
		u.Wing = optional(*p.Wing)
	}
	if p.RoomNo != nil {
		u.RoomNo = optional(*p.RoomNo)
	}
	if p.MobileNo != nil {
		u.MobileNo = *p.MobileNo
	}
	if p.EmailID != nil {
		u.EmailID = *p.EmailID
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.PermanentAddress != nil {
		u.PermanentAddress = optional(*p.PermanentAddress)
	}
	if p.PresentAddress != nil {
		u.PresentAddress = optional(*p.PresentAddress)
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.DOB != nil {
		u.DOB = *p.DOB
	}
	if p.IsTrainer != nil {
		u.IsTrainer = *p.IsTrainer
	}
	if p.UpdatedBy != nil {
		u.UpdatedBy = optional(*p.UpdatedBy)
	}
}
