package user

import (
	"net/http"

	"memberdesk/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List members
// @Tags         users
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Success      200 {array} user.User
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{tenantId} [get]
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context(), api.TenantID(c))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary      Get a member
// @Tags         users
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        userId path int true "User ID"
// @Success      200 {object} user.User
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{tenantId}/{userId} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "userId")
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), api.TenantID(c), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary      Create a member
// @Description  Multipart form. ProfileImagePath and AadharImagePath are optional files (JPEG, PNG, PDF, text or Word).
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        Name formData string true "Full name"
// @Param        MobileNo formData string true "Mobile number"
// @Param        EmailId formData string true "Email"
// @Param        Gender formData string true "Gender"
// @Param        Location formData string true "Location"
// @Param        DOB formData string true "Date of birth, YYYY-MM-DD"
// @Param        Wing formData string false "Wing"
// @Param        RoomNo formData string false "Room number"
// @Param        PermanentAddress formData string false "Permanent address"
// @Param        PresentAddress formData string false "Present address"
// @Param        IsTrainer formData bool false "Member is a trainer"
// @Param        CreatedBy formData string false "Created by"
// @Param        ProfileImagePath formData file false "Profile image"
// @Param        AadharImagePath formData file false "ID document"
// @Success      201 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{tenantId} [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		api.RespondBindError(c, err)
		return
	}

	var images Images
	var err error
	if images.Profile, err = api.FormFile(c, ProfileImageField); err != nil {
		api.RespondBindError(c, err)
		return
	}
	if images.Aadhar, err = api.FormFile(c, AadharImageField); err != nil {
		api.RespondBindError(c, err)
		return
	}

	u, err := h.service.Create(c.Request.Context(), api.TenantID(c), req, images)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// @Summary      Update a member
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        userId path int true "User ID"
// @Param        request body user.UserPatch true "Fields to change"
// @Success      200 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{tenantId}/{userId} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "userId")
	if !ok {
		return
	}

	var patch UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.RespondBindError(c, err)
		return
	}

	u, err := h.service.Update(c.Request.Context(), api.TenantID(c), id, patch)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary      Delete a member
// @Description  Also removes the member's subscriptions, payments, attendance and uploaded files.
// @Tags         users
// @Param        tenantId path string true "Tenant ID"
// @Param        userId path int true "User ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{tenantId}/{userId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), api.TenantID(c), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
