package systemuser

import (
	"net/http"

	"memberdesk/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Create a system user
// @Tags         system-users
// @Accept       json
// @Produce      json
// @Param        tenantId header string true "Tenant ID"
// @Param        request body systemuser.CreateSystemUserRequest true "Staff account"
// @Success      201 {object} systemuser.SystemUser
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /system-users/ [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateSystemUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	u, err := h.service.Create(c.Request.Context(), api.TenantID(c), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// @Summary      List system users
// @Tags         system-users
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Success      200 {array} systemuser.SystemUser
// @Failure      404 {object} api.ErrorResponse
// @Router       /system-users/{tenantId} [get]
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context(), api.TenantID(c))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary      Get a system user
// @Tags         system-users
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        userId path int true "System user ID"
// @Success      200 {object} systemuser.SystemUser
// @Failure      404 {object} api.ErrorResponse
// @Router       /system-users/{tenantId}/{userId} [get]
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

// @Summary      Update a system user
// @Tags         system-users
// @Accept       json
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        userId path int true "System user ID"
// @Param        request body systemuser.SystemUserPatch true "Fields to change"
// @Success      200 {object} systemuser.SystemUser
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /system-users/{tenantId}/{userId} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "userId")
	if !ok {
		return
	}

	var patch SystemUserPatch
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

// @Summary      Delete a system user
// @Tags         system-users
// @Param        tenantId path string true "Tenant ID"
// @Param        userId path int true "System user ID"
// @Success      204
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /system-users/{tenantId}/{userId} [delete]
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
