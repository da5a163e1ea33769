package tenant

import (
	"errors"
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

// @Summary      Create a tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request body tenant.CreateTenantRequest true "Tenant payload"
// @Success      201 {object} tenant.Tenant
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /tenants [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// @Summary      List tenants
// @Description  Not served when AUTH_ENABLED is set.
// @Tags         tenants
// @Produce      json
// @Success      200 {array} tenant.Tenant
// @Failure      500 {object} api.ErrorResponse
// @Router       /tenants [get]
func (h *Handler) List(c *gin.Context) {
	tenants, err := h.service.List(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// @Summary      Get a tenant
// @Description  With AUTH_ENABLED, requires an access token issued for this tenant.
// @Tags         tenants
// @Produce      json
// @Param        id path string true "Tenant ID"
// @Success      200 {object} tenant.Tenant
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /tenants/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	t, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      Update a tenant
// @Description  With AUTH_ENABLED, requires an access token issued for this tenant.
// @Description  Partial update: omitted fields keep their stored value.
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id path string true "Tenant ID"
// @Param        request body tenant.TenantPatch true "Fields to change"
// @Success      200 {object} tenant.Tenant
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /tenants/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var patch TenantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.RespondBindError(c, err)
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      Delete a tenant
// @Description  With AUTH_ENABLED, requires an access token issued for this tenant.
// @Tags         tenants
// @Param        id path string true "Tenant ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /tenants/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary      Validate tenant credentials
// @Description  Checks EmailId and Password and returns the tenant with a token pair.
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request body tenant.ValidateRequest true "Credentials"
// @Success      200 {object} tenant.ValidateResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /tenants/validate [post]
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Validate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary      Refresh an access token
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request body tenant.RefreshRequest true "Refresh token"
// @Success      200 {object} tenant.RefreshResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /tenants/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	token, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{AccessToken: token})
}
