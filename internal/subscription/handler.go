package subscription

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

// @Summary      Subscribe a member to a plan
// @Description  Price defaults to the plan amount and ValidUntil to EffectiveDate plus the plan's days.
// @Tags         user-subscription-plan-mappings
// @Accept       json
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        request body subscription.CreateMappingRequest true "Mapping payload"
// @Success      201 {object} subscription.Mapping
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /user-subscription-plan-mappings/{tenantId} [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	m, err := h.service.Create(c.Request.Context(), api.TenantID(c), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// @Summary      List user subscription mappings
// @Tags         user-subscription-plan-mappings
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Success      200 {array} subscription.Mapping
// @Failure      404 {object} api.ErrorResponse
// @Router       /user-subscription-plan-mappings/{tenantId} [get]
func (h *Handler) List(c *gin.Context) {
	mappings, err := h.service.List(c.Request.Context(), api.TenantID(c))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mappings)
}

// @Summary      Get a user subscription mapping
// @Tags         user-subscription-plan-mappings
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        id path int true "Mapping ID"
// @Success      200 {object} subscription.Mapping
// @Failure      404 {object} api.ErrorResponse
// @Router       /user-subscription-plan-mappings/{tenantId}/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	m, err := h.service.Get(c.Request.Context(), api.TenantID(c), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Get the balance of a user subscription mapping
// @Description  PendingDue is "NA" once the price is fully paid. Status is Active only while isActive is set and ValidUntil lies ahead.
// @Tags         user-subscription-plan-mappings
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        id path int true "Mapping ID"
// @Success      200 {object} subscription.Balance
// @Failure      404 {object} api.ErrorResponse
// @Router       /user-subscription-plan-mappings/{tenantId}/{id}/balance [get]
func (h *Handler) Balance(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.Balance(c.Request.Context(), api.TenantID(c), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// @Summary      Update a user subscription mapping
// @Description  Partial update. Switching isActive stamps DeactivateDate or ReactivateDate.
// @Tags         user-subscription-plan-mappings
// @Accept       json
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        id path int true "Mapping ID"
// @Param        request body subscription.MappingPatch true "Fields to change"
// @Success      200 {object} subscription.Mapping
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /user-subscription-plan-mappings/{tenantId}/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	var patch MappingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.RespondBindError(c, err)
		return
	}

	m, err := h.service.Update(c.Request.Context(), api.TenantID(c), id, patch)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Delete a user subscription mapping
// @Description  Payments recorded against the mapping are deleted with it.
// @Tags         user-subscription-plan-mappings
// @Param        tenantId path string true "Tenant ID"
// @Param        id path int true "Mapping ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /user-subscription-plan-mappings/{tenantId}/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), api.TenantID(c), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
