package plan

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

// @Summary      Create a subscription plan
// @Tags         subscription-plans
// @Accept       json
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        request body plan.CreatePlanRequest true "Plan payload"
// @Success      201 {object} plan.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscription-plans/{tenantId} [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), api.TenantID(c), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      List subscription plans
// @Tags         subscription-plans
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Success      200 {array} plan.Plan
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscription-plans/{tenantId} [get]
func (h *Handler) List(c *gin.Context) {
	plans, err := h.service.List(c.Request.Context(), api.TenantID(c))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// @Summary      Get a subscription plan
// @Tags         subscription-plans
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        planId path int true "Plan ID"
// @Success      200 {object} plan.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscription-plans/{tenantId}/{planId} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "planId")
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), api.TenantID(c), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Update a subscription plan
// @Description  Partial update: omitted fields keep their stored value.
// @Tags         subscription-plans
// @Accept       json
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        planId path int true "Plan ID"
// @Param        request body plan.PlanPatch true "Fields to change"
// @Success      200 {object} plan.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscription-plans/{tenantId}/{planId} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "planId")
	if !ok {
		return
	}

	var patch PlanPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), api.TenantID(c), id, patch)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a subscription plan
// @Description  Fails with 400 while user subscriptions still reference the plan.
// @Tags         subscription-plans
// @Param        tenantId path string true "Tenant ID"
// @Param        planId path int true "Plan ID"
// @Success      204
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscription-plans/{tenantId}/{planId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "planId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), api.TenantID(c), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
