package userdetail

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

// @Summary      Search members
// @Description  Name matches anywhere in the member name, MobileNo must match exactly. Each member comes with the status of their subscriptions.
// @Tags         user-details
// @Accept       json
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        request body userdetail.SearchRequest true "Search criteria"
// @Success      200 {array} userdetail.MemberSummary
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /user-details/search/{tenantId} [post]
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	results, err := h.service.Search(c.Request.Context(), api.TenantID(c), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// @Summary      Member detail
// @Description  The member, their subscriptions and today's attendance.
// @Tags         user-details
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        id path int true "User ID"
// @Success      200 {object} userdetail.MemberDetail
// @Failure      404 {object} api.ErrorResponse
// @Router       /user-details/detail/{tenantId}/{id} [get]
func (h *Handler) Detail(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	d, err := h.service.Detail(c.Request.Context(), api.TenantID(c), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}
