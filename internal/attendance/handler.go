package attendance

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

// @Summary      Check a member in or out
// @Description  Send CheckInBy to check in, CheckOutBy to check out. Each member can check in once and out once per business day.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        tenantId header string true "Tenant ID"
// @Param        request body attendance.MarkRequest true "Member and acting system user"
// @Success      201 {object} attendance.MarkResponse "Checked in"
// @Success      200 {object} attendance.MarkResponse "Checked out"
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /attendance/ [post]
func (h *Handler) Mark(c *gin.Context) {
	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	a, checkedIn, err := h.service.Mark(c.Request.Context(), api.TenantID(c), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	if checkedIn {
		c.JSON(http.StatusCreated, MarkResponse{Message: "Checked in successfully", Attendance: a})
		return
	}
	c.JSON(http.StatusOK, MarkResponse{Message: "Checked out successfully", Attendance: a})
}

// @Summary      List attendance
// @Tags         attendance
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        date query string false "Business day, YYYY-MM-DD"
// @Param        userId query int false "Only this member"
// @Success      200 {array} attendance.Record
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /attendance/{tenantId} [get]
func (h *Handler) List(c *gin.Context) {
	var filter ListFilter

	if raw := c.Query("date"); raw != "" {
		d, err := api.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		filter.Date = &d
	}
	userID, ok := api.QueryID(c, "userId")
	if !ok {
		return
	}
	filter.UserID = userID

	records, err := h.service.List(c.Request.Context(), api.TenantID(c), filter)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
