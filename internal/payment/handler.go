package payment

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

// @Summary      List payment history
// @Tags         payment-history
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        userId query int false "Only this member"
// @Param        mappingId query int false "Only this subscription mapping"
// @Success      200 {array} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payment-history/{tenantId} [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := api.QueryID(c, "userId")
	if !ok {
		return
	}
	mappingID, ok := api.QueryID(c, "mappingId")
	if !ok {
		return
	}

	payments, err := h.service.List(c.Request.Context(), api.TenantID(c), ListFilter{UserID: userID, MappingID: mappingID})
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary      Get a payment
// @Tags         payment-history
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        paymentId path int true "Payment ID"
// @Success      200 {object} payment.Payment
// @Failure      404 {object} api.ErrorResponse
// @Router       /payment-history/{tenantId}/{paymentId} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "paymentId")
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

// @Summary      Record a payment
// @Description  Rejected when AmountReceived exceeds what is still pending on the mapping. Online payments (PaymentType O) need a receipt file in imagePath.
// @Tags         payment-history
// @Accept       multipart/form-data
// @Produce      json
// @Param        tenantId header string true "Tenant ID"
// @Param        UserId formData int true "Member ID"
// @Param        MappingId formData int true "Subscription mapping ID"
// @Param        AmountReceived formData string true "Amount"
// @Param        PaymentType formData string true "C (cash) or O (online)"
// @Param        TransactionRefId formData string false "Transaction reference"
// @Param        PaymentDate formData string false "YYYY-MM-DD or RFC 3339, defaults to now"
// @Param        CreatedBy formData string false "Recorded by"
// @Param        imagePath formData file false "Receipt"
// @Success      201 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payment-history/ [post]
func (h *Handler) Record(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		api.RespondBindError(c, err)
		return
	}

	receipt, err := api.FormFile(c, ReceiptField)
	if err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.Record(c.Request.Context(), api.TenantID(c), req, receipt)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a payment
// @Description  Partial update. A changed amount is checked against the pending balance again.
// @Tags         payment-history
// @Accept       json
// @Produce      json
// @Param        tenantId path string true "Tenant ID"
// @Param        paymentId path int true "Payment ID"
// @Param        request body payment.PaymentPatch true "Fields to change"
// @Success      200 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payment-history/{tenantId}/{paymentId} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "paymentId")
	if !ok {
		return
	}

	var patch PaymentPatch
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

// @Summary      Delete a payment
// @Tags         payment-history
// @Param        tenantId path string true "Tenant ID"
// @Param        paymentId path int true "Payment ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /payment-history/{tenantId}/{paymentId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "paymentId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), api.TenantID(c), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary      Export payment history
// @Tags         payment-history
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        tenantId path string true "Tenant ID"
// @Success      200 {file} file
// @Failure      404 {object} api.ErrorResponse
// @Router       /payment-history/{tenantId}/export [get]
func (h *Handler) Export(c *gin.Context) {
	export, err := h.service.Export(c.Request.Context(), api.TenantID(c))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
