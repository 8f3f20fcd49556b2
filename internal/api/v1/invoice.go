package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/service"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewInvoiceHandler(
	invoiceService service.InvoiceService,
	logger *logger.Logger,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// GetInvoice fetches one invoice by id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	response, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListInvoices lists invoices, optionally filtered by status.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var req dto.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.invoiceService.ListInvoices(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
