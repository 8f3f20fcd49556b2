package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *logger.Logger
}

func NewPaymentHandler(
	paymentService service.PaymentService,
	logger *logger.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreatePayment records a rent payment.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetPayment fetches one payment by id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	response, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListPayments lists payments within a date range.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var req dto.ListPaymentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.paymentService.ListPayments(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
