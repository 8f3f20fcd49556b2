package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

func NewDashboardHandler(
	dashboardService service.DashboardService,
	logger *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard returns the combined landlord overview.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var req dto.GetDashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.dashboardService.GetDashboard(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to get dashboard", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
