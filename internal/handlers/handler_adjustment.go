package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/PriceTrackr/price_tracker_app/internal/core/ports/services"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
	"github.com/PriceTrackr/price_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adjustmentHandler handles HTTP requests for adjustment opportunities.
type adjustmentHandler struct {
	adjustmentService portssvc.AdjustmentSvcFacade
}

// newAdjustmentHandler creates a new adjustmentHandler.
func newAdjustmentHandler(as portssvc.AdjustmentSvcFacade) *adjustmentHandler {
	return &adjustmentHandler{
		adjustmentService: as,
	}
}

// registerAdjustmentRoutes registers routes related to adjustments.
func registerAdjustmentRoutes(rg *gin.RouterGroup, adjustmentService portssvc.AdjustmentSvcFacade) {
	h := newAdjustmentHandler(adjustmentService)

	adjustments := rg.Group("/adjustments")
	{
		adjustments.GET("", h.listAdjustments)
		adjustments.GET("/summary", h.summary)
	}
}

// listAdjustments godoc
// @Summary List adjustment opportunities
// @Description Recalculates price-adjustment opportunities for the authenticated user from their receipts and the coupon feed
// @Tags adjustments
// @Produce  json
// @Param   sort query string false "Sort order" Enums(amount, date) default(amount)
// @Param   status query string false "Eligibility filter" Enums(all, eligible, expired) default(all)
// @Param   includeClaimed query bool false "Include already-claimed opportunities" default(true)
// @Success 200 {object} dto.ListAdjustmentsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to calculate adjustments"
// @Security BearerAuth
// @Router /adjustments [get]
func (h *adjustmentHandler) listAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListAdjustmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.adjustmentService.ListAdjustments(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to calculate adjustments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to calculate adjustments"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// summary godoc
// @Summary Adjustment summary
// @Description Returns dashboard statistics: opportunity counts, savings totals, record counts and lifetime claimed amount
// @Tags adjustments
// @Produce  json
// @Success 200 {object} dto.AdjustmentSummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build summary"
// @Security BearerAuth
// @Router /adjustments/summary [get]
func (h *adjustmentHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	res, err := h.adjustmentService.Summary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build adjustment summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, res)
}
