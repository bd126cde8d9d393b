package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/PriceTrackr/price_tracker_app/internal/core/ports/services"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
	"github.com/PriceTrackr/price_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exportHandler handles data export and import requests.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

// newExportHandler creates a new exportHandler.
func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{
		exportService: es,
	}
}

// registerExportRoutes registers the export and import routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	rg.GET("/export", h.export)
	rg.POST("/import", h.importBundle)
}

// export godoc
// @Summary Export user data
// @Description Dumps the user's receipts, the coupon feed, claims and settings as one JSON bundle
// @Tags export
// @Produce  json
// @Success 200 {object} dto.ExportBundle
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to export data"
// @Security BearerAuth
// @Router /export [get]
func (h *exportHandler) export(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bundle, err := h.exportService.Export(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to export data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export data"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pricetrackr-export.json"`)
	c.JSON(http.StatusOK, bundle)
}

// importBundle godoc
// @Summary Import user data
// @Description Restores a previously exported bundle; records that already exist are skipped
// @Tags export
// @Accept  json
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid bundle"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to import data"
// @Security BearerAuth
// @Router /import [post]
func (h *exportHandler) importBundle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var bundle dto.ExportBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid bundle format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.exportService.Import(c.Request.Context(), userID, bundle); err != nil {
		logger.Error("Failed to import data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import data"})
		return
	}

	c.Status(http.StatusNoContent)
}
