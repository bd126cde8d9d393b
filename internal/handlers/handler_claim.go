package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	portssvc "github.com/PriceTrackr/price_tracker_app/internal/core/ports/services"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
	"github.com/PriceTrackr/price_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// claimHandler handles HTTP requests for claimed adjustments.
type claimHandler struct {
	claimService portssvc.ClaimSvcFacade
}

// newClaimHandler creates a new claimHandler.
func newClaimHandler(cs portssvc.ClaimSvcFacade) *claimHandler {
	return &claimHandler{
		claimService: cs,
	}
}

// registerClaimRoutes registers routes related to claims.
func registerClaimRoutes(rg *gin.RouterGroup, claimService portssvc.ClaimSvcFacade) {
	h := newClaimHandler(claimService)

	claims := rg.Group("/claims")
	{
		claims.POST("", h.markClaimed)
		claims.GET("", h.listClaims)
		claims.DELETE("", h.unclaim)
	}
}

// markClaimed godoc
// @Summary Mark an adjustment as claimed
// @Description Records that the user collected a price adjustment at the store
// @Tags claims
// @Accept  json
// @Produce  json
// @Param   claim body dto.ClaimRequest true "Claim details"
// @Success 201 {object} dto.ClaimResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Receipt belongs to another user"
// @Failure 404 {object} ErrorResponse "Receipt or coupon not found"
// @Failure 500 {object} ErrorResponse "Failed to record claim"
// @Security BearerAuth
// @Router /claims [post]
func (h *claimHandler) markClaimed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	claim, err := h.claimService.MarkClaimed(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receipt or coupon not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Receipt belongs to another user"})
		default:
			logger.Error("Failed to record claim", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record claim"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToClaimResponse(claim))
}

// listClaims godoc
// @Summary List claims
// @Description Retrieves every claim the authenticated user has recorded
// @Tags claims
// @Produce  json
// @Success 200 {array} dto.ClaimResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list claims"
// @Security BearerAuth
// @Router /claims [get]
func (h *claimHandler) listClaims(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	claims, err := h.claimService.ListClaims(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list claims", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list claims"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClaimResponse(claims))
}

// unclaim godoc
// @Summary Remove a claim
// @Description Removes a recorded claim so the opportunity shows as unclaimed again
// @Tags claims
// @Accept  json
// @Param   claim body dto.UnclaimRequest true "Claim key"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Claim not found"
// @Failure 500 {object} ErrorResponse "Failed to remove claim"
// @Security BearerAuth
// @Router /claims [delete]
func (h *claimHandler) unclaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UnclaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.claimService.Unclaim(c.Request.Context(), userID, req.Key()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Claim not found"})
		} else {
			logger.Error("Failed to remove claim", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove claim"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
