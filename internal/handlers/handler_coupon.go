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

// couponHandler handles HTTP requests related to the shared coupon feed.
type couponHandler struct {
	couponService portssvc.CouponSvcFacade
}

// newCouponHandler creates a new couponHandler.
func newCouponHandler(cs portssvc.CouponSvcFacade) *couponHandler {
	return &couponHandler{
		couponService: cs,
	}
}

// registerCouponRoutes registers routes related to coupons.
func registerCouponRoutes(rg *gin.RouterGroup, couponService portssvc.CouponSvcFacade) {
	h := newCouponHandler(couponService)

	coupons := rg.Group("/coupons")
	{
		coupons.POST("", h.createCoupon)
		coupons.POST("/parse", h.parseCouponText)
		coupons.GET("", h.listCoupons)
		coupons.GET("/:id", h.getCoupon)
		coupons.DELETE("/:id", h.deleteCoupon)
	}
}

// createCoupon godoc
// @Summary Store a coupon
// @Description Validates and persists a structured coupon into the shared feed
// @Tags coupons
// @Accept  json
// @Produce  json
// @Param   coupon body dto.CreateCouponRequest true "Coupon details"
// @Success 201 {object} dto.CouponResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to store coupon"
// @Security BearerAuth
// @Router /coupons [post]
func (h *couponHandler) createCoupon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCoupon", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating coupon", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create coupon in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store coupon"})
		}
		return
	}

	logger.Info("Coupon created", slog.String("coupon_id", coupon.CouponID))
	c.JSON(http.StatusCreated, dto.ToCouponResponse(coupon))
}

// parseCouponText godoc
// @Summary Parse coupon OCR text
// @Description Parses raw OCR text into a structured coupon preview without persisting it
// @Tags coupons
// @Accept  json
// @Produce  json
// @Param   text body dto.ParseTextRequest true "Raw OCR text"
// @Success 200 {object} dto.CouponResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unparsable text"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /coupons/parse [post]
func (h *couponHandler) parseCouponText(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	coupon, err := h.couponService.ParseCouponText(c.Request.Context(), req.Text)
	if err != nil {
		logger.Warn("Failed to parse coupon text", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

// getCoupon godoc
// @Summary Get a coupon
// @Description Retrieves a coupon from the shared feed by id
// @Tags coupons
// @Produce  json
// @Param   id path string true "Coupon ID"
// @Success 200 {object} dto.CouponResponse
// @Failure 404 {object} ErrorResponse "Coupon not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve coupon"
// @Security BearerAuth
// @Router /coupons/{id} [get]
func (h *couponHandler) getCoupon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	couponID := c.Param("id")

	coupon, err := h.couponService.GetCoupon(c.Request.Context(), couponID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Coupon not found"})
		} else {
			logger.Error("Failed to get coupon from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve coupon"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

// listCoupons godoc
// @Summary List coupons
// @Description Retrieves the full shared coupon feed
// @Tags coupons
// @Produce  json
// @Success 200 {array} dto.CouponResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list coupons"
// @Security BearerAuth
// @Router /coupons [get]
func (h *couponHandler) listCoupons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	coupons, err := h.couponService.ListCoupons(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list coupons", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list coupons"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCouponResponse(coupons))
}

// deleteCoupon godoc
// @Summary Delete a coupon
// @Description Removes a coupon from the shared feed
// @Tags coupons
// @Param   id path string true "Coupon ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Coupon not found"
// @Failure 500 {object} ErrorResponse "Failed to delete coupon"
// @Security BearerAuth
// @Router /coupons/{id} [delete]
func (h *couponHandler) deleteCoupon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	couponID := c.Param("id")

	if err := h.couponService.DeleteCoupon(c.Request.Context(), couponID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Coupon not found"})
		} else {
			logger.Error("Failed to delete coupon", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete coupon"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
