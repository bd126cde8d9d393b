package services

import (
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PriceTrackr/price_tracker_app/internal/core/ports/services"
	"github.com/PriceTrackr/price_tracker_app/internal/platform/config"
)

// NewContainer creates the service container with properly initialized dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	settingSvc := NewSettingService(repos.SettingRepo, cfg.DefaultAdjustmentWindowDays)

	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Receipt:     NewReceiptService(repos.ReceiptRepo),
		Coupon:      NewCouponService(repos.CouponRepo),
		Adjustment:  NewAdjustmentService(repos.ReceiptRepo, repos.CouponRepo, repos.ClaimRepo, settingSvc),
		Claim:       NewClaimService(repos.ClaimRepo, repos.ReceiptRepo, repos.CouponRepo),
		Setting:     settingSvc,
		Export:      NewExportService(repos.ReceiptRepo, repos.CouponRepo, repos.ClaimRepo, repos.SettingRepo),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade       = (*UserService)(nil)
	_ portssvc.ReceiptSvcFacade    = (*ReceiptService)(nil)
	_ portssvc.CouponSvcFacade     = (*CouponService)(nil)
	_ portssvc.AdjustmentSvcFacade = (*AdjustmentService)(nil)
	_ portssvc.ClaimSvcFacade      = (*ClaimService)(nil)
	_ portssvc.SettingSvcFacade    = (*SettingService)(nil)
	_ portssvc.ExportSvcFacade     = (*ExportService)(nil)
)
