package services

import (
	"context"
	"fmt"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PriceTrackr/price_tracker_app/internal/core/ports/services"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
	"github.com/PriceTrackr/price_tracker_app/internal/utils/matching"
	"github.com/shopspring/decimal"
)

// AdjustmentService runs the matching engine over a user's receipts and
// the shared coupon feed. The engine itself is stateless; every call
// fetches fresh inputs, so new coupons or a changed window setting take
// effect immediately.
type AdjustmentService struct {
	receiptRepo portsrepo.ReceiptReader
	couponRepo  portsrepo.CouponReader
	claimRepo   portsrepo.ClaimReader
	settingSvc  portssvc.SettingSvcFacade
	today       func() domain.Date
}

func NewAdjustmentService(
	receiptRepo portsrepo.ReceiptReader,
	couponRepo portsrepo.CouponReader,
	claimRepo portsrepo.ClaimReader,
	settingSvc portssvc.SettingSvcFacade,
) *AdjustmentService {
	return &AdjustmentService{
		receiptRepo: receiptRepo,
		couponRepo:  couponRepo,
		claimRepo:   claimRepo,
		settingSvc:  settingSvc,
		today:       domain.Today,
	}
}

func (s *AdjustmentService) ListAdjustments(ctx context.Context, userID string, params dto.ListAdjustmentsParams) (*dto.ListAdjustmentsResponse, error) {
	adjustments, err := s.calculate(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Adjustment, 0, len(adjustments))
	for _, adjustment := range adjustments {
		if !params.IncludeClaimed && adjustment.Claimed {
			continue
		}
		switch params.Status {
		case dto.StatusEligible:
			if !adjustment.Eligible {
				continue
			}
		case dto.StatusExpired:
			if adjustment.Eligible {
				continue
			}
		}
		filtered = append(filtered, adjustment)
	}

	switch params.Sort {
	case dto.SortByDate:
		matching.SortByPurchaseDateAsc(filtered)
	default:
		matching.SortByAmountDesc(filtered)
	}

	return &dto.ListAdjustmentsResponse{
		Adjustments: filtered,
		Stats:       matching.Summarize(adjustments),
	}, nil
}

func (s *AdjustmentService) Summary(ctx context.Context, userID string) (*dto.AdjustmentSummaryResponse, error) {
	receipts, err := s.receiptRepo.ListReceiptsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts for summary: %w", err)
	}
	coupons, err := s.couponRepo.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons for summary: %w", err)
	}
	windowDays, err := s.settingSvc.AdjustmentWindowDays(ctx, userID)
	if err != nil {
		return nil, err
	}
	claims, err := s.claimRepo.ListClaimsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims for summary: %w", err)
	}

	adjustments := matching.CalculateAdjustments(receipts, coupons, windowDays, s.today())
	overlayClaims(adjustments, claims)

	itemCount := 0
	for _, receipt := range receipts {
		itemCount += len(receipt.Items)
	}
	lifetime := decimal.Zero
	for _, claim := range claims {
		lifetime = lifetime.Add(claim.Amount)
	}

	return &dto.AdjustmentSummaryResponse{
		Stats:           matching.Summarize(adjustments),
		ReceiptCount:    len(receipts),
		CouponCount:     len(coupons),
		ItemCount:       itemCount,
		LifetimeClaimed: lifetime,
	}, nil
}

// calculate runs the matcher for the user and merges the claim overlay.
func (s *AdjustmentService) calculate(ctx context.Context, userID string) ([]domain.Adjustment, error) {
	receipts, err := s.receiptRepo.ListReceiptsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts for matching: %w", err)
	}
	coupons, err := s.couponRepo.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons for matching: %w", err)
	}
	windowDays, err := s.settingSvc.AdjustmentWindowDays(ctx, userID)
	if err != nil {
		return nil, err
	}
	claims, err := s.claimRepo.ListClaimsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims for matching: %w", err)
	}

	adjustments := matching.CalculateAdjustments(receipts, coupons, windowDays, s.today())
	overlayClaims(adjustments, claims)
	return adjustments, nil
}

func overlayClaims(adjustments []domain.Adjustment, claims []domain.Claim) {
	if len(claims) == 0 {
		return
	}
	byKey := make(map[domain.ClaimKey]domain.Claim, len(claims))
	for _, claim := range claims {
		byKey[claim.ClaimKey] = claim
	}
	for i := range adjustments {
		if claim, ok := byKey[adjustments[i].Key()]; ok {
			claimedAt := claim.ClaimedAt
			adjustments[i].Claimed = true
			adjustments[i].ClaimedAt = &claimedAt
		}
	}
}
