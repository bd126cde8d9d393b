package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// ClaimService manages the claimed overlay on adjustment opportunities.
type ClaimService struct {
	claimRepo   portsrepo.ClaimRepositoryFacade
	receiptRepo portsrepo.ReceiptReader
	couponRepo  portsrepo.CouponReader
}

func NewClaimService(claimRepo portsrepo.ClaimRepositoryFacade, receiptRepo portsrepo.ReceiptReader, couponRepo portsrepo.CouponReader) *ClaimService {
	return &ClaimService{
		claimRepo:   claimRepo,
		receiptRepo: receiptRepo,
		couponRepo:  couponRepo,
	}
}

func (s *ClaimService) MarkClaimed(ctx context.Context, userID string, req dto.ClaimRequest) (*domain.Claim, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: claim amount cannot be negative", apperrors.ErrValidation)
	}

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, req.ReceiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up receipt %s: %w", req.ReceiptID, err)
	}
	if receipt.UserID != userID {
		return nil, fmt.Errorf("receipt %s: %w", req.ReceiptID, apperrors.ErrForbidden)
	}
	if _, err := s.couponRepo.FindCouponByID(ctx, req.CouponID); err != nil {
		return nil, fmt.Errorf("failed to look up coupon %s: %w", req.CouponID, err)
	}

	claim := domain.Claim{
		UserID:    userID,
		ClaimKey:  req.Key(),
		Amount:    req.Amount,
		ClaimedAt: time.Now().UTC(),
	}
	if err := s.claimRepo.SaveClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to save claim: %w", err)
	}
	return &claim, nil
}

func (s *ClaimService) Unclaim(ctx context.Context, userID string, key domain.ClaimKey) error {
	if _, err := s.claimRepo.FindClaim(ctx, userID, key); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("claim for receipt %s item %s: %w", key.ReceiptID, key.ItemCode, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to look up claim: %w", err)
	}
	if err := s.claimRepo.DeleteClaim(ctx, userID, key); err != nil {
		return fmt.Errorf("failed to delete claim: %w", err)
	}
	return nil
}

func (s *ClaimService) ListClaims(ctx context.Context, userID string) ([]domain.Claim, error) {
	claims, err := s.claimRepo.ListClaimsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	if claims == nil {
		claims = []domain.Claim{}
	}
	return claims, nil
}
