package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portssvc "github.com/PriceTrackr/price_tracker_app/internal/core/ports/services"
	"github.com/PriceTrackr/price_tracker_app/internal/core/services"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ClaimServiceTestSuite struct {
	suite.Suite
	mockClaimRepo   *MockClaimRepository
	mockReceiptRepo *MockReceiptRepository
	mockCouponRepo  *MockCouponRepository
	service         portssvc.ClaimSvcFacade

	userID string
}

func (suite *ClaimServiceTestSuite) SetupTest() {
	suite.mockClaimRepo = new(MockClaimRepository)
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockCouponRepo = new(MockCouponRepository)
	suite.service = services.NewClaimService(suite.mockClaimRepo, suite.mockReceiptRepo, suite.mockCouponRepo)
	suite.userID = "user-1"
}

func (suite *ClaimServiceTestSuite) claimRequest() dto.ClaimRequest {
	return dto.ClaimRequest{
		ReceiptID: "r1",
		ItemCode:  "123456",
		CouponID:  "c1",
		Amount:    decimal.RequireFromString("6.00"),
	}
}

// --- Test Cases ---

func (suite *ClaimServiceTestSuite) TestMarkClaimed_Success() {
	ctx := context.Background()
	req := suite.claimRequest()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, "r1").Return(&domain.Receipt{ReceiptID: "r1", UserID: suite.userID}, nil).Once()
	suite.mockCouponRepo.On("FindCouponByID", ctx, "c1").Return(&domain.Coupon{CouponID: "c1"}, nil).Once()
	suite.mockClaimRepo.On("SaveClaim", ctx, mock.MatchedBy(func(c domain.Claim) bool {
		return c.UserID == suite.userID &&
			c.ReceiptID == "r1" &&
			c.ItemCode == "123456" &&
			c.CouponID == "c1" &&
			c.Amount.Equal(req.Amount) &&
			!c.ClaimedAt.IsZero()
	})).Return(nil).Once()

	claim, err := suite.service.MarkClaimed(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(claim)
	suite.Equal(suite.userID, claim.UserID)
	suite.Equal(req.Key(), claim.ClaimKey)
	suite.WithinDuration(time.Now().UTC(), claim.ClaimedAt, time.Minute)

	suite.mockReceiptRepo.AssertExpectations(suite.T())
	suite.mockCouponRepo.AssertExpectations(suite.T())
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestMarkClaimed_NegativeAmount() {
	ctx := context.Background()
	req := suite.claimRequest()
	req.Amount = decimal.RequireFromString("-1.00")

	claim, err := suite.service.MarkClaimed(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(claim)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "FindReceiptByID", mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestMarkClaimed_ReceiptNotFound() {
	ctx := context.Background()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, "r1").Return(nil, apperrors.ErrNotFound).Once()

	claim, err := suite.service.MarkClaimed(ctx, suite.userID, suite.claimRequest())

	suite.Require().Error(err)
	suite.Nil(claim)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "SaveClaim", mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestMarkClaimed_OtherUsersReceipt() {
	ctx := context.Background()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, "r1").Return(&domain.Receipt{ReceiptID: "r1", UserID: "someone-else"}, nil).Once()

	claim, err := suite.service.MarkClaimed(ctx, suite.userID, suite.claimRequest())

	suite.Require().Error(err)
	suite.Nil(claim)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCouponRepo.AssertNotCalled(suite.T(), "FindCouponByID", mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestMarkClaimed_CouponNotFound() {
	ctx := context.Background()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, "r1").Return(&domain.Receipt{ReceiptID: "r1", UserID: suite.userID}, nil).Once()
	suite.mockCouponRepo.On("FindCouponByID", ctx, "c1").Return(nil, apperrors.ErrNotFound).Once()

	claim, err := suite.service.MarkClaimed(ctx, suite.userID, suite.claimRequest())

	suite.Require().Error(err)
	suite.Nil(claim)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "SaveClaim", mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestUnclaim_Success() {
	ctx := context.Background()
	key := domain.ClaimKey{ReceiptID: "r1", ItemCode: "123456", CouponID: "c1"}

	suite.mockClaimRepo.On("FindClaim", ctx, suite.userID, key).Return(&domain.Claim{UserID: suite.userID, ClaimKey: key}, nil).Once()
	suite.mockClaimRepo.On("DeleteClaim", ctx, suite.userID, key).Return(nil).Once()

	err := suite.service.Unclaim(ctx, suite.userID, key)

	suite.Require().NoError(err)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestUnclaim_NotFound() {
	ctx := context.Background()
	key := domain.ClaimKey{ReceiptID: "r1", ItemCode: "123456", CouponID: "c1"}

	suite.mockClaimRepo.On("FindClaim", ctx, suite.userID, key).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.Unclaim(ctx, suite.userID, key)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "DeleteClaim", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestListClaims_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockClaimRepo.On("ListClaimsByUser", ctx, suite.userID).Return(nil, nil).Once()

	claims, err := suite.service.ListClaims(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(claims)
	suite.Empty(claims)
}

func (suite *ClaimServiceTestSuite) TestListClaims_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockClaimRepo.On("ListClaimsByUser", ctx, suite.userID).Return(nil, expectedErr).Once()

	claims, err := suite.service.ListClaims(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(claims)
	suite.ErrorIs(err, expectedErr)
}

func TestClaimServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimServiceTestSuite))
}
