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
type CouponServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCouponRepository
	service  portssvc.CouponSvcFacade
}

func (suite *CouponServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCouponRepository)
	suite.service = services.NewCouponService(suite.mockRepo)
}

func (suite *CouponServiceTestSuite) createRequest() dto.CreateCouponRequest {
	salePrice := decimal.RequireFromString("18.99")
	return dto.CreateCouponRequest{
		ValidFrom:  "2026-01-15",
		ValidUntil: "2026-01-31",
		Items: []dto.CouponItemRequest{
			{ItemCode: "123456", Description: "Olive Oil 2L", SalePrice: &salePrice},
		},
	}
}

// --- Test Cases ---

func (suite *CouponServiceTestSuite) TestCreateCoupon_Success() {
	ctx := context.Background()
	creatorUserID := "user-1"
	req := suite.createRequest()

	suite.mockRepo.On("SaveCoupon", ctx, mock.MatchedBy(func(c domain.Coupon) bool {
		return c.CouponID != "" &&
			c.Source == "upload" &&
			c.ValidFrom.Equal(domain.NewDate(2026, time.January, 15)) &&
			c.ValidUntil.Equal(domain.NewDate(2026, time.January, 31)) &&
			len(c.Items) == 1 &&
			c.Items[0].HasSalePrice() &&
			c.CreatedBy == creatorUserID
	})).Return(nil).Once()

	coupon, err := suite.service.CreateCoupon(ctx, creatorUserID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(coupon)
	suite.NotEmpty(coupon.CouponID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CouponServiceTestSuite) TestCreateCoupon_BadDate() {
	ctx := context.Background()
	req := suite.createRequest()
	req.ValidUntil = "Jan 31, 2026"

	coupon, err := suite.service.CreateCoupon(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(coupon)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCoupon", mock.Anything, mock.Anything)
}

func (suite *CouponServiceTestSuite) TestCreateCoupon_ItemWithoutPriceOrDiscount() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Items[0].SalePrice = nil

	coupon, err := suite.service.CreateCoupon(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(coupon)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCoupon", mock.Anything, mock.Anything)
}

func (suite *CouponServiceTestSuite) TestGetCoupon_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCouponByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	coupon, err := suite.service.GetCoupon(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(coupon)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CouponServiceTestSuite) TestListCoupons_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCoupons", ctx).Return(nil, nil).Once()

	coupons, err := suite.service.ListCoupons(ctx)

	suite.Require().NoError(err)
	suite.NotNil(coupons)
	suite.Empty(coupons)
}

func (suite *CouponServiceTestSuite) TestDeleteCoupon_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteCoupon", ctx, "c1").Return(expectedErr).Once()

	err := suite.service.DeleteCoupon(ctx, "c1")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func (suite *CouponServiceTestSuite) TestParseCouponText() {
	ctx := context.Background()

	coupon, err := suite.service.ParseCouponText(ctx, "$6 OFF\nOlive Oil 2L\nItem 123456")

	suite.Require().NoError(err)
	suite.Require().NotNil(coupon)
	suite.Require().Len(coupon.Items, 1)
	suite.Equal("123456", coupon.Items[0].ItemCode)
	suite.True(coupon.Items[0].HasDiscount())
}

func TestCouponServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CouponServiceTestSuite))
}
