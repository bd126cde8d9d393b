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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReceiptServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReceiptRepository
	service  portssvc.ReceiptSvcFacade

	userID string
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReceiptRepository)
	suite.service = services.NewReceiptService(suite.mockRepo)
	suite.userID = "user-1"
}

func (suite *ReceiptServiceTestSuite) createRequest() dto.CreateReceiptRequest {
	return dto.CreateReceiptRequest{
		PurchaseDate: "2026-01-01",
		Tax:          decimal.RequireFromString("1.50"),
		Items: []dto.ReceiptItemRequest{
			{ItemCode: "123456", Description: "Olive Oil 2L", FinalPrice: decimal.RequireFromString("24.99"), LineNumber: 1},
		},
	}
}

// --- Test Cases ---

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_Success() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockRepo.On("SaveReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.UserID == suite.userID &&
			r.ReceiptID != "" &&
			r.PurchaseDate.Equal(domain.NewDate(2026, time.January, 1)) &&
			len(r.Items) == 1 &&
			r.CreatedBy == suite.userID
	})).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.NotEmpty(receipt.ReceiptID)

	// Totals are derived from the line items when the client omits them.
	suite.True(receipt.Subtotal.Equal(decimal.RequireFromString("24.99")))
	suite.True(receipt.Total.Equal(decimal.RequireFromString("26.49")))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_ClientTotalsKept() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Subtotal = decimal.RequireFromString("24.99")
	req.Total = decimal.RequireFromString("26.49")

	suite.mockRepo.On("SaveReceipt", ctx, mock.AnythingOfType("domain.Receipt")).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(receipt.Total.Equal(req.Total))
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_BadDate() {
	ctx := context.Background()
	req := suite.createRequest()
	req.PurchaseDate = "01/01/2026"

	receipt, err := suite.service.CreateReceipt(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_ShortItemCode() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Items[0].ItemCode = "12"

	receipt, err := suite.service.CreateReceipt(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestGetReceipt_Success() {
	ctx := context.Background()
	expected := &domain.Receipt{ReceiptID: "r1", UserID: suite.userID}

	suite.mockRepo.On("FindReceiptByID", ctx, "r1").Return(expected, nil).Once()

	receipt, err := suite.service.GetReceipt(ctx, suite.userID, "r1")

	suite.Require().NoError(err)
	suite.Equal(expected, receipt)
}

func (suite *ReceiptServiceTestSuite) TestGetReceipt_OtherUsersReceipt() {
	ctx := context.Background()

	suite.mockRepo.On("FindReceiptByID", ctx, "r1").Return(&domain.Receipt{ReceiptID: "r1", UserID: "someone-else"}, nil).Once()

	receipt, err := suite.service.GetReceipt(ctx, suite.userID, "r1")

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReceiptServiceTestSuite) TestGetReceipt_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindReceiptByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	receipt, err := suite.service.GetReceipt(ctx, suite.userID, "missing")

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListReceiptsByUser", ctx, suite.userID).Return(nil, nil).Once()

	receipts, err := suite.service.ListReceipts(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(receipts)
	suite.Empty(receipts)
}

func (suite *ReceiptServiceTestSuite) TestDeleteReceipt_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindReceiptByID", ctx, "r1").Return(&domain.Receipt{ReceiptID: "r1", UserID: suite.userID}, nil).Once()
	suite.mockRepo.On("DeleteReceipt", ctx, "r1").Return(nil).Once()

	err := suite.service.DeleteReceipt(ctx, suite.userID, "r1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestDeleteReceipt_OtherUsersReceipt() {
	ctx := context.Background()

	suite.mockRepo.On("FindReceiptByID", ctx, "r1").Return(&domain.Receipt{ReceiptID: "r1", UserID: "someone-else"}, nil).Once()

	err := suite.service.DeleteReceipt(ctx, suite.userID, "r1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestParseReceiptText() {
	ctx := context.Background()

	receipt, err := suite.service.ParseReceiptText(ctx, "123456 OLIVE OIL 24.99")

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.Require().Len(receipt.Items, 1)
	suite.Equal("123456", receipt.Items[0].ItemCode)
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
