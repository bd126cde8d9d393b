package services_test

import (
	"context"
	"testing"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portssvc "github.com/PriceTrackr/price_tracker_app/internal/core/ports/services"
	"github.com/PriceTrackr/price_tracker_app/internal/core/services"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type SettingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingRepository
	service  portssvc.SettingSvcFacade

	userID string
}

func (suite *SettingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingRepository)
	suite.service = services.NewSettingService(suite.mockRepo, 30)
	suite.userID = "user-1"
}

// --- Test Cases ---

func (suite *SettingServiceTestSuite) TestGetSettings_DefaultsWhenUnset() {
	ctx := context.Background()
	suite.mockRepo.On("ListSettingsByUser", ctx, suite.userID).Return([]domain.Setting{}, nil).Once()

	res, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(30, res.AdjustmentWindow)
	suite.Empty(res.DefaultStore)
}

func (suite *SettingServiceTestSuite) TestGetSettings_StoredValues() {
	ctx := context.Background()
	suite.mockRepo.On("ListSettingsByUser", ctx, suite.userID).Return([]domain.Setting{
		{UserID: suite.userID, Key: domain.SettingAdjustmentWindow, Value: "45"},
		{UserID: suite.userID, Key: domain.SettingDefaultStore, Value: "Warehouse #42"},
	}, nil).Once()

	res, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(45, res.AdjustmentWindow)
	suite.Equal("Warehouse #42", res.DefaultStore)
}

func (suite *SettingServiceTestSuite) TestGetSettings_IgnoresCorruptWindow() {
	ctx := context.Background()
	suite.mockRepo.On("ListSettingsByUser", ctx, suite.userID).Return([]domain.Setting{
		{UserID: suite.userID, Key: domain.SettingAdjustmentWindow, Value: "garbage"},
	}, nil).Once()

	res, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(30, res.AdjustmentWindow)
}

func (suite *SettingServiceTestSuite) TestUpdateSettings_Success() {
	ctx := context.Background()
	window := 60
	store := "Warehouse #7"

	suite.mockRepo.On("SaveSetting", ctx, mock.MatchedBy(func(s domain.Setting) bool {
		return s.UserID == suite.userID && s.Key == domain.SettingAdjustmentWindow && s.Value == "60"
	})).Return(nil).Once()
	suite.mockRepo.On("SaveSetting", ctx, mock.MatchedBy(func(s domain.Setting) bool {
		return s.UserID == suite.userID && s.Key == domain.SettingDefaultStore && s.Value == store
	})).Return(nil).Once()
	suite.mockRepo.On("ListSettingsByUser", ctx, suite.userID).Return([]domain.Setting{
		{UserID: suite.userID, Key: domain.SettingAdjustmentWindow, Value: "60"},
		{UserID: suite.userID, Key: domain.SettingDefaultStore, Value: store},
	}, nil).Once()

	res, err := suite.service.UpdateSettings(ctx, suite.userID, dto.UpdateSettingsRequest{
		AdjustmentWindow: &window,
		DefaultStore:     &store,
	})

	suite.Require().NoError(err)
	suite.Equal(60, res.AdjustmentWindow)
	suite.Equal(store, res.DefaultStore)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingServiceTestSuite) TestUpdateSettings_RejectsNonPositiveWindow() {
	ctx := context.Background()
	window := 0

	res, err := suite.service.UpdateSettings(ctx, suite.userID, dto.UpdateSettingsRequest{AdjustmentWindow: &window})

	suite.Require().Error(err)
	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSetting", mock.Anything, mock.Anything)
}

func (suite *SettingServiceTestSuite) TestUpdateSettings_NoFieldsJustReads() {
	ctx := context.Background()
	suite.mockRepo.On("ListSettingsByUser", ctx, suite.userID).Return([]domain.Setting{}, nil).Once()

	res, err := suite.service.UpdateSettings(ctx, suite.userID, dto.UpdateSettingsRequest{})

	suite.Require().NoError(err)
	suite.Equal(30, res.AdjustmentWindow)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSetting", mock.Anything, mock.Anything)
}

func (suite *SettingServiceTestSuite) TestAdjustmentWindowDays_Stored() {
	ctx := context.Background()
	suite.mockRepo.On("FindSetting", ctx, suite.userID, domain.SettingAdjustmentWindow).
		Return(&domain.Setting{UserID: suite.userID, Key: domain.SettingAdjustmentWindow, Value: "14"}, nil).Once()

	days, err := suite.service.AdjustmentWindowDays(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(14, days)
}

func (suite *SettingServiceTestSuite) TestAdjustmentWindowDays_UnsetFallsBack() {
	ctx := context.Background()
	suite.mockRepo.On("FindSetting", ctx, suite.userID, domain.SettingAdjustmentWindow).
		Return(nil, apperrors.ErrNotFound).Once()

	days, err := suite.service.AdjustmentWindowDays(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(30, days)
}

func (suite *SettingServiceTestSuite) TestAdjustmentWindowDays_CorruptValueFallsBack() {
	ctx := context.Background()
	suite.mockRepo.On("FindSetting", ctx, suite.userID, domain.SettingAdjustmentWindow).
		Return(&domain.Setting{UserID: suite.userID, Key: domain.SettingAdjustmentWindow, Value: "-5"}, nil).Once()

	days, err := suite.service.AdjustmentWindowDays(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(30, days)
}

func (suite *SettingServiceTestSuite) TestAdjustmentWindowDays_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockRepo.On("FindSetting", ctx, suite.userID, domain.SettingAdjustmentWindow).
		Return(nil, expectedErr).Once()

	days, err := suite.service.AdjustmentWindowDays(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Zero(days)
	suite.ErrorIs(err, expectedErr)
}

func TestSettingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingServiceTestSuite))
}
