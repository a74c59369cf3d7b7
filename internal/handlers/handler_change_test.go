package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/cashier_app/internal/apperrors"
	"github.com/SscSPs/cashier_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashier_app/internal/core/ports/services"
	"github.com/SscSPs/cashier_app/internal/dto"
	"github.com/SscSPs/cashier_app/internal/handlers"
	"github.com/SscSPs/cashier_app/internal/utils/cashier"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ChangeService ---
type MockChangeService struct {
	mock.Mock
}

func (m *MockChangeService) CalculateChange(ctx context.Context, req dto.CalculateChangeRequest) (*domain.ChangeCalculation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeCalculation), args.Error(1)
}

func (m *MockChangeService) BreakDownUnits(ctx context.Context, changeUnits domain.MinorUnits) domain.ChangeResult {
	args := m.Called(ctx, changeUnits)
	return args.Get(0).(domain.ChangeResult)
}

func (m *MockChangeService) ListDenominations(ctx context.Context) []domain.Denomination {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Denomination)
}

func (m *MockChangeService) GetCalculationByID(ctx context.Context, calculationID string) (*domain.ChangeCalculation, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeCalculation), args.Error(1)
}

func (m *MockChangeService) ListCalculations(ctx context.Context, params dto.ListCalculationsParams) (*dto.ListCalculationsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListCalculationsResponse), args.Error(1)
}

func (m *MockChangeService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ChangeSvcFacade = (*MockChangeService)(nil)

// --- Test Suite ---
type ChangeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockChangeService
}

func (suite *ChangeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockChangeService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterChangeRoutes(v1, suite.mockService)
}

func (suite *ChangeHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ChangeHandlerTestSuite) TestCalculateChange_Success() {
	price := decimal.RequireFromString("12.33")
	paid := decimal.RequireFromString("56")
	calc := &domain.ChangeCalculation{
		CalculationID: uuid.NewString(),
		Price:         price,
		AmountPaid:    paid,
		Result:        cashier.CalculateChange(4367),
		CreatedAt:     time.Now().UTC(),
	}

	suite.mockService.On("CalculateChange", mock.Anything, mock.MatchedBy(func(r dto.CalculateChangeRequest) bool {
		return r.Price != nil && r.Price.Equal(price) && r.AmountPaid != nil && r.AmountPaid.Equal(paid)
	})).Return(calc, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/change", map[string]any{"price": "12.33", "amountPaid": 56})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ChangeCalculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(calc.CalculationID, resp.CalculationID)
	suite.Equal("CHANGE_DUE", resp.Outcome)
	suite.Equal("43.67", resp.ChangeDue)
	suite.True(resp.LargeChange)
	suite.Require().Len(resp.Breakdown, 7)
	suite.Equal("20$", resp.Breakdown[0].Label)
	suite.Equal(int64(2), resp.Breakdown[0].Count)
	suite.Equal("40.00", resp.Breakdown[0].Subtotal)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ChangeHandlerTestSuite) TestCalculateChange_MissingField() {
	w := suite.do(http.MethodPost, "/api/v1/change", map[string]any{"price": "12.33"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CalculateChange", mock.Anything, mock.Anything)
}

func (suite *ChangeHandlerTestSuite) TestCalculateChange_MalformedAmount() {
	w := suite.do(http.MethodPost, "/api/v1/change", map[string]any{"price": "twelve", "amountPaid": "56"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CalculateChange", mock.Anything, mock.Anything)
}

func (suite *ChangeHandlerTestSuite) TestCalculateChange_ValidationError() {
	suite.mockService.On("CalculateChange", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodPost, "/api/v1/change", map[string]any{"price": "-1", "amountPaid": "56"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ChangeHandlerTestSuite) TestCalculateChange_ServiceError() {
	suite.mockService.On("CalculateChange", mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodPost, "/api/v1/change", map[string]any{"price": "1", "amountPaid": "2"})

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *ChangeHandlerTestSuite) TestBreakDownUnits_Insufficient() {
	suite.mockService.On("BreakDownUnits", mock.Anything, domain.MinorUnits(-150)).
		Return(cashier.CalculateChange(-150)).Once()

	w := suite.do(http.MethodPost, "/api/v1/change/units", map[string]any{"changeUnits": -150})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChangeResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INSUFFICIENT_FUNDS", resp.Outcome)
	suite.Equal(int64(150), resp.ShortfallUnits)
	suite.Equal("1.50", resp.Shortfall)
	suite.Empty(resp.Breakdown)
}

func (suite *ChangeHandlerTestSuite) TestBreakDownUnits_RejectsUnrepresentableShortfall() {
	w := suite.do(http.MethodPost, "/api/v1/change/units", map[string]any{"changeUnits": int64(math.MinInt64)})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "BreakDownUnits", mock.Anything, mock.Anything)
}

func (suite *ChangeHandlerTestSuite) TestBreakDownUnits_AcceptsSmallestShortfall() {
	suite.mockService.On("BreakDownUnits", mock.Anything, domain.MinMinorUnits).
		Return(cashier.CalculateChange(domain.MinMinorUnits)).Once()

	w := suite.do(http.MethodPost, "/api/v1/change/units", map[string]any{"changeUnits": int64(domain.MinMinorUnits)})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChangeResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(math.MaxInt64), resp.ShortfallUnits)
}

func (suite *ChangeHandlerTestSuite) TestBreakDownUnits_ZeroIsAccepted() {
	suite.mockService.On("BreakDownUnits", mock.Anything, domain.MinorUnits(0)).
		Return(cashier.CalculateChange(0)).Once()

	w := suite.do(http.MethodPost, "/api/v1/change/units", map[string]any{"changeUnits": 0})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"outcome":"EXACT_PAYMENT"`)
}

func (suite *ChangeHandlerTestSuite) TestListDenominations() {
	suite.mockService.On("ListDenominations", mock.Anything).Return(domain.Denominations).Once()

	w := suite.do(http.MethodGet, "/api/v1/denominations", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.DenominationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, len(domain.Denominations))
	suite.Equal("20$", resp[0].Label)
	suite.Equal("20.00", resp[0].Display)
	suite.Equal("1¢", resp[len(resp)-1].Label)
	suite.Equal("0.01", resp[len(resp)-1].Display)
}

func (suite *ChangeHandlerTestSuite) TestGetCalculation_NotFound() {
	id := uuid.NewString()
	suite.mockService.On("GetCalculationByID", mock.Anything, id).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/change/"+id, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ChangeHandlerTestSuite) TestGetCalculation_InvalidID() {
	suite.mockService.On("GetCalculationByID", mock.Anything, "nope").Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodGet, "/api/v1/change/nope", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ChangeHandlerTestSuite) TestListCalculations() {
	calcs := []domain.ChangeCalculation{
		{CalculationID: "b", Result: cashier.CalculateChange(0)},
		{CalculationID: "a", Result: cashier.CalculateChange(1)},
	}
	nextToken := "token-abc"
	page := dto.ToListCalculationsResponse(calcs, &nextToken)
	suite.mockService.On("ListCalculations", mock.Anything, dto.ListCalculationsParams{Limit: 2}).Return(&page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/change?limit=2", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCalculationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Calculations, 2)
	suite.Equal("b", resp.Calculations[0].CalculationID)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
}

func (suite *ChangeHandlerTestSuite) TestListCalculations_PassesNextToken() {
	token := "abc"
	page := dto.ToListCalculationsResponse(nil, nil)
	suite.mockService.On("ListCalculations", mock.Anything, dto.ListCalculationsParams{NextToken: &token}).Return(&page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/change?nextToken=abc", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "nextToken")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ChangeHandlerTestSuite) TestListCalculations_InvalidToken() {
	suite.mockService.On("ListCalculations", mock.Anything, mock.Anything).Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodGet, "/api/v1/change?nextToken=%25%25", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ChangeHandlerTestSuite) TestListCalculations_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/change?limit=1000", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListCalculations", mock.Anything, mock.Anything)
}

func TestChangeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChangeHandlerTestSuite))
}
