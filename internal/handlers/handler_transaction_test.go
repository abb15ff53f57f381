package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/dto"
	"github.com/innajain/ledger-sub000/internal/handlers"
	"github.com/innajain/ledger-sub000/internal/middleware"
	"github.com/innajain/ledger-sub000/internal/platform/config"
	"github.com/innajain/ledger-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateTrade(ctx context.Context, req dto.CreateTradeRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateIncome(ctx context.Context, transactionID string, req dto.UpdateIncomeRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateExpense(ctx context.Context, transactionID string, req dto.UpdateExpenseRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransfer(ctx context.Context, transactionID string, req dto.UpdateTransferRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTrade(ctx context.Context, transactionID string, req dto.UpdateTradeRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) AccountValuation(ctx context.Context, accountID string) (*domain.Valuation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Valuation), args.Error(1)
}
func (m *MockReportingService) BucketValuation(ctx context.Context, bucketID string) (*domain.Valuation, error) {
	args := m.Called(ctx, bucketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Valuation), args.Error(1)
}
func (m *MockReportingService) AccountSummaries(ctx context.Context) ([]domain.AccountSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountSummary), args.Error(1)
}
func (m *MockReportingService) BucketSummaries(ctx context.Context) ([]domain.BucketSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BucketSummary), args.Error(1)
}
func (m *MockReportingService) ConservationAudit(ctx context.Context) (*domain.ConservationAudit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConservationAudit), args.Error(1)
}
func (m *MockReportingService) ExpendableMoney(ctx context.Context) (*domain.ExpendableMoney, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpendableMoney), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockTxnSvc    *MockTransactionService
	mockReporting *MockReportingService
	password      string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidations())

	suite.password = "correct horse battery staple"
	hash, err := utils.HashPassword(suite.password)
	suite.Require().NoError(err)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))

	suite.mockTxnSvc = new(MockTransactionService)
	suite.mockReporting = new(MockReportingService)

	cfg := &config.Config{
		AuthPasswordHash: hash,
		RateLimit:        "100-M",
	}
	services := &portssvc.ServiceContainer{
		Transaction: suite.mockTxnSvc,
		Reporting:   suite.mockReporting,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// serve performs an authenticated request against the suite router.
func (suite *TransactionHandlerTestSuite) serve(method, url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	req.SetBasicAuth("anyone", suite.password)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestMissingCredentialsRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestWrongPasswordRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.SetBasicAuth("anyone", "not the password")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestCreateIncome_Success() {
	txnID := uuid.NewString()
	accountID := uuid.NewString()
	assetID := uuid.NewString()
	bucketID := uuid.NewString()

	expected := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.TxnIncome,
		Date:          time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		Description:   "Salary",
		Income: &domain.IncomeTxn{
			AssetID:   assetID,
			AccountID: accountID,
			Quantity:  decimal.NewFromInt(50000),
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BucketID: bucketID, Quantity: decimal.NewFromInt(50000)},
			},
		},
	}
	suite.mockTxnSvc.On("CreateIncome", mock.Anything, mock.MatchedBy(func(req dto.CreateIncomeRequest) bool {
		return req.AccountID == accountID && req.Quantity.Equal(decimal.NewFromInt(50000))
	})).Return(expected, nil).Once()

	body := fmt.Sprintf(`{
		"date": "15-04-2025",
		"description": "Salary",
		"assetID": %q,
		"accountID": %q,
		"quantity": "50000",
		"allocations": [{"bucketID": %q, "quantity": "50000"}]
	}`, assetID, accountID, bucketID)

	w := suite.serve(http.MethodPost, "/api/v1/transactions/income", body)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(txnID, res.TransactionID)
	suite.Equal(domain.TxnIncome, res.Type)
	suite.Equal("15-04-2025", res.Date)
	suite.Require().NotNil(res.Income)
	suite.Len(res.Income.Allocations, 1)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateIncome_NonPositiveQuantityRejectedAtBinding() {
	body := fmt.Sprintf(`{
		"date": "15-04-2025",
		"assetID": %q,
		"accountID": %q,
		"quantity": "-5",
		"allocations": [{"bucketID": %q, "quantity": "-5"}]
	}`, uuid.NewString(), uuid.NewString(), uuid.NewString())

	w := suite.serve(http.MethodPost, "/api/v1/transactions/income", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "CreateIncome")
}

func (suite *TransactionHandlerTestSuite) TestCreateIncome_ValidationErrorIs400() {
	suite.mockTxnSvc.On("CreateIncome", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("allocations for income x sum to 400, expected 500: %w", apperrors.ErrValidation)).Once()

	body := fmt.Sprintf(`{
		"date": "15-04-2025",
		"assetID": %q,
		"accountID": %q,
		"quantity": "500",
		"allocations": [{"bucketID": %q, "quantity": "400"}]
	}`, uuid.NewString(), uuid.NewString(), uuid.NewString())

	w := suite.serve(http.MethodPost, "/api/v1/transactions/income", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	id := uuid.NewString()
	suite.mockTxnSvc.On("GetTransactionByID", mock.Anything, id).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions/"+id, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ClampsLimit() {
	suite.mockTxnSvc.On("ListTransactions", mock.Anything, 200, 0).
		Return([]domain.Transaction{}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions?limit=9999", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	id := uuid.NewString()
	suite.mockTxnSvc.On("DeleteTransaction", mock.Anything, id).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/transactions/"+id, "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestSummary_FormatsExpendable() {
	suite.mockReporting.On("AccountSummaries", mock.Anything).Return([]domain.AccountSummary{}, nil).Once()
	suite.mockReporting.On("BucketSummaries", mock.Anything).Return([]domain.BucketSummary{}, nil).Once()
	suite.mockReporting.On("ExpendableMoney", mock.Anything).Return(&domain.ExpendableMoney{
		TotalValue:      decimal.NewFromInt(250000),
		InvestmentValue: decimal.NewFromInt(50000),
		EmergencyValue:  decimal.NewFromInt(30000),
		Reserve:         decimal.NewFromInt(50000),
		Expendable:      decimal.NewFromInt(120000),
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/summary", "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("₹ 1,20,000", res.Expendable.ExpendableFormatted)
	suite.mockReporting.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
