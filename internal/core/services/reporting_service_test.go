package services_test

import (
	"context"
	"testing"

	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BucketRepository ---
type MockBucketRepository struct {
	mock.Mock
}

func (m *MockBucketRepository) FindBucketByID(ctx context.Context, bucketID string) (*domain.PurposeBucket, error) {
	args := m.Called(ctx, bucketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurposeBucket), args.Error(1)
}

func (m *MockBucketRepository) FindBucketByName(ctx context.Context, name string) (*domain.PurposeBucket, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurposeBucket), args.Error(1)
}

func (m *MockBucketRepository) ListBuckets(ctx context.Context) ([]domain.PurposeBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurposeBucket), args.Error(1)
}

func (m *MockBucketRepository) SaveBucket(ctx context.Context, bucket domain.PurposeBucket) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *MockBucketRepository) UpdateBucket(ctx context.Context, bucket domain.PurposeBucket) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *MockBucketRepository) DeleteBucket(ctx context.Context, bucketID string) error {
	args := m.Called(ctx, bucketID)
	return args.Error(0)
}

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetsByIDs(ctx context.Context, assetIDs []string) (map[string]domain.Asset, error) {
	args := m.Called(ctx, assetIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

// --- Test Suite ---
// The valuation dependency is the real service with mocked price
// collaborators, so totals flow through the same pricing path production
// uses.
type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockBucketRepo  *MockBucketRepository
	mockAssetRepo   *MockAssetRepository
	mockLedgerRepo  *MockLedgerRepository
	mockNAV         *MockNAVSource
	mockQuotes      *MockQuoteSource
	mockCache       *MockPriceCache
	service         portssvc.ReportingSvcFacade

	reserve decimal.Decimal
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockBucketRepo = new(MockBucketRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockNAV = new(MockNAVSource)
	suite.mockQuotes = new(MockQuoteSource)
	suite.mockCache = new(MockPriceCache)
	suite.reserve = dec("50000")

	valuation := services.NewValuationService(suite.mockNAV, suite.mockQuotes, suite.mockCache)
	suite.service = services.NewReportingService(
		suite.mockAccountRepo,
		suite.mockBucketRepo,
		suite.mockAssetRepo,
		suite.mockLedgerRepo,
		valuation,
		"Emergency Fund",
		suite.reserve,
	)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestAccountValuation_ToleratesUnknownPrices() {
	ctx := context.Background()
	accountID := uuid.NewString()
	cashID := uuid.NewString()
	goldID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, accountID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: cashID, Quantity: dec("2000")},
		{Kind: domain.EntryOpeningBalance, AssetID: goldID, Quantity: dec("3")},
	}, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByIDs", ctx, mock.Anything).Return(map[string]domain.Asset{
		cashID: {AssetID: cashID, Name: "INR", Type: domain.AssetCurrency},
		goldID: {AssetID: goldID, Name: "Gold Coins", Type: domain.AssetOther},
	}, nil).Once()

	valuation, err := suite.service.AccountValuation(ctx, accountID)

	suite.Require().NoError(err)
	suite.True(valuation.TotalValue.Equal(dec("2000")))
	suite.Equal(1, valuation.UnknownPrices)
}

func (suite *ReportingServiceTestSuite) TestAccountSummaries() {
	ctx := context.Background()
	accountA := domain.Account{AccountID: uuid.NewString(), Name: "Savings"}
	accountB := domain.Account{AccountID: uuid.NewString(), Name: "Wallet"}
	cashID := uuid.NewString()
	assets := map[string]domain.Asset{
		cashID: {AssetID: cashID, Name: "INR", Type: domain.AssetCurrency},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{accountA, accountB}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountA.AccountID).Return(&accountA, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountB.AccountID).Return(&accountB, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, accountA.AccountID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryIncome, AssetID: cashID, Quantity: dec("900")},
	}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, accountB.AccountID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryIncome, AssetID: cashID, Quantity: dec("100")},
		{Kind: domain.EntryExpense, AssetID: cashID, Quantity: dec("40")},
	}, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByIDs", ctx, mock.Anything).Return(assets, nil).Twice()

	summaries, err := suite.service.AccountSummaries(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.True(summaries[0].TotalValue.Equal(dec("900")))
	suite.True(summaries[1].TotalValue.Equal(dec("60")))
}

func (suite *ReportingServiceTestSuite) TestExpendableMoney() {
	ctx := context.Background()
	account := domain.Account{AccountID: uuid.NewString(), Name: "Savings"}
	cashID := uuid.NewString()
	fundID := uuid.NewString()
	fundCode := "120503"
	emergencyBucket := domain.PurposeBucket{BucketID: uuid.NewString(), Name: "Emergency Fund"}

	assets := map[string]domain.Asset{
		cashID: {AssetID: cashID, Name: "INR", Type: domain.AssetCurrency},
		fundID: {AssetID: fundID, Name: "Index Fund", Type: domain.AssetMutualFund, Code: &fundCode},
	}
	cashOnly := map[string]domain.Asset{
		cashID: assets[cashID],
	}
	nav := &domain.PriceQuote{Price: dec("100")}

	// Overall holdings: 200000 cash + 500 fund units at 100 = 250000 total.
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, account.AccountID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: cashID, Quantity: dec("200000")},
		{Kind: domain.EntryTradeCredit, AssetID: fundID, Quantity: dec("500")},
	}, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByIDs", ctx, mock.Anything).Return(assets, nil).Once()
	suite.mockCache.On("Get", mock.Anything, "mf", fundCode).Return(nav, true, nil)

	// Emergency bucket holds 30000 in cash.
	suite.mockBucketRepo.On("FindBucketByName", ctx, "Emergency Fund").Return(&emergencyBucket, nil).Once()
	suite.mockBucketRepo.On("FindBucketByID", ctx, emergencyBucket.BucketID).Return(&emergencyBucket, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByBucket", ctx, emergencyBucket.BucketID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: cashID, Quantity: dec("30000")},
	}, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByIDs", ctx, mock.Anything).Return(cashOnly, nil).Once()

	result, err := suite.service.ExpendableMoney(ctx)

	suite.Require().NoError(err)
	suite.True(result.TotalValue.Equal(dec("250000")), "total %s", result.TotalValue)
	suite.True(result.InvestmentValue.Equal(dec("50000")), "investment %s", result.InvestmentValue)
	suite.True(result.EmergencyValue.Equal(dec("30000")), "emergency %s", result.EmergencyValue)
	suite.True(result.Reserve.Equal(suite.reserve))
	// 250000 - 50000 - 30000 - 50000
	suite.True(result.Expendable.Equal(dec("120000")), "expendable %s", result.Expendable)
}

func (suite *ReportingServiceTestSuite) TestExpendableMoney_MissingEmergencyBucket() {
	ctx := context.Background()
	account := domain.Account{AccountID: uuid.NewString()}
	cashID := uuid.NewString()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, account.AccountID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: cashID, Quantity: dec("100000")},
	}, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByIDs", ctx, mock.Anything).Return(map[string]domain.Asset{
		cashID: {AssetID: cashID, Name: "INR", Type: domain.AssetCurrency},
	}, nil).Once()
	suite.mockBucketRepo.On("FindBucketByName", ctx, "Emergency Fund").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ExpendableMoney(ctx)

	suite.Require().NoError(err)
	suite.True(result.EmergencyValue.IsZero())
	// 100000 - 0 - 0 - 50000
	suite.True(result.Expendable.Equal(dec("50000")), "expendable %s", result.Expendable)
}

func (suite *ReportingServiceTestSuite) TestConservationAudit_Balanced() {
	ctx := context.Background()
	account := domain.Account{AccountID: uuid.NewString()}
	bucketA := domain.PurposeBucket{BucketID: uuid.NewString(), Name: "Living"}
	bucketB := domain.PurposeBucket{BucketID: uuid.NewString(), Name: "Travel"}
	cashID := uuid.NewString()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, account.AccountID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: cashID, Quantity: dec("1000")},
	}, nil).Once()
	suite.mockBucketRepo.On("ListBuckets", ctx).Return([]domain.PurposeBucket{bucketA, bucketB}, nil).Once()
	// A reallocation moved 300 from Living to Travel; attribution still sums
	// to the account-side 1000.
	suite.mockLedgerRepo.On("FindEntriesByBucket", ctx, bucketA.BucketID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: cashID, Quantity: dec("1000")},
		{Kind: domain.EntryReallocationOut, AssetID: cashID, Quantity: dec("300")},
	}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByBucket", ctx, bucketB.BucketID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryReallocationIn, AssetID: cashID, Quantity: dec("300")},
	}, nil).Once()

	audit, err := suite.service.ConservationAudit(ctx)

	suite.Require().NoError(err)
	suite.True(audit.Balanced)
	suite.Require().Len(audit.Entries, 1)
	suite.True(audit.Entries[0].Difference.IsZero())
}

func (suite *ReportingServiceTestSuite) TestConservationAudit_ReportsDrift() {
	ctx := context.Background()
	account := domain.Account{AccountID: uuid.NewString()}
	bucket := domain.PurposeBucket{BucketID: uuid.NewString(), Name: "Living"}
	cashID := uuid.NewString()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, account.AccountID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: cashID, Quantity: dec("1000")},
	}, nil).Once()
	suite.mockBucketRepo.On("ListBuckets", ctx).Return([]domain.PurposeBucket{bucket}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByBucket", ctx, bucket.BucketID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: cashID, Quantity: dec("900")},
	}, nil).Once()

	audit, err := suite.service.ConservationAudit(ctx)

	suite.Require().NoError(err)
	suite.False(audit.Balanced)
	suite.Require().Len(audit.Entries, 1)
	suite.True(audit.Entries[0].Difference.Equal(dec("100")))
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
