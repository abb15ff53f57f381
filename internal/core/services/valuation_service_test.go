package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/core/services"
	"github.com/innajain/ledger-sub000/internal/pricefeed"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock price collaborators ---
type MockNAVSource struct {
	mock.Mock
}

func (m *MockNAVSource) NAV(ctx context.Context, code string) (*domain.PriceQuote, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceQuote), args.Error(1)
}

type MockQuoteSource struct {
	mock.Mock
}

func (m *MockQuoteSource) LatestPrice(ctx context.Context, symbol string) (*domain.PriceQuote, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceQuote), args.Error(1)
}

type MockPriceCache struct {
	mock.Mock
}

func (m *MockPriceCache) Get(ctx context.Context, kind, code string) (*domain.PriceQuote, bool, error) {
	args := m.Called(ctx, kind, code)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.PriceQuote), args.Bool(1), args.Error(2)
}

func (m *MockPriceCache) Set(ctx context.Context, kind, code string, quote domain.PriceQuote) error {
	args := m.Called(ctx, kind, code, quote)
	return args.Error(0)
}

func (m *MockPriceCache) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite ---
type ValuationServiceTestSuite struct {
	suite.Suite
	mockNAV    *MockNAVSource
	mockQuotes *MockQuoteSource
	mockCache  *MockPriceCache
	service    portssvc.ValuationSvcFacade
}

func (suite *ValuationServiceTestSuite) SetupTest() {
	suite.mockNAV = new(MockNAVSource)
	suite.mockQuotes = new(MockQuoteSource)
	suite.mockCache = new(MockPriceCache)
	suite.service = services.NewValuationService(suite.mockNAV, suite.mockQuotes, suite.mockCache)
}

func strp(s string) *string { return &s }

// --- Test Cases ---

func (suite *ValuationServiceTestSuite) TestResolvePrice_CurrencyIsAlwaysOne() {
	ctx := context.Background()
	asset := domain.Asset{AssetID: uuid.NewString(), Type: domain.AssetCurrency}

	quote, err := suite.service.ResolvePrice(ctx, asset)

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.True(quote.Price.Equal(decimal.NewFromInt(1)))
	suite.mockCache.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
	suite.mockNAV.AssertNotCalled(suite.T(), "NAV", mock.Anything, mock.Anything)
}

func (suite *ValuationServiceTestSuite) TestResolvePrice_OtherHasNoPrice() {
	ctx := context.Background()
	asset := domain.Asset{AssetID: uuid.NewString(), Type: domain.AssetOther}

	quote, err := suite.service.ResolvePrice(ctx, asset)

	suite.Require().NoError(err)
	suite.Nil(quote)
}

func (suite *ValuationServiceTestSuite) TestResolvePrice_MutualFundWithoutCode() {
	ctx := context.Background()
	asset := domain.Asset{AssetID: uuid.NewString(), Type: domain.AssetMutualFund}

	quote, err := suite.service.ResolvePrice(ctx, asset)

	suite.Require().NoError(err)
	suite.Nil(quote)
	suite.mockNAV.AssertNotCalled(suite.T(), "NAV", mock.Anything, mock.Anything)
}

func (suite *ValuationServiceTestSuite) TestResolvePrice_MutualFundCacheHit() {
	ctx := context.Background()
	asset := domain.Asset{AssetID: uuid.NewString(), Type: domain.AssetMutualFund, Code: strp("120503")}
	cached := &domain.PriceQuote{Price: dec("84.3112"), AsOf: time.Now()}

	suite.mockCache.On("Get", ctx, "mf", "120503").Return(cached, true, nil).Once()

	quote, err := suite.service.ResolvePrice(ctx, asset)

	suite.Require().NoError(err)
	suite.Equal(cached, quote)
	suite.mockNAV.AssertNotCalled(suite.T(), "NAV", mock.Anything, mock.Anything)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ValuationServiceTestSuite) TestResolvePrice_MutualFundMissFetchesAndCaches() {
	ctx := context.Background()
	asset := domain.Asset{AssetID: uuid.NewString(), Type: domain.AssetMutualFund, Code: strp("120503")}
	fetched := &domain.PriceQuote{Price: dec("84.3112"), AsOf: time.Now()}

	suite.mockCache.On("Get", ctx, "mf", "120503").Return(nil, false, nil).Once()
	suite.mockNAV.On("NAV", ctx, "120503").Return(fetched, nil).Once()
	suite.mockCache.On("Set", ctx, "mf", "120503", *fetched).Return(nil).Once()

	quote, err := suite.service.ResolvePrice(ctx, asset)

	suite.Require().NoError(err)
	suite.Equal(fetched, quote)
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockNAV.AssertExpectations(suite.T())
}

func (suite *ValuationServiceTestSuite) TestResolvePrice_NAVNotPublishedDegradesToNil() {
	ctx := context.Background()
	asset := domain.Asset{AssetID: uuid.NewString(), Type: domain.AssetMutualFund, Code: strp("999999")}

	suite.mockCache.On("Get", ctx, "mf", "999999").Return(nil, false, nil).Once()
	suite.mockNAV.On("NAV", ctx, "999999").Return(nil, pricefeed.ErrPriceNotFound).Once()

	quote, err := suite.service.ResolvePrice(ctx, asset)

	suite.Require().NoError(err)
	suite.Nil(quote)
	suite.mockCache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ValuationServiceTestSuite) TestResolvePrice_ETFFetchFailureDegradesToNil() {
	ctx := context.Background()
	asset := domain.Asset{AssetID: uuid.NewString(), Type: domain.AssetETF, Code: strp("NIFTYBEES.NS")}

	suite.mockCache.On("Get", ctx, "etf", "NIFTYBEES.NS").Return(nil, false, nil).Once()
	suite.mockQuotes.On("LatestPrice", ctx, "NIFTYBEES.NS").Return(nil, assert.AnError).Once()

	quote, err := suite.service.ResolvePrice(ctx, asset)

	suite.Require().NoError(err)
	suite.Nil(quote)
	suite.mockCache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ValuationServiceTestSuite) TestValueBalances_MixedPricedAndUnknown() {
	ctx := context.Background()
	cashID := uuid.NewString()
	fundID := uuid.NewString()
	goldID := uuid.NewString()

	balances := map[string]decimal.Decimal{
		cashID: dec("1500"),
		fundID: dec("10"),
		goldID: dec("5"),
	}
	assets := map[string]domain.Asset{
		cashID: {AssetID: cashID, Name: "INR", Type: domain.AssetCurrency},
		fundID: {AssetID: fundID, Name: "Index Fund", Type: domain.AssetMutualFund, Code: strp("120503")},
		goldID: {AssetID: goldID, Name: "Gold Coins", Type: domain.AssetOther},
	}

	nav := &domain.PriceQuote{Price: dec("80"), AsOf: time.Now()}
	suite.mockCache.On("Get", mock.Anything, "mf", "120503").Return(nav, true, nil).Once()

	valuation, err := suite.service.ValueBalances(ctx, balances, assets)

	suite.Require().NoError(err)
	suite.Require().NotNil(valuation)
	suite.Len(valuation.Holdings, 3)
	suite.Equal(1, valuation.UnknownPrices)
	// 1500*1 + 10*80, the unpriced holding contributes nothing.
	suite.True(valuation.TotalValue.Equal(dec("2300")), "got total %s", valuation.TotalValue)

	for _, h := range valuation.Holdings {
		if h.AssetID == goldID {
			suite.Nil(h.Price)
			suite.Nil(h.MonetaryValue)
		} else {
			suite.NotNil(h.Price)
			suite.NotNil(h.MonetaryValue)
		}
	}
}

func (suite *ValuationServiceTestSuite) TestValueBalances_UnknownAssetIsError() {
	ctx := context.Background()
	balances := map[string]decimal.Decimal{uuid.NewString(): dec("1")}

	valuation, err := suite.service.ValueBalances(ctx, balances, map[string]domain.Asset{})

	suite.Require().Error(err)
	suite.Nil(valuation)
}

func (suite *ValuationServiceTestSuite) TestFlushPriceCache() {
	ctx := context.Background()
	suite.mockCache.On("Flush", ctx).Return(nil).Once()

	err := suite.service.FlushPriceCache(ctx)

	suite.Require().NoError(err)
	suite.mockCache.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestValuationService(t *testing.T) {
	suite.Run(t, new(ValuationServiceTestSuite))
}
