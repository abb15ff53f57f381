package services_test

import (
	"context"
	"testing"

	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/core/services"
	"github.com/innajain/ledger-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindOpeningBalancesByAccount(ctx context.Context, accountID string) ([]domain.OpeningBalance, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpeningBalance), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account, openingBalances []domain.OpeningBalance) error {
	args := m.Called(ctx, account, openingBalances)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, openingBalances []domain.OpeningBalance) error {
	args := m.Called(ctx, account, openingBalances)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntriesByAccount(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByBucket(ctx context.Context, bucketID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, bucketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockLedgerRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_WithOpeningBalances() {
	ctx := context.Background()
	assetID := uuid.NewString()
	bucketA := uuid.NewString()
	bucketB := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name: "HDFC Savings",
		OpeningBalances: []dto.OpeningBalanceRequest{
			{
				AssetID:  assetID,
				Quantity: dec("10000"),
				Date:     "01-04-2025",
				Allocations: []dto.AllocationRequest{
					{BucketID: bucketA, Quantity: dec("7000")},
					{BucketID: bucketB, Quantity: dec("3000")},
				},
			},
		},
	}

	suite.mockAccountRepo.On("SaveAccount", ctx,
		mock.MatchedBy(func(a domain.Account) bool { return a.Name == req.Name }),
		mock.MatchedBy(func(obs []domain.OpeningBalance) bool {
			return len(obs) == 1 &&
				obs[0].AssetID == assetID &&
				len(obs[0].Allocations) == 2 &&
				obs[0].Allocations[0].ParentID == obs[0].OpeningBalanceID
		}),
	).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(req.Name, account.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_AllocationMismatchStagesNothing() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name: "HDFC Savings",
		OpeningBalances: []dto.OpeningBalanceRequest{
			{
				AssetID:  uuid.NewString(),
				Quantity: dec("10000"),
				Date:     "01-04-2025",
				Allocations: []dto.AllocationRequest{
					{BucketID: uuid.NewString(), Quantity: dec("7000")},
					{BucketID: uuid.NewString(), Quantity: dec("2000")},
				},
			},
		},
	}

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateAssetRejected() {
	ctx := context.Background()
	assetID := uuid.NewString()
	ob := dto.OpeningBalanceRequest{
		AssetID:  assetID,
		Quantity: dec("100"),
		Date:     "01-04-2025",
		Allocations: []dto.AllocationRequest{
			{BucketID: uuid.NewString(), Quantity: dec("100")},
		},
	}
	req := dto.CreateAccountRequest{
		Name:            "Wallet",
		OpeningBalances: []dto.OpeningBalanceRequest{ob, ob},
	}

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NameOnlyKeepsOpeningBalances() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, Name: "Old Name"}
	existingOBs := []domain.OpeningBalance{
		{OpeningBalanceID: uuid.NewString(), AccountID: accountID, AssetID: uuid.NewString(), Quantity: dec("50")},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindOpeningBalancesByAccount", ctx, accountID).Return(existingOBs, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx,
		mock.MatchedBy(func(a domain.Account) bool { return a.Name == "New Name" }),
		existingOBs,
	).Return(nil).Once()

	newName := "New Name"
	account, err := suite.service.UpdateAccount(ctx, accountID, dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("New Name", account.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountBalances_FoldsEntries() {
	ctx := context.Background()
	accountID := uuid.NewString()
	assetID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, accountID).Return([]domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: assetID, Quantity: dec("1000")},
		{Kind: domain.EntryIncome, AssetID: assetID, Quantity: dec("500")},
		{Kind: domain.EntryExpense, AssetID: assetID, Quantity: dec("200")},
		{Kind: domain.EntryTransferOut, AssetID: assetID, Quantity: dec("100")},
	}, nil).Once()

	balances, err := suite.service.GetAccountBalances(ctx, accountID)

	suite.Require().NoError(err)
	suite.Require().Contains(balances, assetID)
	suite.True(balances[assetID].Equal(dec("1200")), "got %s", balances[assetID])
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountBalances_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	balances, err := suite.service.GetAccountBalances(ctx, accountID)

	suite.Require().Error(err)
	suite.Nil(balances)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindEntriesByAccount", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
