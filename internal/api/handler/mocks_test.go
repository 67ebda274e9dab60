package handler_test

import (
	"context"

	"bank-ledger/internal/domain/account"
	"bank-ledger/internal/domain/customer"
	"bank-ledger/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockLedgerService struct {
	mock.Mock
}

var _ ledger.LedgerService = (*MockLedgerService)(nil)

func (_m *MockLedgerService) CreateCustomer(ctx context.Context, name, email, phoneNumber string) (*customer.Customer, error) {
	ret := _m.Called(ctx, name, email, phoneNumber)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockLedgerService) CreateAccount(ctx context.Context, name, email, phoneNumber string) (*account.Account, error) {
	ret := _m.Called(ctx, name, email, phoneNumber)

	var r0 *account.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*account.Account)
	}
	return r0, ret.Error(1)
}

func (_m *MockLedgerService) MakeTransaction(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, kind ledger.TransactionKind) (*account.Account, error) {
	ret := _m.Called(ctx, accountID, amount, kind)

	var r0 *account.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*account.Account)
	}
	return r0, ret.Error(1)
}

func (_m *MockLedgerService) AccountStatement(ctx context.Context, accountID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, accountID)
	return ret.String(0), ret.Error(1)
}

func (_m *MockLedgerService) GetAccount(ctx context.Context, accountID uuid.UUID) (*account.Account, error) {
	ret := _m.Called(ctx, accountID)

	var r0 *account.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*account.Account)
	}
	return r0, ret.Error(1)
}

func (_m *MockLedgerService) AccountsForCustomer(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*account.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*account.Account)
	}
	return r0, ret.Error(1)
}
