package ledger_test

import (
	"context"

	"bank-ledger/internal/domain/account"
	"bank-ledger/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	ret := _m.Called(ctx, cust)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *customer.Customer) error); ok {
		r0 = rf(ctx, cust)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	ret := _m.Called(ctx, email)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) *customer.Customer); ok {
		r0 = rf(ctx, email)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerRepository) FindOrCreate(ctx context.Context, candidate *customer.Customer) (*customer.Customer, bool, error) {
	ret := _m.Called(ctx, candidate)

	if rf, ok := ret.Get(0).(func(context.Context, *customer.Customer) (*customer.Customer, bool, error)); ok {
		return rf(ctx, candidate)
	}

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}

	return r0, ret.Bool(1), ret.Error(2)
}

type MockAccountRepository struct {
	mock.Mock
}

func (_m *MockAccountRepository) Save(ctx context.Context, acct *account.Account) error {
	ret := _m.Called(ctx, acct)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *account.Account) error); ok {
		r0 = rf(ctx, acct)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockAccountRepository) FindByID(ctx context.Context, accountID uuid.UUID) (*account.Account, error) {
	ret := _m.Called(ctx, accountID)

	var r0 *account.Account
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *account.Account); ok {
		r0 = rf(ctx, accountID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*account.Account)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, accountID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockAccountRepository) Update(ctx context.Context, accountID uuid.UUID, mutate func(*account.Account) error) (*account.Account, error) {
	ret := _m.Called(ctx, accountID, mutate)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, func(*account.Account) error) (*account.Account, error)); ok {
		return rf(ctx, accountID, mutate)
	}

	var r0 *account.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*account.Account)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, accountID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockAccountRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*account.Account
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*account.Account); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*account.Account)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
