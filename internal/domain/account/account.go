package account

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	accountNumberPrefix = "BOAZ"
	accountNumberIDLen  = 12
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Account is a ledger record holding a balance owned by one customer.
// The balance is never negative and is only mutated through Deposit and
// Withdraw.
type Account struct {
	AccountID     uuid.UUID
	CustomerID    uuid.UUID
	AccountNumber string
	balance       decimal.Decimal
}

// NewAccount creates a zero-balance account for the given customer with a
// fresh identifier and an account number derived from it.
func NewAccount(customerID uuid.UUID) *Account {
	accountID := uuid.New()
	return &Account{
		AccountID:     accountID,
		CustomerID:    customerID,
		AccountNumber: FormatAccountNumber(accountID),
		balance:       decimal.Zero,
	}
}

// FormatAccountNumber derives the human-readable account number from an
// account identifier: a constant prefix followed by a fixed-length prefix of
// the identifier's canonical string form.
func FormatAccountNumber(accountID uuid.UUID) string {
	return accountNumberPrefix + accountID.String()[:accountNumberIDLen]
}

// Deposit adds amount to the balance. Amount validation is the caller's
// responsibility.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Withdraw subtracts amount from the balance. If the balance is smaller than
// amount it returns ErrInsufficientFunds and leaves the balance unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s is less than requested amount %s",
			ErrInsufficientFunds, a.balance, amount)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}
