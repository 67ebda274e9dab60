package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"bank-ledger/internal/domain/account"
	"bank-ledger/internal/domain/customer"
	"bank-ledger/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind is the closed set of recognized transaction types.
type TransactionKind string

const (
	KindDeposit  TransactionKind = "deposit"
	KindWithdraw TransactionKind = "withdraw"
)

// ParseTransactionKind maps a wire value onto the closed kind set. Anything
// outside the set is ErrInvalidArgument, never a silent no-op.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdraw:
		return KindWithdraw, nil
	default:
		return "", fmt.Errorf("%w: unrecognized transaction kind %q", apperrors.ErrInvalidArgument, s)
	}
}

type LedgerService interface {
	CreateCustomer(ctx context.Context, name, email, phoneNumber string) (*customer.Customer, error)
	CreateAccount(ctx context.Context, name, email, phoneNumber string) (*account.Account, error)
	MakeTransaction(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, kind TransactionKind) (*account.Account, error)
	AccountStatement(ctx context.Context, accountID uuid.UUID) (string, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*account.Account, error)
	AccountsForCustomer(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error)
}

var _ LedgerService = (*ledgerService)(nil)

type ledgerService struct {
	customers customer.Repository
	accounts  account.Repository
	logger    *slog.Logger
}

func NewLedgerService(customers customer.Repository, accounts account.Repository, logger *slog.Logger) LedgerService {
	if customers == nil {
		panic("customer repository cannot be nil")
	}
	if accounts == nil {
		panic("account repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLedgerService, using default stderr handler")
	}

	return &ledgerService{
		customers: customers,
		accounts:  accounts,
		logger:    logger.With(slog.String("component", "ledgerService")),
	}
}

// CreateCustomer resolves a customer by email and returns the existing one
// unchanged when found. Creation is idempotent by email.
func (s *ledgerService) CreateCustomer(ctx context.Context, name, email, phoneNumber string) (*customer.Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer")

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if name == "" {
		s.logger.WarnContext(ctx, "Validation failed: name is empty")
		return nil, fmt.Errorf("%w: customer name cannot be empty", apperrors.ErrInvalidArgument)
	}
	if email == "" {
		s.logger.WarnContext(ctx, "Validation failed: email is empty", slog.String("name", name))
		return nil, fmt.Errorf("%w: customer email cannot be empty", apperrors.ErrInvalidArgument)
	}

	cust, created, err := s.customers.FindOrCreate(ctx, customer.NewCustomer(name, email, phoneNumber))
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to resolve customer by email", slog.Any("error", err))
		return nil, fmt.Errorf("failed to resolve customer by email: %w", err)
	}
	if !created {
		s.logger.InfoContext(ctx, "Customer already exists for email, returning existing",
			slog.String("customerID", cust.CustomerID.String()))
		return cust, nil
	}

	s.logger.InfoContext(ctx, "Successfully created new customer",
		slog.String("customerID", cust.CustomerID.String()))
	return cust, nil
}

// CreateAccount resolves or creates the owning customer, then always creates
// a brand-new zero-balance account. Accounts are never deduplicated.
func (s *ledgerService) CreateAccount(ctx context.Context, name, email, phoneNumber string) (*account.Account, error) {
	s.logger.InfoContext(ctx, "Attempting to create new account")

	cust, err := s.CreateCustomer(ctx, name, email, phoneNumber)
	if err != nil {
		return nil, err
	}

	acct := account.NewAccount(cust.CustomerID)
	if err := s.accounts.Save(ctx, acct); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new account", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new account: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully created new account",
		slog.String("accountID", acct.AccountID.String()),
		slog.String("accountNumber", acct.AccountNumber))
	return acct, nil
}

// MakeTransaction applies a deposit or withdrawal to an account through the
// repository's atomic update, so concurrent transactions against one account
// never lose each other's writes. Insufficient funds and unknown accounts
// propagate to the caller; nothing is persisted on failure.
func (s *ledgerService) MakeTransaction(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, kind TransactionKind) (*account.Account, error) {
	s.logger.InfoContext(ctx, "Attempting transaction",
		slog.String("accountID", accountID.String()),
		slog.String("kind", string(kind)))

	if amount.IsNegative() {
		s.logger.WarnContext(ctx, "Validation failed: negative transaction amount",
			slog.String("amount", amount.String()))
		return nil, fmt.Errorf("%w: transaction amount cannot be negative", apperrors.ErrInvalidArgument)
	}

	acct, err := s.accounts.Update(ctx, accountID, func(a *account.Account) error {
		switch kind {
		case KindDeposit:
			a.Deposit(amount)
			return nil
		case KindWithdraw:
			return a.Withdraw(amount)
		default:
			return fmt.Errorf("%w: unrecognized transaction kind %q", apperrors.ErrInvalidArgument, kind)
		}
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Transaction rejected", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "Transaction applied",
		slog.String("accountID", accountID.String()),
		slog.String("balance", acct.Balance().String()))
	return acct, nil
}

// AccountStatement formats a three-line summary of the account's identity and
// balance. Pure read, no side effects.
func (s *ledgerService) AccountStatement(ctx context.Context, accountID uuid.UUID) (string, error) {
	acct, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		s.logger.WarnContext(ctx, "Account not found for statement", slog.Any("error", err))
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Account Number: %s\n", acct.AccountNumber)
	fmt.Fprintf(&b, "Customer ID: %s\n", acct.CustomerID)
	fmt.Fprintf(&b, "Balance: %s\n", acct.Balance())
	return b.String(), nil
}

func (s *ledgerService) GetAccount(ctx context.Context, accountID uuid.UUID) (*account.Account, error) {
	acct, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		s.logger.WarnContext(ctx, "Account not found", slog.Any("error", err))
		return nil, err
	}
	return acct, nil
}

func (s *ledgerService) AccountsForCustomer(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error) {
	accts, err := s.accounts.FindByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing accounts for customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list accounts for customer %s: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Listed accounts for customer",
		slog.String("customerID", customerID.String()),
		slog.Int("count", len(accts)))
	return accts, nil
}
