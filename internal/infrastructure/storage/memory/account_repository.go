package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"bank-ledger/internal/domain/account"
	"bank-ledger/internal/pkg/apperrors"

	"github.com/google/uuid"
)

// AccountRepository is the canonical in-memory account store, keyed by
// account identifier. Insertion order is kept so customer scans iterate
// stably. Like CustomerRepository it stores and returns copies and guards
// all access with an RWMutex.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]account.Account
	order    []uuid.UUID
	logger   *slog.Logger
}

var _ account.Repository = (*AccountRepository)(nil)

func NewAccountRepository(logger *slog.Logger) *AccountRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountRepository{
		accounts: make(map[uuid.UUID]account.Account),
		logger:   logger.With(slog.String("component", "AccountRepository")),
	}
}

func (r *AccountRepository) Save(ctx context.Context, acct *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[acct.AccountID]; !exists {
		r.order = append(r.order, acct.AccountID)
	}
	r.accounts[acct.AccountID] = *acct
	r.logger.DebugContext(ctx, "Saved account",
		slog.String("accountID", acct.AccountID.String()),
		slog.String("balance", acct.Balance().String()))
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, accountID uuid.UUID) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[accountID]
	if !ok {
		r.logger.DebugContext(ctx, "Account not found", slog.String("accountID", accountID.String()))
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &acct, nil
}

func (r *AccountRepository) Update(ctx context.Context, accountID uuid.UUID, mutate func(*account.Account) error) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[accountID]
	if !ok {
		r.logger.DebugContext(ctx, "Account not found for update", slog.String("accountID", accountID.String()))
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}

	// mutate runs against a copy; a failed mutation never reaches the store.
	if err := mutate(&acct); err != nil {
		return nil, err
	}

	r.accounts[accountID] = acct
	r.logger.DebugContext(ctx, "Updated account",
		slog.String("accountID", accountID.String()),
		slog.String("balance", acct.Balance().String()))
	result := acct
	return &result, nil
}

func (r *AccountRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*account.Account, 0)
	for _, accountID := range r.order {
		acct := r.accounts[accountID]
		if acct.CustomerID == customerID {
			cp := acct
			matches = append(matches, &cp)
		}
	}
	return matches, nil
}
