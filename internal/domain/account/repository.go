package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Save upserts an account keyed by its identifier.
	Save(ctx context.Context, account *Account) error

	// FindByID returns apperrors.ErrNotFound when no account matches.
	FindByID(ctx context.Context, accountID uuid.UUID) (*Account, error)

	// FindByCustomerID returns all accounts referencing the customer, in
	// insertion order. No matches is an empty slice, not an error.
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*Account, error)

	// Update applies mutate to the stored account and persists the result
	// as one step, so concurrent updates to the same account never lose
	// each other's writes. Returns apperrors.ErrNotFound when no account
	// matches; when mutate fails its error is returned and the stored
	// account is left untouched.
	Update(ctx context.Context, accountID uuid.UUID, mutate func(*Account) error) (*Account, error)
}
