package customer

import (
	"context"
)

type Repository interface {
	// Save upserts a customer keyed by email, overwriting any prior
	// customer sharing that email.
	Save(ctx context.Context, customer *Customer) error

	// FindByEmail returns (nil, nil) when no customer matches. Absence is
	// not an error: customer creation uses it to decide whether to create.
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// FindOrCreate stores the candidate unless a customer with the same
	// email already exists, and returns the winner. The lookup and the
	// insert happen as one step so two concurrent callers with the same
	// email always converge on a single customer. The bool reports whether
	// the candidate was stored.
	FindOrCreate(ctx context.Context, candidate *Customer) (*Customer, bool, error)
}
