package memory

import (
	"context"
	"log/slog"
	"sync"

	"bank-ledger/internal/domain/customer"
)

// CustomerRepository is the canonical in-memory customer store, keyed by
// email. It holds copies of entities: callers get their own mutable view and
// write changes back through Save. An RWMutex serializes access so the store
// is safe under the HTTP server's concurrent requests.
type CustomerRepository struct {
	mu      sync.RWMutex
	byEmail map[string]customer.Customer
	logger  *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(logger *slog.Logger) *CustomerRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerRepository{
		byEmail: make(map[string]customer.Customer),
		logger:  logger.With(slog.String("component", "CustomerRepository")),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byEmail[cust.Email] = *cust
	r.logger.DebugContext(ctx, "Saved customer",
		slog.String("customerID", cust.CustomerID.String()),
		slog.String("email", cust.Email))
	return nil
}

func (r *CustomerRepository) FindOrCreate(ctx context.Context, candidate *customer.Customer) (*customer.Customer, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byEmail[candidate.Email]; ok {
		r.logger.DebugContext(ctx, "Customer already exists for email",
			slog.String("customerID", existing.CustomerID.String()),
			slog.String("email", existing.Email))
		return &existing, false, nil
	}

	r.byEmail[candidate.Email] = *candidate
	r.logger.DebugContext(ctx, "Created customer",
		slog.String("customerID", candidate.CustomerID.String()),
		slog.String("email", candidate.Email))
	created := *candidate
	return &created, true, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cust, ok := r.byEmail[email]
	if !ok {
		r.logger.DebugContext(ctx, "No customer for email", slog.String("email", email))
		return nil, nil
	}
	return &cust, nil
}
