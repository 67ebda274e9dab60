package memory_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"bank-ledger/internal/domain/customer"
	"bank-ledger/internal/infrastructure/storage/memory"

	"github.com/stretchr/testify/assert"
)

func newCustomerRepo() *memory.CustomerRepository {
	return memory.NewCustomerRepository(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCustomerRepository_SaveAndFindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo()

	cust := customer.NewCustomer("John Doe", "john@x.com", "555")
	assert.NoError(t, repo.Save(ctx, cust))

	found, err := repo.FindByEmail(ctx, "john@x.com")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, cust.CustomerID, found.CustomerID)
	assert.Equal(t, "John Doe", found.Name)
}

func TestCustomerRepository_FindByEmail_AbsentIsNotAnError(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo()

	found, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestCustomerRepository_SaveOverwritesByEmail(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo()

	first := customer.NewCustomer("John Doe", "john@x.com", "555")
	second := customer.NewCustomer("John D.", "john@x.com", "556")
	assert.NoError(t, repo.Save(ctx, first))
	assert.NoError(t, repo.Save(ctx, second))

	found, err := repo.FindByEmail(ctx, "john@x.com")
	assert.NoError(t, err)
	assert.Equal(t, second.CustomerID, found.CustomerID)
	assert.Equal(t, "John D.", found.Name)
}

func TestCustomerRepository_FindOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates when the email is unknown", func(t *testing.T) {
		repo := newCustomerRepo()
		candidate := customer.NewCustomer("John Doe", "john@x.com", "555")

		cust, created, err := repo.FindOrCreate(ctx, candidate)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, candidate.CustomerID, cust.CustomerID)

		found, err := repo.FindByEmail(ctx, "john@x.com")
		assert.NoError(t, err)
		assert.Equal(t, candidate.CustomerID, found.CustomerID)
	})

	t.Run("Returns the existing customer and discards the candidate", func(t *testing.T) {
		repo := newCustomerRepo()
		first := customer.NewCustomer("John Doe", "john@x.com", "555")
		assert.NoError(t, repo.Save(ctx, first))

		cust, created, err := repo.FindOrCreate(ctx, customer.NewCustomer("Someone Else", "john@x.com", "999"))
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.CustomerID, cust.CustomerID)
		assert.Equal(t, "John Doe", cust.Name)
	})
}

func TestCustomerRepository_FindOrCreate_ConcurrentCallersConverge(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo()

	const workers = 16
	winners := make([]*customer.Customer, workers)
	var createdCount int64

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cust, created, err := repo.FindOrCreate(ctx, customer.NewCustomer("John Doe", "john@x.com", "555"))
			if err != nil {
				t.Error(err)
				return
			}
			if created {
				atomic.AddInt64(&createdCount, 1)
			}
			winners[i] = cust
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, createdCount, "exactly one caller must create the customer")
	for i := 1; i < workers; i++ {
		assert.Equal(t, winners[0].CustomerID, winners[i].CustomerID,
			"every caller must see the same customer for one email")
	}
}

func TestCustomerRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo()

	cust := customer.NewCustomer("John Doe", "john@x.com", "555")
	assert.NoError(t, repo.Save(ctx, cust))

	first, err := repo.FindByEmail(ctx, "john@x.com")
	assert.NoError(t, err)
	first.Name = "Mutated"

	second, err := repo.FindByEmail(ctx, "john@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", second.Name, "mutating a borrowed customer must not affect the store")
}
