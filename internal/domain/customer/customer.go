package customer

import (
	"github.com/google/uuid"
)

// Customer is an immutable value holder identifying a party by email.
// At most one customer per email exists in the repository.
type Customer struct {
	CustomerID  uuid.UUID `json:"customerId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
}

func NewCustomer(name, email, phoneNumber string) *Customer {
	return &Customer{
		CustomerID:  uuid.New(),
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
	}
}
