package dto

import (
	"fmt"
	"strings"

	"bank-ledger/internal/domain/account"
	"bank-ledger/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r *CreateAccountRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not a valid address")
	}
	return nil
}

type TransactionRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

func (r *TransactionRequest) Validate() error {
	if r.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	if _, err := ledger.ParseTransactionKind(r.Type); err != nil {
		return fmt.Errorf("type must be %q or %q", ledger.KindDeposit, ledger.KindWithdraw)
	}
	return nil
}

type AccountResponse struct {
	AccountID     string `json:"accountId"`
	CustomerID    string `json:"customerId"`
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
}

func NewAccountResponse(acct *account.Account) AccountResponse {
	if acct == nil {
		return AccountResponse{}
	}

	return AccountResponse{
		AccountID:     acct.AccountID.String(),
		CustomerID:    acct.CustomerID.String(),
		AccountNumber: acct.AccountNumber,
		Balance:       acct.Balance().String(),
	}
}

func NewAccountListResponse(accts []*account.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accts))
	for _, acct := range accts {
		out = append(out, NewAccountResponse(acct))
	}
	return out
}

type StatementResponse struct {
	Statement string `json:"statement"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
