package testutil

import (
	"time"

	"monedero/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64) domain.User {
	return domain.User{
		ID:        userID,
		Username:  "tester",
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
	}
}

// NewTestRates creates the fixed exchange rates used in tests
func NewTestRates() domain.ExchangeRates {
	return domain.ExchangeRates{
		USD: decimal.NewFromInt(370),
		MLC: decimal.NewFromInt(260),
	}
}

// NewTestTransaction creates a deposit ledger entry with the given
// post-operation balance.
func NewTestTransaction(id, userID int64, balance string, currency domain.Currency) *domain.Transaction {
	amount := decimal.RequireFromString(balance)
	return &domain.Transaction{
		ID:              id,
		UserID:          userID,
		Operation:       domain.OperationDeposit,
		CurrentBalance:  amount,
		MoneyDeposited:  amount,
		MoneyExtracted:  decimal.Zero,
		PreviousBalance: decimal.Zero,
		Currency:        currency,
		CreatedAt:       time.Now(),
	}
}
