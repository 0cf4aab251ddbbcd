package domain

import (
	"errors"
	"fmt"
)

// Validation errors: input could not be understood, nothing was mutated.
var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// CurrencyMismatchError rejects a deposit whose currency differs from
// the user's inferred currency.
type CurrencyMismatchError struct {
	Expected Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency does not match the current currency %s", e.Expected)
}

// InsufficientFundsError rejects a withdrawal above the current balance.
type InsufficientFundsError struct {
	Balance Balance
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance is %s %s", e.Balance.Amount, e.Balance.Currency)
}
