package domain

import (
	"github.com/shopspring/decimal"
)

// User represents a bot user. The identity comes from the chat
// transport and is trusted as-is.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	IsActive  bool
}

// UserState represents the step a multi-turn dialog is waiting on
type UserState string

const (
	StateIdle                    UserState = "idle"
	StateAwaitingDepositAmount   UserState = "awaiting_deposit_amount"
	StateAwaitingDepositCurrency UserState = "awaiting_deposit_currency"
	StateAwaitingWithdrawAmount  UserState = "awaiting_withdraw_amount"
)

// StateData holds the continuation for a user's in-flight dialog.
// Amount carries the parsed deposit amount between the amount and
// currency steps.
type StateData struct {
	State  UserState
	Amount decimal.Decimal
}

// ConversionIntent is a transient (currency, amount) pair awaiting
// commit through the convert flow. It is never persisted.
type ConversionIntent struct {
	Amount   decimal.Decimal
	Currency Currency
}

// ExchangeRates are the fixed CUP conversion rates. Any currency other
// than USD converts at the MLC rate.
type ExchangeRates struct {
	USD decimal.Decimal
	MLC decimal.Decimal
}

// For returns the CUP multiplier for the given currency.
func (r ExchangeRates) For(currency Currency) decimal.Decimal {
	if currency == USD {
		return r.USD
	}
	return r.MLC
}
