package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Operation is the kind of ledger entry
type Operation string

const (
	OperationDeposit    Operation = "deposit"
	OperationWithdrawal Operation = "withdrawal"
)

// Transaction is one append-only ledger entry. CurrentBalance is the
// authoritative post-operation balance; exactly one of MoneyDeposited
// and MoneyExtracted is non-zero.
type Transaction struct {
	ID              int64
	UserID          int64
	Operation       Operation
	CurrentBalance  decimal.Decimal
	MoneyDeposited  decimal.Decimal
	MoneyExtracted  decimal.Decimal
	PreviousBalance decimal.Decimal
	Currency        Currency
	CreatedAt       time.Time
}

// Balance is a resolved balance with its currency
type Balance struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewBalance returns the zero balance in the default currency.
func NewBalance() Balance {
	return Balance{Amount: decimal.Zero, Currency: DefaultCurrency}
}

func (b Balance) String() string {
	return b.Amount.String() + " " + string(b.Currency)
}

// DateString returns the timestamp formatted for history and export
func (t Transaction) DateString() string {
	return t.CreatedAt.Format("2006-01-02 15:04:05")
}

// HistoryLine returns one user-facing history row
func (t Transaction) HistoryLine() string {
	if t.Operation == OperationDeposit {
		return fmt.Sprintf("➕Ingreso: +%s | Saldo: %s | %s", t.MoneyDeposited, t.CurrentBalance, t.DateString())
	}
	return fmt.Sprintf("➖Extraccion: -%s | Saldo: %s | %s", t.MoneyExtracted, t.CurrentBalance, t.DateString())
}
