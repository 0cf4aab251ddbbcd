package repository

import (
	"monedero/internal/domain"
)

// UserRepository defines user registry operations
type UserRepository interface {
	UpsertUser(user domain.User) error
}

// TransactionRepository defines ledger operations. The ledger is
// append-only: rows are never updated or deleted.
type TransactionRepository interface {
	Latest(userID int64) (*domain.Transaction, error)
	History(userID int64, ascending bool) ([]domain.Transaction, error)
	Record(user domain.User, tx domain.Transaction) (int64, error)
}
