package postgres

import (
	"database/sql"
	"fmt"

	"monedero/internal/domain"
)

// TransactionRepo implements repository.TransactionRepository
type TransactionRepo struct {
	db *sql.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(db *sql.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

const transactionColumns = `id, user_id, operation, current_balance, money_deposited, money_extracted, previous_balance, currency, created_at`

func scanTransaction(row interface{ Scan(...any) error }) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.UserID, &t.Operation, &t.CurrentBalance,
		&t.MoneyDeposited, &t.MoneyExtracted, &t.PreviousBalance,
		&t.Currency, &t.CreatedAt,
	)
	return t, err
}

// Latest returns the most recent transaction for the user by
// descending id, or nil when the ledger is empty.
func (r *TransactionRepo) Latest(userID int64) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`
	t, err := scanTransaction(r.db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// History returns all transactions for the user ordered by timestamp.
func (r *TransactionRepo) History(userID int64, ascending bool) ([]domain.Transaction, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at ` + order

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

// Record upserts the user registry row and appends one ledger entry
// inside a single database transaction, returning the new entry id.
func (r *TransactionRepo) Record(user domain.User, t domain.Transaction) (int64, error) {
	dbTx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	upsert := `
		INSERT INTO users (id, username, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := dbTx.Exec(upsert, user.ID, user.Username, user.FirstName, user.LastName); err != nil {
		return 0, fmt.Errorf("failed to upsert user: %w", err)
	}

	insert := `
		INSERT INTO transactions (user_id, operation, current_balance, money_deposited, money_extracted, previous_balance, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err = dbTx.QueryRow(
		insert,
		t.UserID, t.Operation, t.CurrentBalance,
		t.MoneyDeposited, t.MoneyExtracted, t.PreviousBalance, t.Currency,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to append transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}
