package service

import (
	"monedero/internal/domain"
	"monedero/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LedgerService owns the balance derivation and transaction recording
// rules. The current balance and currency are always inferred from the
// most recent ledger row, never stored separately.
type LedgerService struct {
	userRepo repository.UserRepository
	txRepo   repository.TransactionRepository
	rates    domain.ExchangeRates
	logger   *zap.Logger
}

// ConversionResult describes a committed conversion
type ConversionResult struct {
	Converted decimal.Decimal
	Balance   domain.Balance
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	rates domain.ExchangeRates,
	logger *zap.Logger,
) *LedgerService {
	return &LedgerService{
		userRepo: userRepo,
		txRepo:   txRepo,
		rates:    rates,
		logger:   logger,
	}
}

// EnsureUser registers the user if not seen before
func (s *LedgerService) EnsureUser(user domain.User) error {
	return s.userRepo.UpsertUser(user)
}

// Resolve derives the user's current balance and currency from the
// most recent ledger row. The second return value reports whether any
// transaction exists; without one the balance is zero CUP.
func (s *LedgerService) Resolve(userID int64) (domain.Balance, bool, error) {
	last, err := s.txRepo.Latest(userID)
	if err != nil {
		return domain.Balance{}, false, err
	}
	if last == nil {
		return domain.NewBalance(), false, nil
	}
	return domain.Balance{Amount: last.CurrentBalance, Currency: last.Currency}, true, nil
}

// Deposit appends a deposit row. The currency must match the user's
// inferred currency; otherwise a CurrencyMismatchError is returned and
// nothing is recorded.
func (s *LedgerService) Deposit(user domain.User, amount decimal.Decimal, currency domain.Currency) (domain.Balance, error) {
	if !amount.IsPositive() {
		return domain.Balance{}, domain.ErrInvalidAmount
	}

	previous, _, err := s.Resolve(user.ID)
	if err != nil {
		return domain.Balance{}, err
	}

	if currency != previous.Currency {
		return domain.Balance{}, &domain.CurrencyMismatchError{Expected: previous.Currency}
	}

	balance := domain.Balance{Amount: previous.Amount.Add(amount), Currency: previous.Currency}
	id, err := s.txRepo.Record(user, domain.Transaction{
		UserID:          user.ID,
		Operation:       domain.OperationDeposit,
		CurrentBalance:  balance.Amount,
		MoneyDeposited:  amount,
		MoneyExtracted:  decimal.Zero,
		PreviousBalance: previous.Amount,
		Currency:        previous.Currency,
	})
	if err != nil {
		return domain.Balance{}, err
	}

	s.logger.Info("deposit recorded",
		zap.Int64("user_id", user.ID),
		zap.Int64("transaction_id", id),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()),
	)
	return balance, nil
}

// Withdraw appends a withdrawal row in the user's inferred currency.
// Amounts above the current balance are rejected with an
// InsufficientFundsError; there are no partial withdrawals.
func (s *LedgerService) Withdraw(user domain.User, amount decimal.Decimal) (domain.Balance, error) {
	if !amount.IsPositive() {
		return domain.Balance{}, domain.ErrInvalidAmount
	}

	previous, _, err := s.Resolve(user.ID)
	if err != nil {
		return domain.Balance{}, err
	}

	if amount.GreaterThan(previous.Amount) {
		return domain.Balance{}, &domain.InsufficientFundsError{Balance: previous}
	}

	balance := domain.Balance{Amount: previous.Amount.Sub(amount), Currency: previous.Currency}
	id, err := s.txRepo.Record(user, domain.Transaction{
		UserID:          user.ID,
		Operation:       domain.OperationWithdrawal,
		CurrentBalance:  balance.Amount,
		MoneyDeposited:  decimal.Zero,
		MoneyExtracted:  amount,
		PreviousBalance: previous.Amount,
		Currency:        previous.Currency,
	})
	if err != nil {
		return domain.Balance{}, err
	}

	s.logger.Info("withdrawal recorded",
		zap.Int64("user_id", user.ID),
		zap.Int64("transaction_id", id),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()),
	)
	return balance, nil
}

// Convert settles a pending conversion intent into CUP at the fixed
// rates (USD rate for USD, MLC rate for everything else) and records
// it as a deposit.
func (s *LedgerService) Convert(user domain.User, intent domain.ConversionIntent) (ConversionResult, error) {
	if !intent.Amount.IsPositive() {
		return ConversionResult{}, domain.ErrInvalidAmount
	}

	previous, _, err := s.Resolve(user.ID)
	if err != nil {
		return ConversionResult{}, err
	}

	converted := intent.Amount.Mul(s.rates.For(intent.Currency))
	balance := domain.Balance{Amount: previous.Amount.Add(converted), Currency: domain.CUP}
	id, err := s.txRepo.Record(user, domain.Transaction{
		UserID:          user.ID,
		Operation:       domain.OperationDeposit,
		CurrentBalance:  balance.Amount,
		MoneyDeposited:  converted,
		MoneyExtracted:  decimal.Zero,
		PreviousBalance: previous.Amount,
		Currency:        domain.CUP,
	})
	if err != nil {
		return ConversionResult{}, err
	}

	s.logger.Info("conversion recorded",
		zap.Int64("user_id", user.ID),
		zap.Int64("transaction_id", id),
		zap.String("from", intent.Amount.String()+" "+string(intent.Currency)),
		zap.String("converted", converted.String()),
	)
	return ConversionResult{Converted: converted, Balance: balance}, nil
}
