package testutil

import (
	"monedero/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(user domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockTransactionRepository is a mock for TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Latest(userID int64) (*domain.Transaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) History(userID int64, ascending bool) ([]domain.Transaction, error) {
	args := m.Called(userID, ascending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Record(user domain.User, tx domain.Transaction) (int64, error) {
	args := m.Called(user, tx)
	return args.Get(0).(int64), args.Error(1)
}
