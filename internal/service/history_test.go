package service

import (
	"fmt"
	"testing"

	"monedero/internal/domain"
	"monedero/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestHistoryService_History(t *testing.T) {
	transactions := []domain.Transaction{
		*testutil.NewTestTransaction(2, 123, "700", domain.CUP),
		*testutil.NewTestTransaction(1, 123, "500", domain.CUP),
	}

	txRepo := new(testutil.MockTransactionRepository)
	txRepo.On("History", int64(123), false).Return(transactions, nil)

	result, err := NewHistoryService(txRepo).History(123)

	assert.NoError(t, err)
	assert.Equal(t, transactions, result)
	txRepo.AssertExpectations(t)
}

func TestHistoryService_BalanceSeries(t *testing.T) {
	tests := []struct {
		name           string
		transactions   []domain.Transaction
		repoError      error
		expectedValues []float64
		expectedError  bool
	}{
		{
			name: "chronological balances become points",
			transactions: []domain.Transaction{
				*testutil.NewTestTransaction(1, 123, "500", domain.CUP),
				*testutil.NewTestTransaction(2, 123, "300.50", domain.CUP),
			},
			expectedValues: []float64{500, 300.5},
		},
		{
			name:           "empty ledger gives empty series",
			transactions:   []domain.Transaction{},
			expectedValues: []float64{},
		},
		{
			name:          "database error",
			repoError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRepo := new(testutil.MockTransactionRepository)
			txRepo.On("History", int64(123), true).Return(tt.transactions, tt.repoError)

			points, err := NewHistoryService(txRepo).BalanceSeries(123)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, points, len(tt.expectedValues))
			for i, v := range tt.expectedValues {
				assert.Equal(t, tt.transactions[i].DateString(), points[i].Label)
				assert.InDelta(t, v, points[i].Value, 0.001)
			}
		})
	}
}

func TestHistoryService_ExportCSV(t *testing.T) {
	t.Run("empty ledger exports nothing", func(t *testing.T) {
		txRepo := new(testutil.MockTransactionRepository)
		txRepo.On("History", int64(123), true).Return([]domain.Transaction{}, nil)

		document, err := NewHistoryService(txRepo).ExportCSV(123)

		assert.NoError(t, err)
		assert.Nil(t, document)
	})

	t.Run("transactions export oldest first", func(t *testing.T) {
		transactions := []domain.Transaction{
			*testutil.NewTestTransaction(1, 123, "500", domain.CUP),
		}
		txRepo := new(testutil.MockTransactionRepository)
		txRepo.On("History", int64(123), true).Return(transactions, nil)

		document, err := NewHistoryService(txRepo).ExportCSV(123)

		assert.NoError(t, err)
		assert.Contains(t, string(document), "Fecha,Operación")
		assert.Contains(t, string(document), "deposit")
	})
}
