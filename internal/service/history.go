package service

import (
	"monedero/internal/chart"
	"monedero/internal/domain"
	"monedero/internal/export"
	"monedero/internal/repository"
)

// HistoryService serves the read-only views over the ledger: the
// history listing, the balance-over-time series and the CSV export.
type HistoryService struct {
	txRepo repository.TransactionRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(txRepo repository.TransactionRepository) *HistoryService {
	return &HistoryService{txRepo: txRepo}
}

// History returns the user's transactions, most recent first
func (s *HistoryService) History(userID int64) ([]domain.Transaction, error) {
	return s.txRepo.History(userID, false)
}

// BalanceSeries returns the (timestamp, balance) points for the chart
// in chronological order.
func (s *HistoryService) BalanceSeries(userID int64) ([]chart.Point, error) {
	transactions, err := s.txRepo.History(userID, true)
	if err != nil {
		return nil, err
	}

	points := make([]chart.Point, 0, len(transactions))
	for _, t := range transactions {
		points = append(points, chart.Point{
			Label: t.DateString(),
			Value: t.CurrentBalance.InexactFloat64(),
		})
	}
	return points, nil
}

// ExportCSV renders the user's full history as a CSV document,
// oldest first.
func (s *HistoryService) ExportCSV(userID int64) ([]byte, error) {
	transactions, err := s.txRepo.History(userID, true)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, nil
	}
	return export.CSV(transactions)
}
