package export

import (
	"bytes"
	"encoding/csv"

	"monedero/internal/domain"
)

var header = []string{"Fecha", "Operación", "Monto Ingresado", "Monto Extraído", "Saldo", "Moneda"}

// CSV renders transactions as a CSV document, one row per ledger entry
func CSV(transactions []domain.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, t := range transactions {
		record := []string{
			t.DateString(),
			string(t.Operation),
			t.MoneyDeposited.String(),
			t.MoneyExtracted.String(),
			t.CurrentBalance.String(),
			string(t.Currency),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
