package handler

import (
	"bytes"
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: registers the user and shows the menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("/start",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.ledger.EnsureUser(userFrom(c.Sender())); err != nil {
		h.logger.Error("failed to upsert user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure)
	}

	h.ResetState(userID)
	return c.Send(fmt.Sprintf(
		"👋 Hola %s!\n\n"+
			"💰 Mostrar saldo actual /balance\n"+
			"➕ Ingresar un monto determinado /ingresar\n"+
			"➖ Extraer un monto determinado /extraer\n"+
			"📜 Ver historial /historial",
		c.Sender().FirstName,
	))
}

// handleBalance handles /balance
func (h *Handler) handleBalance(c tele.Context) error {
	userID := c.Sender().ID
	h.logger.Info("/balance", zap.Int64("user_id", userID))
	h.ResetState(userID)

	balance, exists, err := h.ledger.Resolve(userID)
	if err != nil {
		h.logger.Error("failed to resolve balance", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure)
	}
	if !exists {
		return c.Send("⚠️ No hay saldo registrado aun.")
	}
	return c.Send(fmt.Sprintf("💰 Tu saldo actual es: %s", balance))
}

// handleHistory handles /historial: transactions most recent first,
// sent in blocks of ten lines.
func (h *Handler) handleHistory(c tele.Context) error {
	userID := c.Sender().ID
	h.logger.Info("/historial", zap.Int64("user_id", userID))
	h.ResetState(userID)

	transactions, err := h.history.History(userID)
	if err != nil {
		h.logger.Error("failed to load history", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure)
	}
	if len(transactions) == 0 {
		return c.Send("No hay transacciones registradas aun.")
	}

	var block strings.Builder
	for i, t := range transactions {
		block.WriteString(t.HistoryLine())
		block.WriteString("\n")
		if (i+1)%10 == 0 || i == len(transactions)-1 {
			if err := c.Send(block.String()); err != nil {
				return err
			}
			block.Reset()
		}
	}
	return nil
}

// handleChart handles /grafica: the balance-over-time chart
func (h *Handler) handleChart(c tele.Context) error {
	userID := c.Sender().ID
	h.logger.Info("/grafica", zap.Int64("user_id", userID))
	h.ResetState(userID)

	points, err := h.history.BalanceSeries(userID)
	if err != nil {
		h.logger.Error("failed to load balance series", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure)
	}
	if len(points) < 2 {
		return c.Send("📉 No hay suficientes transacciones para mostrar la gráfica.")
	}

	png, err := h.chart.Render(points)
	if err != nil {
		h.logger.Error("failed to render chart", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure)
	}

	photo := &tele.Photo{
		File:    tele.FromReader(bytes.NewReader(png)),
		Caption: "📊 Evolución de tu saldo",
	}
	return c.Send(photo)
}

// handleExport handles /exportar: full history as a CSV document
func (h *Handler) handleExport(c tele.Context) error {
	userID := c.Sender().ID
	h.logger.Info("/exportar", zap.Int64("user_id", userID))
	h.ResetState(userID)

	document, err := h.history.ExportCSV(userID)
	if err != nil {
		h.logger.Error("failed to export history", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure)
	}
	if document == nil {
		return c.Send("📭 No hay transacciones para exportar.")
	}

	file := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(document)),
		FileName: "historial.csv",
		MIME:     "text/csv",
		Caption:  "📄 Historial de transacciones (CSV)",
	}
	return c.Send(file)
}

// handleHelp handles /help
func (h *Handler) handleHelp(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return c.Send(
		"ℹ️ Comandos disponibles:\n" +
			"/balance - Ver tu saldo actual\n" +
			"/ingresar - Ingresar dinero\n" +
			"/extraer - Extraer dinero\n" +
			"/historial - Ver historial\n" +
			"/convertir - Convertir moneda\n" +
			"/grafica - Ver gráfica de tu saldo\n" +
			"/exportar - Exportar historial a CSV\n" +
			"/start - Menú principal",
	)
}
