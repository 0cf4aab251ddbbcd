package handler

import (
	"errors"
	"fmt"
	"strings"

	"monedero/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgInvalidAmount   = "⚠️ Por favor, ingresa un monto valido y positivo."
	msgInvalidCurrency = "❌ Moneda invalida!"
	msgStoreFailure    = "⚠️ Ocurrió un error. Intenta de nuevo mas tarde."
	msgInvalidCommand  = "🚫 Comando no válido. Usa /start para ver las opciones."
)

// handleDeposit handles /ingresar: starts the deposit flow
func (h *Handler) handleDeposit(c tele.Context) error {
	h.logger.Info("/ingresar", zap.Int64("user_id", c.Sender().ID))

	lock := h.flowLock(c.Sender().ID)
	lock.Lock()
	defer lock.Unlock()

	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateAwaitingDepositAmount})
	return c.Send("Cuanto deseas ingresar? Elige una opción o escribe un monto:", amountMarkup())
}

// handleWithdraw handles /extraer: starts the withdrawal flow
func (h *Handler) handleWithdraw(c tele.Context) error {
	h.logger.Info("/extraer", zap.Int64("user_id", c.Sender().ID))

	lock := h.flowLock(c.Sender().ID)
	lock.Lock()
	defer lock.Unlock()

	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateAwaitingWithdrawAmount})
	return c.Send("Cuanto deseas extraer?")
}

// handleConvert handles /convertir: commits the pending conversion
// intent, if one exists for this user.
func (h *Handler) handleConvert(c tele.Context) error {
	userID := c.Sender().ID
	h.logger.Info("/convertir", zap.Int64("user_id", userID))

	lock := h.flowLock(userID)
	lock.Lock()
	defer lock.Unlock()

	h.ResetState(userID)

	intent, ok := h.Intent(userID)
	if !ok {
		return c.Send("Opcion /convertir no disponible")
	}

	result, err := h.ledger.Convert(userFrom(c.Sender()), intent)
	if err != nil {
		h.logger.Error("conversion failed", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure)
	}

	// Consumed exactly once: a second /convertir needs a new intent
	h.ClearIntent(userID)

	return c.Send(fmt.Sprintf(
		"✅ Conversión realizada: %s %s = %s CUP\nSaldo actual: %s",
		intent.Amount, intent.Currency, result.Converted, result.Balance,
	), removeKeyboard())
}

// handleText routes step replies based on the pending continuation.
// Text arriving outside any flow gets the standard rejection reply.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	lock := h.flowLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state := h.GetState(userID)
	switch state.State {
	case domain.StateAwaitingDepositAmount:
		return h.depositAmountStep(c, text)
	case domain.StateAwaitingDepositCurrency:
		return h.depositCurrencyStep(c, state, text)
	case domain.StateAwaitingWithdrawAmount:
		return h.withdrawAmountStep(c, text)
	default:
		return c.Send(msgInvalidCommand)
	}
}

// depositAmountStep parses the amount and asks for the currency
func (h *Handler) depositAmountStep(c tele.Context, text string) error {
	userID := c.Sender().ID

	amount, err := domain.ParseAmount(text)
	if err != nil {
		// Flow ends; the user has to reissue /ingresar
		h.ResetState(userID)
		return c.Send(msgInvalidAmount, removeKeyboard())
	}

	h.SetState(userID, &domain.StateData{
		State:  domain.StateAwaitingDepositCurrency,
		Amount: amount,
	})
	return c.Send("Especifique el tipo de moneda (CUP, USD, MLC):", currencyMarkup())
}

// depositCurrencyStep validates the currency and commits the deposit
func (h *Handler) depositCurrencyStep(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	currency, err := domain.ParseCurrency(text)
	if err != nil {
		return c.Send(msgInvalidCurrency, removeKeyboard())
	}

	balance, err := h.ledger.Deposit(userFrom(c.Sender()), state.Amount, currency)
	if err != nil {
		var mismatch *domain.CurrencyMismatchError
		if errors.As(err, &mismatch) {
			// Keep the rejected (currency, amount) pair so /convertir can settle it
			h.SetIntent(userID, domain.ConversionIntent{Amount: state.Amount, Currency: currency})
			return c.Send(fmt.Sprintf(
				"⚠️ El tipo de moneda no coincide con el tipo de moneda por defecto (%s).\nPuede convertir la moneda deseada con /convertir",
				mismatch.Expected,
			), removeKeyboard())
		}
		h.logger.Error("deposit failed", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure, removeKeyboard())
	}

	return c.Send(fmt.Sprintf("✅ Ingreso realizado!\nSaldo actual: %s", balance))
}

// withdrawAmountStep parses the amount and commits the withdrawal
func (h *Handler) withdrawAmountStep(c tele.Context, text string) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	amount, err := domain.ParseAmount(text)
	if err != nil {
		return c.Send(msgInvalidAmount)
	}

	balance, err := h.ledger.Withdraw(userFrom(c.Sender()), amount)
	if err != nil {
		var insufficient *domain.InsufficientFundsError
		if errors.As(err, &insufficient) {
			return c.Send(fmt.Sprintf(
				"❌ No puedes extraer mas de tu saldo actual (%s).",
				insufficient.Balance,
			))
		}
		h.logger.Error("withdrawal failed", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgStoreFailure)
	}

	return c.Send(fmt.Sprintf("💸 Extraccion realizada!\nSaldo actual: %s", balance))
}
