package handler

import (
	"sync"

	"monedero/internal/chart"
	"monedero/internal/domain"
	"monedero/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot     *tele.Bot
	ledger  *service.LedgerService
	history *service.HistoryService
	chart   *chart.Renderer
	logger  *zap.Logger

	// Dialog continuations (in-memory state machine). A new command
	// from the same chat silently replaces any pending continuation;
	// nothing here survives a restart.
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Pending conversion intents keyed by user id, consumed by /convertir
	intents   map[int64]domain.ConversionIntent
	intentMux sync.Mutex

	// Per-user locks serializing flow steps for the same chat
	flowLocks map[int64]*sync.Mutex
	flowMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	ledger *service.LedgerService,
	history *service.HistoryService,
	chartRenderer *chart.Renderer,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		ledger:    ledger,
		history:   history,
		chart:     chartRenderer,
		logger:    logger,
		states:    make(map[int64]*domain.StateData),
		intents:   make(map[int64]domain.ConversionIntent),
		flowLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/balance", h.handleBalance)
	h.bot.Handle("/ingresar", h.handleDeposit)
	h.bot.Handle("/extraer", h.handleWithdraw)
	h.bot.Handle("/historial", h.handleHistory)
	h.bot.Handle("/convertir", h.handleConvert)
	h.bot.Handle("/grafica", h.handleChart)
	h.bot.Handle("/exportar", h.handleExport)
	h.bot.Handle("/help", h.handleHelp)

	// Step replies of multi-turn flows and everything unrecognized
	h.bot.Handle(tele.OnText, h.handleText)
}

// GetState returns user's current continuation state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state, replacing any pending continuation
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// SetIntent stores the pending conversion intent for the user
func (h *Handler) SetIntent(userID int64, intent domain.ConversionIntent) {
	h.intentMux.Lock()
	defer h.intentMux.Unlock()
	h.intents[userID] = intent
}

// Intent returns the user's pending conversion intent, if any
func (h *Handler) Intent(userID int64) (domain.ConversionIntent, bool) {
	h.intentMux.Lock()
	defer h.intentMux.Unlock()
	intent, ok := h.intents[userID]
	return intent, ok
}

// ClearIntent removes the user's pending conversion intent
func (h *Handler) ClearIntent(userID int64) {
	h.intentMux.Lock()
	defer h.intentMux.Unlock()
	delete(h.intents, userID)
}

// flowLock returns the lock serializing flow steps for the user
func (h *Handler) flowLock(userID int64) *sync.Mutex {
	h.flowMux.Lock()
	defer h.flowMux.Unlock()
	lock, exists := h.flowLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.flowLocks[userID] = lock
	}
	return lock
}

// userFrom builds the domain identity from the message sender
func userFrom(sender *tele.User) domain.User {
	return domain.User{
		ID:        sender.ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
		IsActive:  true,
	}
}

// amountMarkup returns the deposit amount preset keyboard
func amountMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text("💵100"), menu.Text("💵500"), menu.Text("💵1000")),
		menu.Row(menu.Text("💵2000"), menu.Text("💵5000"), menu.Text("💵10000")),
	)
	return menu
}

// currencyMarkup returns the currency choice keyboard
func currencyMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text("💲CUP"), menu.Text("💲USD"), menu.Text("💲MLC")),
	)
	return menu
}

func removeKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}
