package get_operator_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/middleware"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/operator"
)

const (
	msgMissingParams   = "параметры quest и date обязательны"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownQuest    = "неизвестный квест"
	msgSessionRequired = "требуется вход оператора"
	msgViewNotReady    = "данные ещё не загружены, повторите запрос"
)

type Handler struct {
	sessions     SessionViews
	catalog      QuestCatalog
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(sessions SessionViews, catalog QuestCatalog, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		sessions:     sessions,
		catalog:      catalog,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/operator/availability
// Query params: quest, date (required)
// Отдаёт состояние из индекса, который поддерживает цикл сессии, без чтения логов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quest := r.URL.Query().Get("quest")
	dateStr := r.URL.Query().Get("date")
	if quest == "" || dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /operator/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	questID := domain.QuestID(quest)
	if !h.catalog.Contains(questID) {
		handlers.RespondBadRequest(w, msgUnknownQuest)
		return
	}

	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionRequired)
		return
	}

	view, err := h.sessions.View(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, operator.ErrViewNotReady):
			handlers.RespondServiceUnavailable(w, msgViewNotReady)

		case errors.Is(err, operator.ErrSessionNotFound):
			handlers.RespondUnauthorized(w, msgSessionRequired)

		default:
			h.logger.Error("GET /operator/availability - Failed to get view: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	idx := view.Index
	handlers.RespondJSON(w, http.StatusOK, &OperatorAvailabilityResponse{
		Quest:       quest,
		Date:        date.String(),
		Slots:       handlers.FromSlotStates(idx.SlotStates(questID, date, h.timeProvider.Now())),
		Saturation:  handlers.FromSaturation(idx.DateSaturation(questID, date)),
		RefreshedAt: view.RefreshedAt.Format(time.RFC3339),
		Requests:    idx.RequestCount(),
		Bookings:    idx.BookingCount(),
	})
}
