package get_slot_states

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	getSlotStates "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_slot_states"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректный квест или дата"
	msgStoreUnavailable = "журнал заявок временно недоступен"
)

type Handler struct {
	useCase GetSlotStatesUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotStatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/quests/{quest}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quest := mux.Vars(r)["quest"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /quests/{quest}/slots - Missing date: quest=%s", quest)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /quests/{quest}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlotStates.Request{
		Quest: domain.QuestID(quest),
		Date:  date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlotStates.ErrInvalidInput):
			h.logger.Warn("GET /quests/{quest}/slots - Invalid input: quest=%s, date=%s", quest, dateStr)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getSlotStates.ErrStoreUnavailable):
			h.logger.Error("GET /quests/{quest}/slots - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /quests/{quest}/slots - Failed to get slot states: quest=%s, error=%v", quest, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
