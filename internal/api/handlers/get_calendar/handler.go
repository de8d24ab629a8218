package get_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	getCalendar "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_calendar"
)

const (
	msgInvalidMonth     = "некорректный формат месяца, ожидается YYYY-MM"
	msgInvalidSelected  = "некорректный формат выбранной даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректный квест"
	msgMonthElapsed     = "месяц уже прошёл"
	msgStoreUnavailable = "журнал заявок временно недоступен"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/quests/{quest}/calendar
// Query params: month (optional, YYYY-MM), selected (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quest := mux.Vars(r)["quest"]
	query := r.URL.Query()

	req := &getCalendar.Request{Quest: domain.QuestID(quest)}

	if monthStr := query.Get("month"); monthStr != "" {
		month, err := domain.ParseMonth(monthStr)
		if err != nil {
			h.logger.Warn("GET /quests/{quest}/calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		req.Month = &month
	}

	if selectedStr := query.Get("selected"); selectedStr != "" {
		selected, err := domain.ParseDate(selectedStr)
		if err != nil {
			h.logger.Warn("GET /quests/{quest}/calendar - Invalid selected date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelected)
			return
		}
		req.Selected = &selected
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /quests/{quest}/calendar - Invalid input: quest=%s", quest)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getCalendar.ErrMonthElapsed):
			handlers.RespondBadRequest(w, msgMonthElapsed)

		case errors.Is(err, getCalendar.ErrStoreUnavailable):
			h.logger.Error("GET /quests/{quest}/calendar - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /quests/{quest}/calendar - Failed: quest=%s, error=%v", quest, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
