package get_date_saturation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	getDateSaturation "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_date_saturation"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректный квест или дата"
	msgStoreUnavailable = "журнал заявок временно недоступен"
)

type Handler struct {
	useCase GetDateSaturationUseCase
	logger  Logger
}

func NewHandler(useCase GetDateSaturationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/quests/{quest}/saturation
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quest := mux.Vars(r)["quest"]

	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /quests/{quest}/saturation - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDateSaturation.Request{
		Quest: domain.QuestID(quest),
		Date:  date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDateSaturation.ErrInvalidInput):
			h.logger.Warn("GET /quests/{quest}/saturation - Invalid input: quest=%s", quest)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getDateSaturation.ErrStoreUnavailable):
			h.logger.Error("GET /quests/{quest}/saturation - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /quests/{quest}/saturation - Failed: quest=%s, error=%v", quest, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
