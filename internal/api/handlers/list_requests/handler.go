package list_requests

import (
	"errors"
	"net/http"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	listRequests "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/list_requests"
)

const (
	msgMissingQuest     = "параметр quest обязателен"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "неизвестный квест"
	msgStoreUnavailable = "журнал заявок временно недоступен"
)

type Handler struct {
	useCase ListRequestsUseCase
	logger  Logger
}

func NewHandler(useCase ListRequestsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/operator/requests
// Query params: quest (required), date (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quest := r.URL.Query().Get("quest")
	if quest == "" {
		handlers.RespondBadRequest(w, msgMissingQuest)
		return
	}

	req := &listRequests.Request{Quest: domain.QuestID(quest)}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /operator/requests - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listRequests.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, listRequests.ErrStoreUnavailable):
			h.logger.Error("GET /operator/requests - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /operator/requests - Failed to list requests: quest=%s, error=%v", quest, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
