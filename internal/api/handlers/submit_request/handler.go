package submit_request

import (
	"errors"
	"net/http"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	bookingWorkflow "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/booking_workflow"
	submitRequest "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/submit_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrSlot  = "некорректная дата (YYYY-MM-DD) или время слота (HH:MM)"
	msgUnknownSlot        = "такого времени нет в расписании"
	msgInvalidInput       = "заполните имя, телефон и выберите квест"
	msgSlotInPast         = "выбранное время уже прошло"
	msgSlotConfirmed      = "выбранное время уже забронировано"
	msgStoreUnavailable   = "журнал заявок временно недоступен, попробуйте позже"
)

type Handler struct {
	workflows WorkflowFactory
	logger    Logger
}

func NewHandler(workflows WorkflowFactory, logger Logger) *Handler {
	return &Handler{
		workflows: workflows,
		logger:    logger,
	}
}

// Handle POST /api/v1/requests
// Проходит процесс посетителя целиком: выбор слота, форма, фиксация
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	quest, date, slot, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /requests - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrSlot)
		return
	}

	wf := h.workflows.New(false)

	if err := wf.SelectSlot(r.Context(), quest, date, slot); err != nil {
		h.respondError(w, err, req)
		return
	}

	if err := wf.OpenForm(); err != nil {
		h.respondError(w, err, req)
		return
	}

	outcome, err := wf.Commit(r.Context(), bookingWorkflow.VisitorForm{
		Name:  req.RequesterName,
		Phone: req.RequesterPhone,
	})
	if err != nil {
		h.respondError(w, err, req)
		return
	}

	h.logger.Info("POST /requests - Request submitted: quest=%s, date=%s, slot=%s", req.Quest, req.Date, req.Slot)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromBookingRequest(outcome.Request))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, req SubmitRequestRequest) {
	switch {
	case errors.Is(err, bookingWorkflow.ErrUnknownSlot):
		h.logger.Warn("POST /requests - Unknown slot: slot=%s", req.Slot)
		handlers.RespondBadRequest(w, msgUnknownSlot)

	case errors.Is(err, submitRequest.ErrInvalidInput):
		h.logger.Warn("POST /requests - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, bookingWorkflow.ErrSlotInPast):
		handlers.RespondConflict(w, msgSlotInPast)

	case errors.Is(err, bookingWorkflow.ErrSlotConfirmed):
		h.logger.Warn("POST /requests - Slot already confirmed: quest=%s, date=%s, slot=%s", req.Quest, req.Date, req.Slot)
		handlers.RespondConflict(w, msgSlotConfirmed)

	case errors.Is(err, bookingWorkflow.ErrStoreUnavailable), errors.Is(err, submitRequest.ErrStoreUnavailable):
		h.logger.Error("POST /requests - Store unavailable: %v", err)
		handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

	default:
		h.logger.Error("POST /requests - Failed to submit request: quest=%s, error=%v", req.Quest, err)
		handlers.RespondInternalError(w)
	}
}
