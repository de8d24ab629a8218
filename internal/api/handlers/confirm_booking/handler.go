package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	confirmBooking "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/confirm_booking"
	bookingWorkflow "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/booking_workflow"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDateOrSlot      = "некорректная дата (YYYY-MM-DD) или время слота (HH:MM)"
	msgUnknownSlot            = "такого времени нет в расписании"
	msgInvalidInput           = "укажите имя клиента, сумму и предоплату числами"
	msgPrepaymentExceedsTotal = "предоплата не может превышать общую сумму"
	msgSlotInPast             = "выбранное время уже прошло"
	msgSlotConfirmed          = "этот слот уже подтверждён"
	msgStoreUnavailable       = "журнал бронирований временно недоступен"
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

// Handle POST /api/v1/operator/bookings
// Проходит процесс оператора целиком: выбор слота, форма, подтверждение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /operator/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	quest, date, slot, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /operator/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrSlot)
		return
	}

	wf := h.workflows.New(true)

	if err := wf.SelectSlot(r.Context(), quest, date, slot); err != nil {
		h.respondError(w, err, req)
		return
	}

	if err := wf.OpenForm(); err != nil {
		h.respondError(w, err, req)
		return
	}

	outcome, err := wf.Commit(r.Context(), bookingWorkflow.OperatorForm{
		ClientName:            req.ClientName,
		TotalAmount:           string(req.TotalAmount),
		Prepayment:            string(req.Prepayment),
		HasAdditionalServices: req.HasAdditionalServices,
	})
	if err != nil {
		h.respondError(w, err, req)
		return
	}

	h.logger.Info("POST /operator/bookings - Booking confirmed: quest=%s, date=%s, slot=%s", req.Quest, req.Date, req.Slot)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromConfirmedBooking(outcome.Booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, req ConfirmBookingRequest) {
	switch {
	case errors.Is(err, bookingWorkflow.ErrUnknownSlot):
		handlers.RespondBadRequest(w, msgUnknownSlot)

	case errors.Is(err, confirmBooking.ErrPrepaymentExceedsTotal):
		h.logger.Warn("POST /operator/bookings - Prepayment exceeds total: total=%s, prepayment=%s", req.TotalAmount, req.Prepayment)
		handlers.RespondBadRequest(w, msgPrepaymentExceedsTotal)

	case errors.Is(err, confirmBooking.ErrInvalidInput):
		h.logger.Warn("POST /operator/bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, bookingWorkflow.ErrSlotInPast):
		handlers.RespondConflict(w, msgSlotInPast)

	case errors.Is(err, bookingWorkflow.ErrSlotConfirmed), errors.Is(err, confirmBooking.ErrSlotAlreadyConfirmed):
		h.logger.Warn("POST /operator/bookings - Slot already confirmed: quest=%s, date=%s, slot=%s", req.Quest, req.Date, req.Slot)
		handlers.RespondConflict(w, msgSlotConfirmed)

	case errors.Is(err, bookingWorkflow.ErrStoreUnavailable), errors.Is(err, confirmBooking.ErrStoreUnavailable):
		h.logger.Error("POST /operator/bookings - Store unavailable: %v", err)
		handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

	default:
		h.logger.Error("POST /operator/bookings - Failed to confirm booking: quest=%s, error=%v", req.Quest, err)
		handlers.RespondInternalError(w)
	}
}
