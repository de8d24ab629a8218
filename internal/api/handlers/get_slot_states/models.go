package get_slot_states

import (
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	getSlotStates "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_slot_states"
)

// SlotStatesResponse HTTP response model
type SlotStatesResponse struct {
	Quest      string                       `json:"quest"`
	Date       string                       `json:"date"`
	Slots      []handlers.SlotStateResponse `json:"slots"`
	Saturation handlers.SaturationResponse  `json:"saturation"`
	ReadAt     string                       `json:"readAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotStates.Response) *SlotStatesResponse {
	return &SlotStatesResponse{
		Quest:      string(resp.Quest),
		Date:       resp.Date.String(),
		Slots:      handlers.FromSlotStates(resp.Slots),
		Saturation: handlers.FromSaturation(resp.Saturation),
		ReadAt:     resp.ReadAt.Format(time.RFC3339),
	}
}
