package list_requests

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	listRequests "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/list_requests"
)

// SlotRequestsResponse заявки на один слот
type SlotRequestsResponse struct {
	Date      string                             `json:"date"`
	Slot      string                             `json:"slot"`
	Requests  []handlers.BookingRequestResponse  `json:"requests"`
	Confirmed *handlers.ConfirmedBookingResponse `json:"confirmed,omitempty"`
}

// ListRequestsResponse HTTP response model
type ListRequestsResponse struct {
	Quest string                 `json:"quest"`
	Slots []SlotRequestsResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listRequests.Response) *ListRequestsResponse {
	slots := make([]SlotRequestsResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		item := SlotRequestsResponse{
			Date:     s.Date.String(),
			Slot:     s.Slot.String(),
			Requests: make([]handlers.BookingRequestResponse, 0, len(s.Requests)),
		}
		for _, req := range s.Requests {
			item.Requests = append(item.Requests, handlers.FromBookingRequest(req))
		}
		if s.Confirmed != nil {
			confirmed := handlers.FromConfirmedBooking(s.Confirmed)
			item.Confirmed = &confirmed
		}
		slots = append(slots, item)
	}

	return &ListRequestsResponse{
		Quest: string(resp.Quest),
		Slots: slots,
	}
}
