package handlers

import (
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// SlotStateResponse состояние одного слота
type SlotStateResponse struct {
	Slot       string `json:"slot"`
	Status     string `json:"status"`
	Requests   int    `json:"requests"`
	IsPast     bool   `json:"isPast"`
	Selectable bool   `json:"selectable"`
}

// SaturationResponse насыщенность даты
type SaturationResponse struct {
	OccupiedCount int  `json:"occupiedCount"`
	TotalSlots    int  `json:"totalSlots"`
	FullyBooked   bool `json:"fullyBooked"`
}

// BookingRequestResponse заявка посетителя
type BookingRequestResponse struct {
	Quest          string `json:"quest"`
	Date           string `json:"date"`
	Slot           string `json:"slot"`
	RequesterName  string `json:"requesterName"`
	RequesterPhone string `json:"requesterPhone"`
	CreatedAt      string `json:"createdAt"`
}

// ConfirmedBookingResponse подтверждённое бронирование
type ConfirmedBookingResponse struct {
	Quest                 string `json:"quest"`
	Date                  string `json:"date"`
	Slot                  string `json:"slot"`
	ClientName            string `json:"clientName"`
	TotalAmount           string `json:"totalAmount"`
	Prepayment            string `json:"prepayment"`
	Outstanding           string `json:"outstanding"`
	HasAdditionalServices bool   `json:"hasAdditionalServices"`
	CreatedAt             string `json:"createdAt"`
}

func FromSlotStates(states []domain.SlotState) []SlotStateResponse {
	out := make([]SlotStateResponse, len(states))
	for i, s := range states {
		out[i] = SlotStateResponse{
			Slot:       s.Slot.String(),
			Status:     string(s.Occupancy.Status),
			Requests:   s.Occupancy.Requests,
			IsPast:     s.IsPast,
			Selectable: s.Selectable(),
		}
	}
	return out
}

func FromSaturation(s domain.DateSaturation) SaturationResponse {
	return SaturationResponse{
		OccupiedCount: s.OccupiedCount,
		TotalSlots:    s.TotalSlots,
		FullyBooked:   s.FullyBooked,
	}
}

func FromBookingRequest(r *domain.BookingRequest) BookingRequestResponse {
	return BookingRequestResponse{
		Quest:          string(r.Quest),
		Date:           r.Date.String(),
		Slot:           r.Slot.String(),
		RequesterName:  r.RequesterName,
		RequesterPhone: r.RequesterPhone,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func FromConfirmedBooking(b *domain.ConfirmedBooking) ConfirmedBookingResponse {
	return ConfirmedBookingResponse{
		Quest:                 string(b.Quest),
		Date:                  b.Date.String(),
		Slot:                  b.Slot.String(),
		ClientName:            b.ClientName,
		TotalAmount:           b.TotalAmount.String(),
		Prepayment:            b.Prepayment.String(),
		Outstanding:           b.Outstanding().String(),
		HasAdditionalServices: b.HasAdditionalServices,
		CreatedAt:             b.CreatedAt.Format(time.RFC3339),
	}
}
