package domain

import (
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// QuestID identifies a bookable quest (e.g. "Опасная зона").
type QuestID string

// BookingRequest is a visitor's request for a slot. It is never updated or deleted.
// Identity is (Quest, Date, Slot, CreatedAt): CreatedAt separates otherwise identical resubmissions.
type BookingRequest struct {
	Quest          QuestID          `json:"quest"`
	Date           CalendarDate     `json:"date"`
	Slot           types.TimeString `json:"slot"`
	RequesterName  string           `json:"requesterName"`
	RequesterPhone string           `json:"requesterPhone"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// SameSlot reports whether the request targets the given quest, date and slot.
func (r *BookingRequest) SameSlot(quest QuestID, date CalendarDate, slot types.TimeString) bool {
	return r.Quest == quest && r.Date.Equal(date) && r.Slot == slot
}

// ConfirmedBooking is an operator-created booking with payment terms.
// At most one may exist per (Quest, Date, Slot).
type ConfirmedBooking struct {
	Quest                 QuestID          `json:"quest"`
	Date                  CalendarDate     `json:"date"`
	Slot                  types.TimeString `json:"slot"`
	ClientName            string           `json:"clientName"`
	TotalAmount           Money            `json:"totalAmount"`
	Prepayment            Money            `json:"prepayment"`
	HasAdditionalServices bool             `json:"hasAdditionalServices"`
	CreatedAt             time.Time        `json:"createdAt"`
}

// SameSlot reports whether the booking occupies the given quest, date and slot.
func (b *ConfirmedBooking) SameSlot(quest QuestID, date CalendarDate, slot types.TimeString) bool {
	return b.Quest == quest && b.Date.Equal(date) && b.Slot == slot
}

// Outstanding returns the amount still to be paid on arrival.
func (b *ConfirmedBooking) Outstanding() Money {
	return b.TotalAmount - b.Prepayment
}

// RequestsFilter filters a request log snapshot. Zero fields match everything.
type RequestsFilter struct {
	Quest QuestID
	Date  *CalendarDate
	Slot  *types.TimeString
}

// Match reports whether r passes the filter.
func (f RequestsFilter) Match(r *BookingRequest) bool {
	if f.Quest != "" && r.Quest != f.Quest {
		return false
	}
	if f.Date != nil && !r.Date.Equal(*f.Date) {
		return false
	}
	if f.Slot != nil && r.Slot != *f.Slot {
		return false
	}
	return true
}
