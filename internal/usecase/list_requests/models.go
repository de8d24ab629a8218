package list_requests

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// Request фильтр заявок для оператора
type Request struct {
	Quest domain.QuestID
	Date  *domain.CalendarDate // nil - все даты
}

// SlotRequests конкурирующие заявки на один слот в порядке записи в лог
type SlotRequests struct {
	Date      domain.CalendarDate
	Slot      types.TimeString
	Requests  []*domain.BookingRequest
	Confirmed *domain.ConfirmedBooking // nil, если слот ещё не подтверждён
}

// Response заявки, сгруппированные по (дата, слот)
type Response struct {
	Quest domain.QuestID
	Slots []SlotRequests
}
