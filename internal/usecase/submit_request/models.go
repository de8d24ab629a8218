package submit_request

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// Request модель заявки посетителя
type Request struct {
	Quest          domain.QuestID
	Date           domain.CalendarDate
	Slot           types.TimeString
	RequesterName  string
	RequesterPhone string
}
