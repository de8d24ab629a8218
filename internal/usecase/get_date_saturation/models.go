package get_date_saturation

import "github.com/pr-poehali-dev/booking-site-hazard/internal/domain"

// Request модель запроса насыщенности даты
type Request struct {
	Quest domain.QuestID
	Date  domain.CalendarDate
}

// Response насыщенность даты
type Response struct {
	Quest      domain.QuestID
	Date       domain.CalendarDate
	Saturation domain.DateSaturation
}
