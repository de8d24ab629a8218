package get_calendar

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/calendar"
)

// Request модель запроса сетки месяца
type Request struct {
	Quest    domain.QuestID
	Month    *domain.Month        // nil - текущий месяц площадки
	Selected *domain.CalendarDate // Выбранная дата (опционально)
}

// Response сетка месяца и насыщенность каждого реального дня
type Response struct {
	Quest      domain.QuestID
	Today      domain.CalendarDate
	Grid       calendar.Grid
	Saturation map[domain.CalendarDate]domain.DateSaturation
}
