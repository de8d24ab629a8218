package get_slot_states

import (
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// Request модель запроса состояния слотов на дату
type Request struct {
	Quest domain.QuestID
	Date  domain.CalendarDate
}

// Response состояние каждого слота каталога и насыщенность даты
type Response struct {
	Quest      domain.QuestID
	Date       domain.CalendarDate
	Slots      []domain.SlotState
	Saturation domain.DateSaturation
	ReadAt     time.Time // Время чтения логов
}
