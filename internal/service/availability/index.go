package availability

import (
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

type dayKey struct {
	quest domain.QuestID
	date  domain.CalendarDate
}

type dayBucket struct {
	requests  map[types.TimeString]int
	confirmed map[types.TimeString]bool
}

// Index производное представление занятости, построенное из одного снимка логов
// Index неизменяем после Build: для новых данных строится новый Index целиком
type Index struct {
	days         map[dayKey]*dayBucket
	requestCount int
	bookingCount int
	builtAt      time.Time
}

// Build группирует заявки по (квест, дата), затем по слоту
func Build(requests []*domain.BookingRequest, confirmed []*domain.ConfirmedBooking, builtAt time.Time) *Index {
	idx := &Index{
		days:         make(map[dayKey]*dayBucket),
		requestCount: len(requests),
		bookingCount: len(confirmed),
		builtAt:      builtAt,
	}

	for _, r := range requests {
		if r == nil {
			continue
		}
		idx.bucket(r.Quest, r.Date).requests[r.Slot]++
	}

	for _, b := range confirmed {
		if b == nil {
			continue
		}
		idx.bucket(b.Quest, b.Date).confirmed[b.Slot] = true
	}

	return idx
}

func (idx *Index) bucket(quest domain.QuestID, date domain.CalendarDate) *dayBucket {
	key := dayKey{quest: quest, date: date}
	b, ok := idx.days[key]
	if !ok {
		b = &dayBucket{
			requests:  make(map[types.TimeString]int),
			confirmed: make(map[types.TimeString]bool),
		}
		idx.days[key] = b
	}
	return b
}

// BuiltAt время чтения логов, из которых построен индекс
func (idx *Index) BuiltAt() time.Time {
	return idx.builtAt
}

// RequestCount количество заявок в снимке (по всем квестам)
func (idx *Index) RequestCount() int {
	return idx.requestCount
}

// BookingCount количество подтверждённых бронирований в снимке
func (idx *Index) BookingCount() int {
	return idx.bookingCount
}

// Occupancy занятость одного слота. Confirmed имеет приоритет над любым числом заявок
func (idx *Index) Occupancy(quest domain.QuestID, date domain.CalendarDate, slot types.TimeString) domain.Occupancy {
	b, ok := idx.days[dayKey{quest: quest, date: date}]
	if !ok {
		return domain.Free()
	}

	n := b.requests[slot]
	if b.confirmed[slot] {
		return domain.Confirmed(n)
	}
	if n > 0 {
		return domain.Requested(n)
	}
	return domain.Free()
}

// SlotStates состояние каждого слота каталога на дату
// now задаёт "сегодня" и текущее время суток в часовом поясе площадки
func (idx *Index) SlotStates(quest domain.QuestID, date domain.CalendarDate, now time.Time) []domain.SlotState {
	states := make([]domain.SlotState, len(domain.SlotCatalog))
	for i, slot := range domain.SlotCatalog {
		states[i] = domain.SlotState{
			Slot:      slot,
			Occupancy: idx.Occupancy(quest, date, slot),
			IsPast:    IsSlotPast(date, slot, now),
		}
	}
	return states
}

// DateSaturation количество не свободных слотов на дату
func (idx *Index) DateSaturation(quest domain.QuestID, date domain.CalendarDate) domain.DateSaturation {
	occupied := 0
	for _, slot := range domain.SlotCatalog {
		if !idx.Occupancy(quest, date, slot).IsFree() {
			occupied++
		}
	}
	return domain.NewDateSaturation(occupied, domain.SlotCount())
}

// IsFullyBooked true, если заняты все слоты каталога
func (idx *Index) IsFullyBooked(quest domain.QuestID, date domain.CalendarDate) bool {
	return idx.DateSaturation(quest, date).FullyBooked
}

// IsSlotPast слот сегодняшнего дня в прошлом, если его время строго раньше текущего
// (с точностью до секунды). Все слоты дат до сегодняшнего дня тоже считаются прошедшими
func IsSlotPast(date domain.CalendarDate, slot types.TimeString, now time.Time) bool {
	today := domain.DateOf(now)
	if date.Before(today) {
		return true
	}
	if !date.Equal(today) {
		return false
	}

	minutes, err := slot.Minutes()
	if err != nil {
		return false
	}
	elapsed := now.Hour()*3600 + now.Minute()*60 + now.Second()
	return minutes*60 < elapsed
}
