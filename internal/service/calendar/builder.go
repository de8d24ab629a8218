// Package calendar builds the month grid shown in the date picker.
package calendar

import (
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

const daysInWeek = 7

// Cell одна ячейка сетки месяца
// Пустые ячейки (Empty = true) выравнивают первую и последнюю неделю
type Cell struct {
	Empty      bool
	Date       domain.CalendarDate
	IsPast     bool
	IsToday    bool
	IsSelected bool
}

// Grid сетка месяца с флагами навигации
type Grid struct {
	Month   domain.Month
	Cells   []Cell
	CanPrev bool
	CanNext bool
}

// Build строит сетку месяца: неделя начинается с понедельника,
// количество ячеек всегда кратно 7
func Build(month domain.Month, today domain.CalendarDate, selected *domain.CalendarDate) Grid {
	first := month.FirstDay()
	leading := mondayOffset(first.Weekday())
	days := month.DaysIn()

	total := leading + days
	if rem := total % daysInWeek; rem != 0 {
		total += daysInWeek - rem
	}

	cells := make([]Cell, 0, total)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Empty: true})
	}

	for day := 0; day < days; day++ {
		date := first.AddDays(day)
		cells = append(cells, Cell{
			Date:       date,
			IsPast:     date.Before(today),
			IsToday:    date.Equal(today),
			IsSelected: selected != nil && date.Equal(*selected),
		})
	}

	for len(cells) < total {
		cells = append(cells, Cell{Empty: true})
	}

	return Grid{
		Month:   month,
		Cells:   cells,
		CanPrev: CanNavigatePrev(month, today),
		CanNext: true,
	}
}

// CanNavigatePrev разрешает переход на предыдущий месяц, только если он
// ещё не закончился полностью
func CanNavigatePrev(month domain.Month, today domain.CalendarDate) bool {
	return !month.Prev().LastDay().Before(today)
}

// Days возвращает только реальные дни сетки в порядке следования
func (g Grid) Days() []domain.CalendarDate {
	days := make([]domain.CalendarDate, 0, len(g.Cells))
	for _, c := range g.Cells {
		if !c.Empty {
			days = append(days, c.Date)
		}
	}
	return days
}

// mondayOffset количество пустых ячеек перед днём недели при неделе с понедельника
func mondayOffset(w time.Weekday) int {
	return (int(w) + 6) % daysInWeek
}
