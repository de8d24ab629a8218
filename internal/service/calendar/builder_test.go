package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

func TestBuild(t *testing.T) {
	today := domain.NewCalendarDate(2024, time.June, 10)

	tests := []struct {
		name        string
		month       domain.Month
		wantLeading int
		wantCells   int
	}{
		// 1 июня 2024 - суббота
		{name: "starts on saturday", month: domain.Month{Year: 2024, Month: time.June}, wantLeading: 5, wantCells: 35},
		// 1 июля 2024 - понедельник
		{name: "starts on monday", month: domain.Month{Year: 2024, Month: time.July}, wantLeading: 0, wantCells: 35},
		// 1 сентября 2024 - воскресенье
		{name: "starts on sunday", month: domain.Month{Year: 2024, Month: time.September}, wantLeading: 6, wantCells: 42},
		// февраль 2027 начинается в понедельник и занимает ровно 4 недели
		{name: "exact four weeks", month: domain.Month{Year: 2027, Month: time.February}, wantLeading: 0, wantCells: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := Build(tt.month, today, nil)

			require.Len(t, grid.Cells, tt.wantCells)
			assert.Zero(t, len(grid.Cells)%7)

			for i := 0; i < tt.wantLeading; i++ {
				assert.True(t, grid.Cells[i].Empty)
			}
			first := grid.Cells[tt.wantLeading]
			assert.False(t, first.Empty)
			assert.Equal(t, tt.month.FirstDay(), first.Date)
			assert.Equal(t, tt.wantLeading, (int(first.Date.Weekday())+6)%7)

			days := grid.Days()
			assert.Len(t, days, tt.month.DaysIn())
			assert.Equal(t, tt.month.LastDay(), days[len(days)-1])
		})
	}
}

func TestBuild_Flags(t *testing.T) {
	today := domain.NewCalendarDate(2024, time.June, 10)
	selected := domain.NewCalendarDate(2024, time.June, 12)

	grid := Build(today.MonthOf(), today, &selected)

	flags := make(map[int]Cell)
	for _, c := range grid.Cells {
		if !c.Empty {
			flags[c.Date.Day] = c
		}
	}

	assert.True(t, flags[9].IsPast)
	assert.False(t, flags[10].IsPast)
	assert.True(t, flags[10].IsToday)
	assert.True(t, flags[12].IsSelected)
	assert.False(t, flags[11].IsSelected)
	assert.True(t, grid.CanNext)
}

func TestCanNavigatePrev(t *testing.T) {
	today := domain.NewCalendarDate(2024, time.June, 10)

	assert.False(t, CanNavigatePrev(domain.Month{Year: 2024, Month: time.June}, today))
	assert.True(t, CanNavigatePrev(domain.Month{Year: 2024, Month: time.July}, today))

	// последний день мая ещё не прошёл
	lastOfMay := domain.NewCalendarDate(2024, time.May, 31)
	assert.True(t, CanNavigatePrev(domain.Month{Year: 2024, Month: time.June}, lastOfMay))
}
