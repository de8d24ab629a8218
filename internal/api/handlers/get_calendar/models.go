package get_calendar

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	getCalendar "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Quest   string         `json:"quest"`
	Month   string         `json:"month"`
	Today   string         `json:"today"`
	CanPrev bool           `json:"canPrev"`
	CanNext bool           `json:"canNext"`
	Cells   []CellResponse `json:"cells"`
}

// CellResponse ячейка сетки; для пустых ячеек заполнено только empty
type CellResponse struct {
	Empty      bool                         `json:"empty"`
	Date       string                       `json:"date,omitempty"`
	IsPast     bool                         `json:"isPast,omitempty"`
	IsToday    bool                         `json:"isToday,omitempty"`
	IsSelected bool                         `json:"isSelected,omitempty"`
	Saturation *handlers.SaturationResponse `json:"saturation,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	cells := make([]CellResponse, len(resp.Grid.Cells))
	for i, c := range resp.Grid.Cells {
		if c.Empty {
			cells[i] = CellResponse{Empty: true}
			continue
		}

		cell := CellResponse{
			Date:       c.Date.String(),
			IsPast:     c.IsPast,
			IsToday:    c.IsToday,
			IsSelected: c.IsSelected,
		}
		if sat, ok := resp.Saturation[c.Date]; ok {
			s := handlers.FromSaturation(sat)
			cell.Saturation = &s
		}
		cells[i] = cell
	}

	return &CalendarResponse{
		Quest:   string(resp.Quest),
		Month:   resp.Grid.Month.String(),
		Today:   resp.Today.String(),
		CanPrev: resp.Grid.CanPrev,
		CanNext: resp.Grid.CanNext,
		Cells:   cells,
	}
}
