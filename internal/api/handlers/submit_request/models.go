package submit_request

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// SubmitRequestRequest HTTP request model
type SubmitRequestRequest struct {
	Quest          string `json:"quest"`
	Date           string `json:"date"` // "2024-06-10"
	Slot           string `json:"slot"` // "13:30"
	RequesterName  string `json:"requesterName"`
	RequesterPhone string `json:"requesterPhone"`
}

// Parse разбирает дату и слот
func (r *SubmitRequestRequest) Parse() (domain.QuestID, domain.CalendarDate, types.TimeString, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return "", domain.CalendarDate{}, "", err
	}

	slot, err := types.NewTimeStringFromString(r.Slot)
	if err != nil {
		return "", domain.CalendarDate{}, "", err
	}

	return domain.QuestID(r.Quest), date, slot, nil
}
