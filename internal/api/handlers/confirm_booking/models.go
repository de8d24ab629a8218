package confirm_booking

import (
	"bytes"
	"encoding/json"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// Amount сумма из формы: принимается и строкой ("4500.50"), и числом (4500.5)
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	Quest                 string `json:"quest"`
	Date                  string `json:"date"`
	Slot                  string `json:"slot"`
	ClientName            string `json:"clientName"`
	TotalAmount           Amount `json:"totalAmount"`
	Prepayment            Amount `json:"prepayment"`
	HasAdditionalServices bool   `json:"hasAdditionalServices"`
}

// Parse разбирает дату и слот
func (r *ConfirmBookingRequest) Parse() (domain.QuestID, domain.CalendarDate, types.TimeString, error) {
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
