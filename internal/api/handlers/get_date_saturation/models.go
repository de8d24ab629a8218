package get_date_saturation

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	getDateSaturation "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_date_saturation"
)

// DateSaturationResponse HTTP response model
type DateSaturationResponse struct {
	Quest string `json:"quest"`
	Date  string `json:"date"`
	handlers.SaturationResponse
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDateSaturation.Response) *DateSaturationResponse {
	return &DateSaturationResponse{
		Quest:              string(resp.Quest),
		Date:               resp.Date.String(),
		SaturationResponse: handlers.FromSaturation(resp.Saturation),
	}
}
