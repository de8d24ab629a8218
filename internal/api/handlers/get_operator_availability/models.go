package get_operator_availability

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
)

// OperatorAvailabilityResponse HTTP response model
type OperatorAvailabilityResponse struct {
	Quest       string                       `json:"quest"`
	Date        string                       `json:"date"`
	Slots       []handlers.SlotStateResponse `json:"slots"`
	Saturation  handlers.SaturationResponse  `json:"saturation"`
	RefreshedAt string                       `json:"refreshedAt"`
	Requests    int                          `json:"totalRequests"`
	Bookings    int                          `json:"totalBookings"`
}
