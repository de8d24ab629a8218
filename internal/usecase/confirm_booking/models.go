package confirm_booking

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// Request модель формы подтверждения бронирования
// Суммы приходят строками из формы и разбираются здесь
type Request struct {
	Quest                 domain.QuestID
	Date                  domain.CalendarDate
	Slot                  types.TimeString
	ClientName            string
	TotalAmount           string // Например "4500" или "4500.50"
	Prepayment            string
	HasAdditionalServices bool
}
