package list_requests

import (
	"context"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// LogReader чтение логов заявок и подтверждений
type LogReader interface {
	ReadAllRequests(ctx context.Context) ([]*domain.BookingRequest, error)
	ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error)
}

// QuestCatalog список квестов площадки
type QuestCatalog interface {
	Contains(quest domain.QuestID) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
