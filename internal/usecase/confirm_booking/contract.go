package confirm_booking

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// BookingLog лог подтверждённых бронирований
type BookingLog interface {
	ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error)
	AppendConfirmed(ctx context.Context, booking *domain.ConfirmedBooking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuestCatalog список квестов площадки
type QuestCatalog interface {
	Contains(quest domain.QuestID) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics учёт подтверждений и конфликтов
type Metrics interface {
	IncBookingConfirmed(quest string)
	IncConfirmConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
