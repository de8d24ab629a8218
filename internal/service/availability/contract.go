package availability

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// LogReader чтение логов заявок и подтверждённых бронирований целиком
type LogReader interface {
	ReadAllRequests(ctx context.Context) ([]*domain.BookingRequest, error)
	ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
