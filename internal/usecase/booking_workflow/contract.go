package booking_workflow

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/availability"
	confirmBooking "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/confirm_booking"
	submitRequest "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/submit_request"
)

// AvailabilityService строит индекс доступности из свежего чтения логов
type AvailabilityService interface {
	Snapshot(ctx context.Context) (*availability.Index, error)
}

// RequestSubmitter запись заявки посетителя
type RequestSubmitter interface {
	Execute(ctx context.Context, req *submitRequest.Request) (*domain.BookingRequest, error)
}

// BookingConfirmer запись подтверждения оператора
type BookingConfirmer interface {
	Execute(ctx context.Context, req *confirmBooking.Request) (*domain.ConfirmedBooking, error)
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
