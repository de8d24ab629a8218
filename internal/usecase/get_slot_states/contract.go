package get_slot_states

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/availability"
)

// AvailabilityService строит индекс доступности из свежего чтения логов
type AvailabilityService interface {
	Snapshot(ctx context.Context) (*availability.Index, error)
}

// QuestCatalog список квестов площадки
type QuestCatalog interface {
	Contains(quest domain.QuestID) bool
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
