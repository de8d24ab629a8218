package reconcile

import (
	"context"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/availability"
)

// Source строит свежий индекс доступности из логов
type Source interface {
	Snapshot(ctx context.Context) (*availability.Index, error)
}

// Listener получает каждый успешно перестроенный индекс
// Вызывается из горутины цикла; не должен вызывать Loop.Stop
type Listener func(idx *availability.Index)

// Metrics учёт проходов цикла
type Metrics interface {
	ObserveReconcile(err error, requests, confirmed int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
