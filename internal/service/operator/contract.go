package operator

import (
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/reconcile"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics учёт активных сессий и проходов цикла
type Metrics interface {
	reconcile.Metrics
	SetOperatorSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
