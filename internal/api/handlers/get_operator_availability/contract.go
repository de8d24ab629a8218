package get_operator_availability

import (
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/operator"
)

// SessionViews последний индекс, полученный циклом сессии
type SessionViews interface {
	View(sessionID string) (*operator.View, error)
}

type QuestCatalog interface {
	Contains(quest domain.QuestID) bool
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
