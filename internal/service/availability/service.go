package availability

import (
	"context"
	"fmt"
	"time"
)

// Service строит Index из свежего чтения логов
// Сервис не хранит результатов: каждый вызов Snapshot читает логи заново
type Service struct {
	store        LogReader
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(store LogReader, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Snapshot читает оба лога и строит новый Index
// При ошибке чтения частичный индекс не возвращается
func (s *Service) Snapshot(ctx context.Context) (*Index, error) {
	requests, err := s.store.ReadAllRequests(ctx)
	if err != nil {
		s.logger.Error("Snapshot: failed to read request log: %v", err)
		return nil, fmt.Errorf("%w: read requests: %v", ErrStoreUnavailable, err)
	}

	confirmed, err := s.store.ReadAllConfirmed(ctx)
	if err != nil {
		s.logger.Error("Snapshot: failed to read confirmed log: %v", err)
		return nil, fmt.Errorf("%w: read confirmed bookings: %v", ErrStoreUnavailable, err)
	}

	return Build(requests, confirmed, s.timeProvider.Now()), nil
}

// Now текущее время площадки
func (s *Service) Now() time.Time {
	return s.timeProvider.Now()
}
