package submit_request

import (
	"context"
	"fmt"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// UseCase use case для записи заявки посетителя
// Несколько заявок на один слот допустимы: выбор между ними делает оператор
type UseCase struct {
	requestLog   RequestLog
	catalog      QuestCatalog
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	requestLog RequestLog,
	catalog QuestCatalog,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestLog:   requestLog,
		catalog:      catalog,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case записи заявки
// Заявка дописывается в лог ровно один раз; повторных попыток нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.BookingRequest, error) {
	// 1. Нормализация и валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("SubmitRequest: validation failed: %v", err)
		return nil, err
	}

	if !looksLikePhone(req.RequesterPhone) {
		uc.logger.Warn("SubmitRequest: unusual phone format %q accepted", req.RequesterPhone)
	}

	// 2. Формируем заявку с явной датой
	request := &domain.BookingRequest{
		Quest:          req.Quest,
		Date:           req.Date,
		Slot:           req.Slot,
		RequesterName:  req.RequesterName,
		RequesterPhone: req.RequesterPhone,
		CreatedAt:      uc.timeProvider.Now(),
	}

	// 3. Дописываем в лог
	if err := uc.requestLog.AppendRequest(ctx, request); err != nil {
		uc.logger.Error("SubmitRequest: failed to append request quest=%s, date=%s, slot=%s: %v",
			req.Quest, req.Date, req.Slot, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncRequestSubmitted(string(req.Quest))
	}

	uc.logger.Info("SubmitRequest: request accepted quest=%s, date=%s, slot=%s",
		request.Quest, request.Date, request.Slot)

	return request, nil
}
