package get_slot_states

import (
	"context"
	"fmt"
)

// UseCase use case для получения состояния слотов на дату
// Посетитель читает логи один раз при открытии выбора слота
type UseCase struct {
	availability AvailabilityService
	catalog      QuestCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	catalog QuestCatalog,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		catalog:      catalog,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения состояния слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("GetSlotStates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время площадки
	now := uc.timeProvider.Now()

	// 3. Строим индекс из свежего чтения логов
	idx, err := uc.availability.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetSlotStates: quest=%s, date=%s: %v", req.Quest, req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 4. Состояние слотов и насыщенность даты
	return &Response{
		Quest:      req.Quest,
		Date:       req.Date,
		Slots:      idx.SlotStates(req.Quest, req.Date, now),
		Saturation: idx.DateSaturation(req.Quest, req.Date),
		ReadAt:     idx.BuiltAt(),
	}, nil
}
