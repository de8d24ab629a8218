package get_date_saturation

import (
	"context"
	"fmt"
)

// UseCase use case для получения насыщенности даты
type UseCase struct {
	availability AvailabilityService
	catalog      QuestCatalog
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, catalog QuestCatalog, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute выполняет use case получения насыщенности даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if !uc.catalog.Contains(req.Quest) {
		uc.logger.Warn("GetDateSaturation: unknown quest %q", req.Quest)
		return nil, fmt.Errorf("%w: unknown quest %q", ErrInvalidInput, req.Quest)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Строим индекс из свежего чтения логов
	idx, err := uc.availability.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetDateSaturation: quest=%s, date=%s: %v", req.Quest, req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &Response{
		Quest:      req.Quest,
		Date:       req.Date,
		Saturation: idx.DateSaturation(req.Quest, req.Date),
	}, nil
}
