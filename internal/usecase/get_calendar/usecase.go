package get_calendar

import (
	"context"
	"fmt"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/calendar"
)

// UseCase use case для построения календаря квеста
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

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if !uc.catalog.Contains(req.Quest) {
		uc.logger.Warn("GetCalendar: unknown quest %q", req.Quest)
		return nil, fmt.Errorf("%w: unknown quest %q", ErrInvalidInput, req.Quest)
	}

	// 2. Определяем "сегодня" и месяц
	today := domain.DateOf(uc.timeProvider.Now())
	month := today.MonthOf()
	if req.Month != nil {
		month = *req.Month
	}

	// 3. Полностью прошедший месяц недоступен для навигации
	if month.LastDay().Before(today) {
		uc.logger.Warn("GetCalendar: month %s has elapsed (today=%s)", month, today)
		return nil, ErrMonthElapsed
	}

	// 4. Сетка месяца
	grid := calendar.Build(month, today, req.Selected)

	// 5. Насыщенность дней по свежему снимку логов
	idx, err := uc.availability.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetCalendar: quest=%s, month=%s: %v", req.Quest, month, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	days := grid.Days()
	saturation := make(map[domain.CalendarDate]domain.DateSaturation, len(days))
	for _, day := range days {
		saturation[day] = idx.DateSaturation(req.Quest, day)
	}

	return &Response{
		Quest:      req.Quest,
		Today:      today,
		Grid:       grid,
		Saturation: saturation,
	}, nil
}
