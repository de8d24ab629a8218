package list_requests

import (
	"context"
	"fmt"
	"sort"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// UseCase use case для просмотра заявок оператором
// Порядок заявок внутри слота совпадает с порядком записи в лог; приоритета между ними нет
type UseCase struct {
	logReader LogReader
	catalog   QuestCatalog
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logReader LogReader, catalog QuestCatalog, logger Logger) *UseCase {
	return &UseCase{
		logReader: logReader,
		catalog:   catalog,
		logger:    logger,
	}
}

type slotKey struct {
	date domain.CalendarDate
	slot types.TimeString
}

// Execute выполняет use case просмотра заявок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if !uc.catalog.Contains(req.Quest) {
		uc.logger.Warn("ListRequests: unknown quest %q", req.Quest)
		return nil, fmt.Errorf("%w: unknown quest %q", ErrInvalidInput, req.Quest)
	}

	// 2. Читаем оба лога
	requests, err := uc.logReader.ReadAllRequests(ctx)
	if err != nil {
		uc.logger.Error("ListRequests: failed to read request log: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	confirmed, err := uc.logReader.ReadAllConfirmed(ctx)
	if err != nil {
		uc.logger.Error("ListRequests: failed to read confirmed log: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 3. Группируем заявки по слоту, сохраняя порядок лога
	filter := domain.RequestsFilter{Quest: req.Quest, Date: req.Date}
	groups := make(map[slotKey]*SlotRequests)
	for _, r := range requests {
		if !filter.Match(r) {
			continue
		}
		g := group(groups, r.Date, r.Slot)
		g.Requests = append(g.Requests, r)
	}

	// 4. Подтверждённые слоты показываются даже без заявок
	for _, b := range confirmed {
		if b.Quest != req.Quest || (req.Date != nil && !b.Date.Equal(*req.Date)) {
			continue
		}
		group(groups, b.Date, b.Slot).Confirmed = b
	}

	// 5. Сортируем по дате и времени слота
	slots := make([]SlotRequests, 0, len(groups))
	for _, g := range groups {
		slots = append(slots, *g)
	}
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].Slot.IsBefore(slots[j].Slot)
	})

	return &Response{Quest: req.Quest, Slots: slots}, nil
}

func group(groups map[slotKey]*SlotRequests, date domain.CalendarDate, slot types.TimeString) *SlotRequests {
	key := slotKey{date: date, slot: slot}
	g, ok := groups[key]
	if !ok {
		g = &SlotRequests{Date: date, Slot: slot, Requests: make([]*domain.BookingRequest, 0)}
		groups[key] = g
	}
	return g
}
