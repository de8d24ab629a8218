package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// UseCase use case для подтверждения бронирования оператором
type UseCase struct {
	bookingLog   BookingLog
	txManager    TransactionManager
	catalog      QuestCatalog
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	bookingLog BookingLog,
	txManager TransactionManager,
	catalog QuestCatalog,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingLog:   bookingLog,
		txManager:    txManager,
		catalog:      catalog,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения
// Проверка "слот ещё свободен" и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ConfirmedBooking, error) {
	// 1. Валидация входных данных
	parsed, err := validateRequest(req, uc.catalog)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.ConfirmedBooking{
		Quest:                 req.Quest,
		Date:                  req.Date,
		Slot:                  req.Slot,
		ClientName:            req.ClientName,
		TotalAmount:           parsed.total,
		Prepayment:            parsed.prepayment,
		HasAdditionalServices: req.HasAdditionalServices,
		CreatedAt:             uc.timeProvider.Now(),
	}

	// 2. Проверка и запись в транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем лог подтверждений
		existing, err := uc.bookingLog.ReadAllConfirmed(txCtx)
		if err != nil {
			return fmt.Errorf("%w: read confirmed bookings: %v", ErrStoreUnavailable, err)
		}

		// 2.2. Слот не должен быть уже подтверждён
		for _, b := range existing {
			if b.SameSlot(booking.Quest, booking.Date, booking.Slot) {
				return ErrSlotAlreadyConfirmed
			}
		}

		// 2.3. Дописываем подтверждение
		if err := uc.bookingLog.AppendConfirmed(txCtx, booking); err != nil {
			if errors.Is(err, domain.ErrDuplicateConfirmed) {
				return ErrSlotAlreadyConfirmed
			}
			return fmt.Errorf("%w: append confirmed booking: %v", ErrStoreUnavailable, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotAlreadyConfirmed):
			uc.logger.Warn("ConfirmBooking: slot already confirmed quest=%s, date=%s, slot=%s",
				req.Quest, req.Date, req.Slot)
			if uc.metrics != nil {
				uc.metrics.IncConfirmConflict()
			}
			return nil, ErrSlotAlreadyConfirmed
		case errors.Is(err, ErrStoreUnavailable):
			uc.logger.Error("ConfirmBooking: %v", err)
			return nil, err
		default:
			uc.logger.Error("ConfirmBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingConfirmed(string(req.Quest))
	}

	uc.logger.Info("ConfirmBooking: booking confirmed quest=%s, date=%s, slot=%s, client=%s, total=%s, prepayment=%s",
		booking.Quest, booking.Date, booking.Slot, booking.ClientName, booking.TotalAmount, booking.Prepayment)

	return booking, nil
}
