package confirm_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при отсутствующих или некорректных полях формы
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrPrepaymentExceedsTotal возвращается, если предоплата больше общей суммы
	ErrPrepaymentExceedsTotal = fmt.Errorf("%w: prepayment exceeds total amount", ErrInvalidInput)

	// ErrSlotAlreadyConfirmed возвращается, если на слот уже есть подтверждённое бронирование
	ErrSlotAlreadyConfirmed = errors.New("confirm_booking: slot already confirmed")

	// ErrStoreUnavailable возвращается, если лог не удалось прочитать или дописать
	ErrStoreUnavailable = errors.New("confirm_booking: store unavailable")
)
