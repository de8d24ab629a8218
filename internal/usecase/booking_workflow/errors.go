package booking_workflow

import "errors"

var (
	// ErrInvalidTransition возвращается при действии, недопустимом в текущем состоянии
	ErrInvalidTransition = errors.New("booking_workflow: invalid transition")

	// ErrSlotConfirmed возвращается при выборе уже подтверждённого слота
	ErrSlotConfirmed = errors.New("booking_workflow: slot already confirmed")

	// ErrSlotInPast возвращается при выборе прошедшего слота
	ErrSlotInPast = errors.New("booking_workflow: slot is in the past")

	// ErrUnknownSlot возвращается для времени, которого нет в каталоге слотов
	ErrUnknownSlot = errors.New("booking_workflow: slot is not offered")

	// ErrWrongForm возвращается, если форма не соответствует роли сессии
	ErrWrongForm = errors.New("booking_workflow: form does not match workflow role")

	// ErrStoreUnavailable возвращается, если логи не удалось прочитать при выборе слота
	ErrStoreUnavailable = errors.New("booking_workflow: store unavailable")
)
