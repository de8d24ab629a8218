package get_slot_states

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slot_states: invalid input data")

	// ErrStoreUnavailable возвращается, если логи не удалось прочитать
	ErrStoreUnavailable = errors.New("get_slot_states: store unavailable")
)
