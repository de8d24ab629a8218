package submit_request

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующих или некорректных полях заявки
	ErrInvalidInput = errors.New("submit_request: invalid input data")

	// ErrStoreUnavailable возвращается, если заявку не удалось записать в лог
	ErrStoreUnavailable = errors.New("submit_request: store unavailable")
)
