package list_requests

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_requests: invalid input data")

	// ErrStoreUnavailable возвращается, если логи не удалось прочитать
	ErrStoreUnavailable = errors.New("list_requests: store unavailable")
)
