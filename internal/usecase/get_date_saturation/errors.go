package get_date_saturation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_date_saturation: invalid input data")

	// ErrStoreUnavailable возвращается, если логи не удалось прочитать
	ErrStoreUnavailable = errors.New("get_date_saturation: store unavailable")
)
