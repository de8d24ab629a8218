package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrMonthElapsed возвращается при запросе месяца, который уже полностью прошёл
	ErrMonthElapsed = errors.New("get_calendar: month has already elapsed")

	// ErrStoreUnavailable возвращается, если логи не удалось прочитать
	ErrStoreUnavailable = errors.New("get_calendar: store unavailable")
)
