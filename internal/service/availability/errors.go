package availability

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда лог не удалось прочитать
	ErrStoreUnavailable = errors.New("availability: store unavailable")
)
