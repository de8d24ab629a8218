package operator

import "errors"

var (
	// ErrLoginDisabled возвращается, если хэш пароля оператора не настроен
	ErrLoginDisabled = errors.New("operator: login disabled")

	// ErrInvalidCredentials возвращается при неверном пароле
	ErrInvalidCredentials = errors.New("operator: invalid credentials")

	// ErrSessionNotFound возвращается для неизвестной или истёкшей сессии
	ErrSessionNotFound = errors.New("operator: session not found")

	// ErrViewNotReady возвращается, пока цикл сессии не построил первый индекс
	ErrViewNotReady = errors.New("operator: availability view not ready")

	// ErrManagerClosed возвращается при входе после остановки менеджера сессий
	ErrManagerClosed = errors.New("operator: session manager is shut down")
)
