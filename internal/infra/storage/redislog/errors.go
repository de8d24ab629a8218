package redislog

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("redislog: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("redislog: failed to decode record")

	// ErrCommand возвращается при ошибке выполнения команды Redis
	ErrCommand = errors.New("redislog: command failed")
)
