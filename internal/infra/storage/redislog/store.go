// Package redislog stores both booking logs as Redis lists of JSON records.
package redislog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// appendConfirmedScript атомарно занимает слот и дописывает запись в лог
// KEYS[1] - ключ-маркер слота, KEYS[2] - список подтверждений, ARGV[1] - запись
var appendConfirmedScript = redis.NewScript(`
if redis.call("SETNX", KEYS[1], "1") == 0 then
	return 0
end
redis.call("RPUSH", KEYS[2], ARGV[1])
return 1
`)

// Store лог заявок и подтверждений в Redis
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore создает хранилище и проверяет подключение
func NewStore(ctx context.Context, client *redis.Client, prefix string) (*Store, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: ping: %v", ErrCommand, err)
	}
	return &Store{client: client, prefix: prefix}, nil
}

func (s *Store) requestsKey() string {
	return s.prefix + "requests"
}

func (s *Store) confirmedKey() string {
	return s.prefix + "confirmed"
}

func (s *Store) slotKey(b *domain.ConfirmedBooking) string {
	return fmt.Sprintf("%sconfirmed:slot:%s|%s|%s", s.prefix, b.Quest, b.Date, b.Slot)
}

// AppendRequest добавляет заявку в конец списка
func (s *Store) AppendRequest(ctx context.Context, request *domain.BookingRequest) error {
	data, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := s.client.RPush(ctx, s.requestsKey(), data).Err(); err != nil {
		return fmt.Errorf("%w: RPUSH %s: %v", ErrCommand, s.requestsKey(), err)
	}
	return nil
}

// ReadAllRequests читает весь список заявок. Отсутствующий ключ - пустой лог
func (s *Store) ReadAllRequests(ctx context.Context) ([]*domain.BookingRequest, error) {
	raw, err := s.client.LRange(ctx, s.requestsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: LRANGE %s: %v", ErrCommand, s.requestsKey(), err)
	}
	return decodeAll[domain.BookingRequest](raw)
}

// AppendConfirmed добавляет подтверждение, если слот ещё не занят
func (s *Store) AppendConfirmed(ctx context.Context, booking *domain.ConfirmedBooking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	added, err := appendConfirmedScript.Run(ctx, s.client,
		[]string{s.slotKey(booking), s.confirmedKey()}, data).Int()
	if err != nil {
		return fmt.Errorf("%w: append confirmed: %v", ErrCommand, err)
	}
	if added == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateConfirmed, s.slotKey(booking))
	}
	return nil
}

// ReadAllConfirmed читает весь список подтверждений
func (s *Store) ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error) {
	raw, err := s.client.LRange(ctx, s.confirmedKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: LRANGE %s: %v", ErrCommand, s.confirmedKey(), err)
	}
	return decodeAll[domain.ConfirmedBooking](raw)
}

func decodeAll[T any](raw []string) ([]*T, error) {
	result := make([]*T, 0, len(raw))
	for i, item := range raw {
		var v T
		if err := json.Unmarshal([]byte(item), &v); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrDecode, i, err)
		}
		result = append(result, &v)
	}
	return result, nil
}
