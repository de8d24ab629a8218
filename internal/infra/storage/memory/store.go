// Package memory keeps both booking logs in process memory.
// Used for development and tests; the log is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// Store in-memory append-only лог заявок и подтверждённых бронирований
type Store struct {
	mu        sync.RWMutex
	requests  []domain.BookingRequest
	confirmed []domain.ConfirmedBooking
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{}
}

// AppendRequest добавляет заявку в конец лога
func (s *Store) AppendRequest(ctx context.Context, request *domain.BookingRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, *request)
	return nil
}

// ReadAllRequests возвращает копию всего лога заявок в порядке добавления
func (s *Store) ReadAllRequests(ctx context.Context) ([]*domain.BookingRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.BookingRequest, len(s.requests))
	for i := range s.requests {
		r := s.requests[i]
		result[i] = &r
	}
	return result, nil
}

// AppendConfirmed добавляет подтверждённое бронирование в конец лога
func (s *Store) AppendConfirmed(ctx context.Context, booking *domain.ConfirmedBooking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmed = append(s.confirmed, *booking)
	return nil
}

// ReadAllConfirmed возвращает копию всего лога подтверждённых бронирований
func (s *Store) ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.ConfirmedBooking, len(s.confirmed))
	for i := range s.confirmed {
		b := s.confirmed[i]
		result[i] = &b
	}
	return result, nil
}
