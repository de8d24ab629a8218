package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

func TestStore_AppendOnly(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	date := domain.NewCalendarDate(2024, time.June, 10)

	requests, err := s.ReadAllRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)

	first := &domain.BookingRequest{Quest: "Danger Zone", Date: date, Slot: "13:30", RequesterName: "Анна"}
	require.NoError(t, s.AppendRequest(ctx, first))
	// идентичная повторная заявка сохраняется отдельной записью
	require.NoError(t, s.AppendRequest(ctx, first))

	requests, err = s.ReadAllRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	// снимок не связан с внутренним состоянием
	requests[0].RequesterName = "changed"
	again, err := s.ReadAllRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Анна", again[0].RequesterName)

	require.NoError(t, s.AppendConfirmed(ctx, &domain.ConfirmedBooking{Quest: "Danger Zone", Date: date, Slot: "13:30"}))
	confirmed, err := s.ReadAllConfirmed(ctx)
	require.NoError(t, err)
	assert.Len(t, confirmed, 1)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStore()

	assert.ErrorIs(t, s.AppendRequest(ctx, &domain.BookingRequest{}), context.Canceled)
	_, err := s.ReadAllConfirmed(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
