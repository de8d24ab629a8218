package redislog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

func TestDecodeAll(t *testing.T) {
	raw := []string{
		`{"quest":"Danger Zone","date":"2024-06-10","slot":"13:30","clientName":"Иван","totalAmount":600000,"prepayment":0}`,
	}

	bookings, err := decodeAll[domain.ConfirmedBooking](raw)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.NewCalendarDate(2024, time.June, 10), bookings[0].Date)
	assert.Equal(t, domain.Money(600000), bookings[0].TotalAmount)

	_, err = decodeAll[domain.ConfirmedBooking]([]string{"not json"})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestStore_SlotKey(t *testing.T) {
	s := &Store{prefix: "quests:"}
	b := &domain.ConfirmedBooking{Quest: "Danger Zone", Date: domain.NewCalendarDate(2024, time.June, 10), Slot: "13:30"}

	assert.Equal(t, "quests:confirmed:slot:Danger Zone|2024-06-10|13:30", s.slotKey(b))
	assert.Equal(t, "quests:requests", s.requestsKey())
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewStore(context.Background(), client, "quests:")
	require.NoError(t, err)
	return store, mr
}

func TestStore_EmptyLogs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	requests, err := store.ReadAllRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)

	confirmed, err := store.ReadAllConfirmed(ctx)
	require.NoError(t, err)
	assert.Empty(t, confirmed)
}

func TestStore_RequestsKeepAppendOrder(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	date := domain.NewCalendarDate(2024, time.June, 10)
	createdAt := time.Date(2024, time.June, 9, 12, 0, 0, 0, time.UTC)

	for _, name := range []string{"Анна", "Борис", "Вера"} {
		require.NoError(t, store.AppendRequest(ctx, &domain.BookingRequest{
			Quest: "Danger Zone", Date: date, Slot: "13:30",
			RequesterName: name, RequesterPhone: "+7 900 000-00-00", CreatedAt: createdAt,
		}))
	}

	requests, err := store.ReadAllRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "Анна", requests[0].RequesterName)
	assert.Equal(t, "Борис", requests[1].RequesterName)
	assert.Equal(t, "Вера", requests[2].RequesterName)
	assert.Equal(t, date, requests[0].Date)
	assert.True(t, createdAt.Equal(requests[0].CreatedAt))

	stored, err := mr.List("quests:requests")
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestStore_AppendConfirmed_DuplicateSlot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	booking := &domain.ConfirmedBooking{
		Quest:       "Danger Zone",
		Date:        domain.NewCalendarDate(2024, time.June, 10),
		Slot:        "18:00",
		ClientName:  "Иван",
		TotalAmount: domain.Money(600000),
		Prepayment:  domain.Money(100000),
	}

	require.NoError(t, store.AppendConfirmed(ctx, booking))

	second := *booking
	second.ClientName = "Пётр"
	err := store.AppendConfirmed(ctx, &second)
	assert.ErrorIs(t, err, domain.ErrDuplicateConfirmed)

	other := *booking
	other.Slot = "19:30"
	require.NoError(t, store.AppendConfirmed(ctx, &other))

	confirmed, err := store.ReadAllConfirmed(ctx)
	require.NoError(t, err)
	require.Len(t, confirmed, 2)
	assert.Equal(t, "Иван", confirmed[0].ClientName)
	assert.Equal(t, domain.Money(500000), confirmed[0].Outstanding())
	assert.Equal(t, "19:30", confirmed[1].Slot.String())
}

func TestStore_CorruptRecord(t *testing.T) {
	store, mr := newTestStore(t)

	_, err := mr.RPush("quests:requests", "not json")
	require.NoError(t, err)

	_, err = store.ReadAllRequests(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestStore_ServerUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewStore(context.Background(), client, "quests:")
	require.NoError(t, err)

	mr.Close()

	_, err = store.ReadAllRequests(context.Background())
	assert.ErrorIs(t, err, ErrCommand)

	_, err = NewStore(context.Background(), client, "quests:")
	assert.ErrorIs(t, err, ErrCommand)
}
