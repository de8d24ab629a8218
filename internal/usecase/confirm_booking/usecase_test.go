package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/infra/storage/memory"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/clock"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/logger"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/txmanager"
)

type fakeMetrics struct {
	confirmed int
	conflicts int
}

func (f *fakeMetrics) IncBookingConfirmed(string) { f.confirmed++ }
func (f *fakeMetrics) IncConfirmConflict()        { f.conflicts++ }

// uniqueLog хранилище, которое само отклоняет повторное подтверждение, но не видит его при чтении
type uniqueLog struct {
	appendErr error
	readErr   error
	appended  int
}

func (u *uniqueLog) ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error) {
	return nil, u.readErr
}

func (u *uniqueLog) AppendConfirmed(ctx context.Context, booking *domain.ConfirmedBooking) error {
	if u.appendErr != nil {
		return u.appendErr
	}
	u.appended++
	return nil
}

var now = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(log BookingLog, metrics *fakeMetrics) *UseCase {
	var m Metrics
	if metrics != nil {
		m = metrics
	}
	return NewUseCase(
		log,
		txmanager.NewLocal(),
		domain.NewQuestCatalog("Danger Zone"),
		clock.Fixed{At: now},
		m,
		logger.NewNop(),
	)
}

func validRequest() *Request {
	return &Request{
		Quest:                 "Danger Zone",
		Date:                  domain.NewCalendarDate(2024, time.June, 10),
		Slot:                  "13:30",
		ClientName:            "Иван Петров",
		TotalAmount:           "6000",
		Prepayment:            "1500.50",
		HasAdditionalServices: true,
	}
}

func TestExecute_Success(t *testing.T) {
	store := memory.NewStore()
	metrics := &fakeMetrics{}
	uc := newUseCase(store, metrics)

	booking, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.Money(600000), booking.TotalAmount)
	assert.Equal(t, domain.Money(150050), booking.Prepayment)
	assert.True(t, booking.HasAdditionalServices)
	assert.Equal(t, now, booking.CreatedAt)

	all, err := store.ReadAllConfirmed(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 1, metrics.confirmed)
}

// TestExecute_Validation проверяет, что некорректная форма не попадает в лог
func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "empty client name", mutate: func(r *Request) { r.ClientName = " " }, wantErr: ErrInvalidInput},
		{name: "missing total", mutate: func(r *Request) { r.TotalAmount = "" }, wantErr: ErrInvalidInput},
		{name: "missing prepayment", mutate: func(r *Request) { r.Prepayment = "" }, wantErr: ErrInvalidInput},
		{name: "non numeric total", mutate: func(r *Request) { r.TotalAmount = "шесть тысяч" }, wantErr: ErrInvalidInput},
		{name: "negative prepayment", mutate: func(r *Request) { r.Prepayment = "-100" }, wantErr: ErrInvalidInput},
		{name: "unknown quest", mutate: func(r *Request) { r.Quest = "Lost Temple" }, wantErr: ErrInvalidInput},
		{name: "slot outside catalog", mutate: func(r *Request) { r.Slot = "09:00" }, wantErr: ErrInvalidInput},
		{
			name:    "prepayment exceeds total",
			mutate:  func(r *Request) { r.TotalAmount = "1000"; r.Prepayment = "1000.01" },
			wantErr: ErrPrepaymentExceedsTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			uc := newUseCase(store, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)

			all, err := store.ReadAllConfirmed(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

// TestExecute_PrepaymentEqualTotal предоплата, равная сумме, допустима
func TestExecute_PrepaymentEqualTotal(t *testing.T) {
	uc := newUseCase(memory.NewStore(), nil)

	req := validRequest()
	req.Prepayment = "6000,00"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

// TestExecute_SecondConfirmationRejected проверяет, что второе подтверждение слота отклоняется
func TestExecute_SecondConfirmationRejected(t *testing.T) {
	store := memory.NewStore()
	metrics := &fakeMetrics{}
	uc := newUseCase(store, metrics)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.ClientName = "Мария"
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotAlreadyConfirmed)

	all, err := store.ReadAllConfirmed(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 1, metrics.conflicts)
}

// TestExecute_OtherSlotStillFree подтверждение одного слота не влияет на соседний
func TestExecute_OtherSlotStillFree(t *testing.T) {
	uc := newUseCase(memory.NewStore(), nil)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Slot = "15:00"
	_, err = uc.Execute(context.Background(), other)
	assert.NoError(t, err)
}

// TestExecute_StoreBackstop проверяет, что отказ хранилища по уникальности считается конфликтом
func TestExecute_StoreBackstop(t *testing.T) {
	log := &uniqueLog{appendErr: fmt.Errorf("%w: unique index", domain.ErrDuplicateConfirmed)}
	uc := newUseCase(log, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyConfirmed)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	t.Run("read fails", func(t *testing.T) {
		log := &uniqueLog{readErr: errors.New("timeout")}
		uc := newUseCase(log, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.Zero(t, log.appended)
	})

	t.Run("append fails", func(t *testing.T) {
		log := &uniqueLog{appendErr: errors.New("disk full")}
		uc := newUseCase(log, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}
