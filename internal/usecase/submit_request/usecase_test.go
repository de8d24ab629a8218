package submit_request

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/clock"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/logger"
)

type fakeRequestLog struct {
	appended []*domain.BookingRequest
	err      error
}

func (f *fakeRequestLog) AppendRequest(ctx context.Context, request *domain.BookingRequest) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, request)
	return nil
}

type fakeMetrics struct {
	submitted map[string]int
}

func (f *fakeMetrics) IncRequestSubmitted(quest string) {
	if f.submitted == nil {
		f.submitted = make(map[string]int)
	}
	f.submitted[quest]++
}

var now = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(log *fakeRequestLog, metrics *fakeMetrics) *UseCase {
	var m Metrics
	if metrics != nil {
		m = metrics
	}
	return NewUseCase(log, domain.NewQuestCatalog("Danger Zone"), clock.Fixed{At: now}, m, logger.NewNop())
}

func validRequest() *Request {
	return &Request{
		Quest:          "Danger Zone",
		Date:           domain.NewCalendarDate(2024, time.June, 10),
		Slot:           "13:30",
		RequesterName:  "Анна",
		RequesterPhone: "+7 (900) 123-45-67",
	}
}

// TestExecute_Success проверяет запись ровно одной заявки с явной датой
func TestExecute_Success(t *testing.T) {
	log := &fakeRequestLog{}
	metrics := &fakeMetrics{}
	uc := newUseCase(log, metrics)

	req := validRequest()
	req.RequesterName = "  Анна  "

	got, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, log.appended, 1)

	assert.Equal(t, "Анна", got.RequesterName)
	assert.Equal(t, domain.NewCalendarDate(2024, time.June, 10), got.Date)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, 1, metrics.submitted["Danger Zone"])
}

// TestExecute_Validation проверяет, что некорректная заявка не попадает в лог
func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.RequesterName = "" }},
		{name: "blank name", mutate: func(r *Request) { r.RequesterName = "   " }},
		{name: "too long name", mutate: func(r *Request) { r.RequesterName = strings.Repeat("я", domain.MaxNameLength+1) }},
		{name: "empty phone", mutate: func(r *Request) { r.RequesterPhone = "" }},
		{name: "unknown quest", mutate: func(r *Request) { r.Quest = "Lost Temple" }},
		{name: "missing date", mutate: func(r *Request) { r.Date = domain.CalendarDate{} }},
		{name: "slot outside catalog", mutate: func(r *Request) { r.Slot = "14:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &fakeRequestLog{}
			uc := newUseCase(log, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, log.appended)
		})
	}
}

// TestExecute_PhoneFormatIsAdvisory проверяет, что необычный формат телефона принимается
func TestExecute_PhoneFormatIsAdvisory(t *testing.T) {
	log := &fakeRequestLog{}
	uc := newUseCase(log, nil)

	req := validRequest()
	req.RequesterPhone = "позвоните в телеграм"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, log.appended, 1)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	log := &fakeRequestLog{err: errors.New("connection refused")}
	uc := newUseCase(log, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

// TestExecute_DuplicatesAccepted проверяет, что повторные заявки на слот принимаются
func TestExecute_DuplicatesAccepted(t *testing.T) {
	log := &fakeRequestLog{}
	uc := newUseCase(log, nil)

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	}
	assert.Len(t, log.appended, 3)
}
