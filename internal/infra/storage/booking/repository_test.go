package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/txmanager"
)

var createdAt = time.Date(2024, time.June, 9, 12, 0, 0, 0, time.UTC)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: pgUniqueViolation}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "40001"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
}

func TestRepository_AppendRequest(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`INSERT INTO booking_requests \(quest,booking_date,slot,requester_name,requester_phone,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
		WithArgs("Danger Zone", "2024-06-10", "13:30", "Анна", "+7 900 000-00-00", createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AppendRequest(context.Background(), &domain.BookingRequest{
		Quest:          "Danger Zone",
		Date:           domain.NewCalendarDate(2024, time.June, 10),
		Slot:           "13:30",
		RequesterName:  "Анна",
		RequesterPhone: "+7 900 000-00-00",
		CreatedAt:      createdAt,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AppendRequest_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`INSERT INTO booking_requests`).WillReturnError(errors.New("connection reset"))

	err := repo.AppendRequest(context.Background(), &domain.BookingRequest{Quest: "Danger Zone", CreatedAt: createdAt})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReadAllRequests(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"quest", "booking_date", "slot", "requester_name", "requester_phone", "created_at"}).
		AddRow("Danger Zone", time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), "13:30:00", "Анна", "1", createdAt).
		AddRow("Danger Zone", time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), "13:30:00", "Борис", "2", createdAt.Add(time.Minute))
	mock.ExpectQuery(`SELECT .+ FROM booking_requests ORDER BY id ASC`).WillReturnRows(rows)

	requests, err := repo.ReadAllRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Equal(t, domain.QuestID("Danger Zone"), requests[0].Quest)
	assert.Equal(t, domain.NewCalendarDate(2024, time.June, 10), requests[0].Date)
	assert.Equal(t, "13:30", requests[0].Slot.String())
	assert.Equal(t, "Анна", requests[0].RequesterName)
	assert.Equal(t, "Борис", requests[1].RequesterName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReadAllRequests_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`FROM booking_requests`).
		WillReturnRows(sqlmock.NewRows([]string{"quest", "booking_date", "slot", "requester_name", "requester_phone", "created_at"}))

	requests, err := repo.ReadAllRequests(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, requests)
	assert.Empty(t, requests)
}

func TestRepository_ReadAllRequests_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`FROM booking_requests`).WillReturnError(errors.New("relation does not exist"))

	_, err := repo.ReadAllRequests(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_AppendConfirmed(t *testing.T) {
	booking := &domain.ConfirmedBooking{
		Quest:                 "Danger Zone",
		Date:                  domain.NewCalendarDate(2024, time.June, 10),
		Slot:                  "18:00",
		ClientName:            "Иван",
		TotalAmount:           domain.Money(600000),
		Prepayment:            domain.Money(100000),
		HasAdditionalServices: true,
		CreatedAt:             createdAt,
	}

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "inserted"},
		{name: "slot already confirmed", execErr: &pq.Error{Code: pgUniqueViolation}, wantErr: domain.ErrDuplicateConfirmed},
		{name: "other failure", execErr: &pq.Error{Code: "08006"}, wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			exec := mock.ExpectExec(`INSERT INTO confirmed_bookings`).
				WithArgs("Danger Zone", "2024-06-10", "18:00", "Иван", int64(600000), int64(100000), true, createdAt)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := repo.AppendConfirmed(context.Background(), booking)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ReadAllConfirmed(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"quest", "booking_date", "slot", "client_name", "total_amount", "prepayment", "has_additional_services", "created_at"}).
		AddRow("Danger Zone", time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), "18:00:00", "Иван", int64(600000), int64(100000), false, createdAt)
	mock.ExpectQuery(`SELECT .+ FROM confirmed_bookings ORDER BY id ASC`).WillReturnRows(rows)

	bookings, err := repo.ReadAllConfirmed(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "18:00", bookings[0].Slot.String())
	assert.Equal(t, domain.Money(600000), bookings[0].TotalAmount)
	assert.Equal(t, domain.Money(500000), bookings[0].Outstanding())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReadAllConfirmed_ScanError(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"quest", "booking_date", "slot", "client_name", "total_amount", "prepayment", "has_additional_services", "created_at"}).
		AddRow("Danger Zone", "not a date", "18:00:00", "Иван", int64(1), int64(0), false, createdAt)
	mock.ExpectQuery(`FROM confirmed_bookings`).WillReturnRows(rows)

	_, err := repo.ReadAllConfirmed(context.Background())
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestRepository_AppendConfirmed_InTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db)
	tm := txmanager.NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO confirmed_bookings`).WillReturnError(&pq.Error{Code: pgUniqueViolation})
	mock.ExpectRollback()

	err = tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return repo.AppendConfirmed(ctx, &domain.ConfirmedBooking{
			Quest: "Danger Zone", Date: domain.NewCalendarDate(2024, time.June, 10), Slot: "18:00", CreatedAt: createdAt,
		})
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateConfirmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
