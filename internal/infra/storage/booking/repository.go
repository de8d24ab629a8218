package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/psqlbuilder"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/txmanager"
)

const (
	tableRequests  = "booking_requests"
	tableConfirmed = "confirmed_bookings"

	// pgUniqueViolation код ошибки Postgres для нарушения уникального индекса
	pgUniqueViolation = "23505"
)

// Repository Postgres-хранилище логов заявок и подтверждённых бронирований
// Обе таблицы только дополняются: UPDATE и DELETE не используются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// AppendRequest добавляет заявку посетителя
// Если в контексте передана активная транзакция, использует её
func (r *Repository) AppendRequest(ctx context.Context, request *domain.BookingRequest) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableRequests).
		Columns(
			"quest",
			"booking_date",
			"slot",
			"requester_name",
			"requester_phone",
			"created_at",
		).
		Values(
			request.Quest,
			request.Date,
			request.Slot,
			request.RequesterName,
			request.RequesterPhone,
			request.CreatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AppendRequest - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AppendRequest - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReadAllRequests читает весь лог заявок в порядке добавления
func (r *Repository) ReadAllRequests(ctx context.Context) ([]*domain.BookingRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"quest",
		"booking_date",
		"slot",
		"requester_name",
		"requester_phone",
		"created_at",
	).
		From(tableRequests).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReadAllRequests - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAllRequests - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.BookingRequest, 0)
	for rows.Next() {
		var req domain.BookingRequest
		var quest string
		if err := rows.Scan(
			&quest,
			&req.Date,
			&req.Slot,
			&req.RequesterName,
			&req.RequesterPhone,
			&req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ReadAllRequests - scan row: %v", ErrScanRow, err)
		}
		req.Quest = domain.QuestID(quest)
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReadAllRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// AppendConfirmed добавляет подтверждённое бронирование
// Уникальный индекс (quest, booking_date, slot) - последняя линия защиты от двойного подтверждения
func (r *Repository) AppendConfirmed(ctx context.Context, booking *domain.ConfirmedBooking) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableConfirmed).
		Columns(
			"quest",
			"booking_date",
			"slot",
			"client_name",
			"total_amount",
			"prepayment",
			"has_additional_services",
			"created_at",
		).
		Values(
			booking.Quest,
			booking.Date,
			booking.Slot,
			booking.ClientName,
			int64(booking.TotalAmount),
			int64(booking.Prepayment),
			booking.HasAdditionalServices,
			booking.CreatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AppendConfirmed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateConfirmed, "unique index uq_confirmed_bookings_slot")
		}
		return fmt.Errorf("%w: AppendConfirmed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReadAllConfirmed читает весь лог подтверждённых бронирований в порядке добавления
func (r *Repository) ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"quest",
		"booking_date",
		"slot",
		"client_name",
		"total_amount",
		"prepayment",
		"has_additional_services",
		"created_at",
	).
		From(tableConfirmed).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReadAllConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAllConfirmed - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanConfirmed(rows)
}

// scanConfirmed сканирует результаты запроса в слайс бронирований
func (r *Repository) scanConfirmed(rows *sql.Rows) ([]*domain.ConfirmedBooking, error) {
	bookings := make([]*domain.ConfirmedBooking, 0)

	for rows.Next() {
		var b domain.ConfirmedBooking
		var quest string
		var total, prepayment int64

		if err := rows.Scan(
			&quest,
			&b.Date,
			&b.Slot,
			&b.ClientName,
			&total,
			&prepayment,
			&b.HasAdditionalServices,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanConfirmed - scan row: %v", ErrScanRow, err)
		}

		b.Quest = domain.QuestID(quest)
		b.TotalAmount = domain.Money(total)
		b.Prepayment = domain.Money(prepayment)
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanConfirmed - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
