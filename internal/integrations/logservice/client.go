package logservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

const (
	pathRequests  = "/log/requests"
	pathConfirmed = "/log/confirmed"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент удалённого сервиса лога бронирований
// GET возвращает весь лог JSON-массивом, POST дописывает одну запись
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AppendRequest отправляет заявку в удалённый лог
func (c *Client) AppendRequest(ctx context.Context, request *domain.BookingRequest) error {
	return c.post(ctx, pathRequests, request)
}

// ReadAllRequests читает весь удалённый лог заявок
func (c *Client) ReadAllRequests(ctx context.Context) ([]*domain.BookingRequest, error) {
	var requests []*domain.BookingRequest
	if err := c.get(ctx, pathRequests, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// AppendConfirmed отправляет подтверждение в удалённый лог
func (c *Client) AppendConfirmed(ctx context.Context, booking *domain.ConfirmedBooking) error {
	return c.post(ctx, pathConfirmed, booking)
}

// ReadAllConfirmed читает весь удалённый лог подтверждений
func (c *Client) ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error) {
	var bookings []*domain.ConfirmedBooking
	if err := c.get(ctx, pathConfirmed, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// Лог ещё не создан - это пустой лог
		c.log.Info("logservice: %s not found, treating as empty log", path)
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, record interface{}) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: failed to encode record: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrDuplicateConfirmed, path)
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("logservice: POST %s failed with status %d", path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
