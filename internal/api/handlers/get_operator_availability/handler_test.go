package get_operator_availability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/middleware"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/availability"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/operator"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/clock"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/logger"
)

var now = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

type fakeViews struct {
	view *operator.View
	err  error
}

func (f *fakeViews) View(sessionID string) (*operator.View, error) {
	return f.view, f.err
}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/operator/availability?"+query, nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s-1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func newHandler(views SessionViews) *Handler {
	return NewHandler(views, domain.NewQuestCatalog("Danger Zone"), clock.Fixed{At: now}, logger.NewNop())
}

func TestHandle(t *testing.T) {
	date := domain.NewCalendarDate(2024, time.June, 10)
	idx := availability.Build(
		[]*domain.BookingRequest{
			{Quest: "Danger Zone", Date: date, Slot: "13:30"},
			{Quest: "Danger Zone", Date: date, Slot: "13:30"},
		},
		[]*domain.ConfirmedBooking{
			{Quest: "Danger Zone", Date: date, Slot: "18:00"},
		},
		now,
	)
	h := newHandler(&fakeViews{view: &operator.View{Index: idx, RefreshedAt: now}})

	rec := get(h, "quest=Danger+Zone&date=2024-06-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OperatorAvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Slots, domain.SlotCount())
	assert.Equal(t, 2, resp.Saturation.OccupiedCount)
	assert.Equal(t, 2, resp.Requests)
	assert.Equal(t, 1, resp.Bookings)

	states := make(map[string]string)
	for _, s := range resp.Slots {
		states[s.Slot] = s.Status
	}
	assert.Equal(t, string(domain.OccupancyRequested), states["13:30"])
	assert.Equal(t, string(domain.OccupancyConfirmed), states["18:00"])
	assert.Equal(t, string(domain.OccupancyFree), states["12:00"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		views      *fakeViews
		query      string
		wantStatus int
	}{
		{name: "missing date", views: &fakeViews{}, query: "quest=Danger+Zone", wantStatus: http.StatusBadRequest},
		{name: "unknown quest", views: &fakeViews{}, query: "quest=Other&date=2024-06-10", wantStatus: http.StatusBadRequest},
		{name: "view not ready", views: &fakeViews{err: operator.ErrViewNotReady}, query: "quest=Danger+Zone&date=2024-06-10", wantStatus: http.StatusServiceUnavailable},
		{name: "session expired", views: &fakeViews{err: operator.ErrSessionNotFound}, query: "quest=Danger+Zone&date=2024-06-10", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, get(newHandler(tt.views), tt.query).Code)
		})
	}
}
