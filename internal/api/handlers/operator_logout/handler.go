package operator_logout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/middleware"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/operator"
)

const (
	msgForeignSession  = "можно завершить только собственную сессию"
	msgSessionNotFound = "сессия не найдена"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/operator/sessions/{sessionId}
// Останавливает цикл обновления сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	current, ok := middleware.GetSessionID(r.Context())
	if !ok || current != sessionID {
		h.logger.Warn("DELETE /operator/sessions/{sessionId} - Foreign session")
		handlers.RespondForbidden(w, msgForeignSession)
		return
	}

	if err := h.sessions.Logout(sessionID); err != nil {
		if errors.Is(err, operator.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /operator/sessions/{sessionId} - Failed to logout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
