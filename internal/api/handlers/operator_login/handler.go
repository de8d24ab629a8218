package operator_login

import (
	"errors"
	"net/http"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/middleware"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/operator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный пароль"
	msgLoginDisabled      = "вход оператора не настроен"
	msgShuttingDown       = "сервис останавливается"
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

// Handle POST /api/v1/operator/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /operator/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sessionID, err := h.sessions.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, operator.ErrInvalidCredentials):
			h.logger.Warn("POST /operator/sessions - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, operator.ErrLoginDisabled):
			h.logger.Warn("POST /operator/sessions - Login disabled")
			handlers.RespondForbidden(w, msgLoginDisabled)

		case errors.Is(err, operator.ErrManagerClosed):
			h.logger.Warn("POST /operator/sessions - Session manager is shut down")
			handlers.RespondServiceUnavailable(w, msgShuttingDown)

		default:
			h.logger.Error("POST /operator/sessions - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, &LoginResponse{
		SessionID: sessionID,
		Header:    middleware.HeaderOperatorSession,
	})
}
