package middleware

import (
	"context"
	"net/http"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers"
)

// HeaderOperatorSession заголовок с идентификатором сессии оператора
const HeaderOperatorSession = "X-Operator-Session"

const msgOperatorRequired = "требуется вход оператора"

type sessionKey struct{}

// SessionChecker проверяет, что сессия оператора жива
type SessionChecker interface {
	IsOperator(sessionID string) bool
}

// OperatorAuth пропускает только запросы с живой сессией оператора
func OperatorAuth(checker SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(HeaderOperatorSession)
			if sessionID == "" || !checker.IsOperator(sessionID) {
				handlers.RespondUnauthorized(w, msgOperatorRequired)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
		})
	}
}

// WithSessionID кладёт идентификатор сессии оператора в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// GetSessionID достаёт идентификатор сессии оператора из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}
