package middleware

import (
	"context"
	"net/http"

	"github.com/shoplite/shoplite-backend/internal/cache"
	"github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/utils/response"
)

type sessionContextKey string

const SessionContextKey = sessionContextKey("session")

const SessionHeader = "X-Session-ID"

type SessionMiddleware struct {
	sessions cache.SessionStore
}

func NewSessionMiddleware(sessions cache.SessionStore) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Resolve loads the customer's session from the cache and puts it on the
// request context. Requests without a known session are rejected.
func (m *SessionMiddleware) Resolve(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		sessionID := r.Header.Get(SessionHeader)

		if sessionID == "" {
			logger.Warn("Missing session header")
			response.Error(w, errors.UnauthorizedError("Session ID is required"))
			return
		}

		session, err := m.sessions.LoadSession(r.Context(), sessionID)
		if err != nil {
			response.Error(w, errors.ConnectionFailedError("Could not reach the session cache").WithError(err))
			return
		}

		if session == nil {
			logger.Warn("Unknown session")
			response.Error(w, errors.UnauthorizedError("Session not found"))
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))

	}
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(*models.Session)

	return session, ok
}
