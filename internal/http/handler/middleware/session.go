package middleware

import (
	"context"
	"feedback/internal/core"
	"net/http"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionResolver . SessionResolver
type SessionResolver interface {
	Current(ctx context.Context, token string) (core.Identity, error)
}

type SessionMiddleware struct {
	logs       *zap.SugaredLogger
	sessions   SessionResolver
	cookieName string
}

func NewSessionMiddleware(logger *zap.SugaredLogger, sessions SessionResolver, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		logs:       logger,
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// Session resolves the session cookie into an identity on the request context.
// A request whose session cannot be resolved proceeds anonymously.
func (m *SessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		who, err := m.sessions.Current(r.Context(), cookie.Value)
		if err != nil {
			m.logs.Errorw("failed to resolve session",
				"error", err,
				"request_id", RequestIDFrom(r.Context()))
			who = core.Identity{}
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), who)))
	})
}
