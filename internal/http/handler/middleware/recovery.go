package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

type RecoveryMiddleware struct {
	logs     *zap.SugaredLogger
	fallback http.Handler
}

// NewRecoveryMiddleware returns a middleware that serves fallback after a
// handler panics. fallback must write a 500 response.
func NewRecoveryMiddleware(logger *zap.SugaredLogger, fallback http.Handler) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logs:     logger,
		fallback: fallback,
	}
}

func (m *RecoveryMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rcv := recover()
			if rcv == nil {
				return
			}
			if rcv == http.ErrAbortHandler {
				panic(rcv)
			}

			m.logs.Errorw("handler panicked",
				"panic", rcv,
				"stack", string(debug.Stack()),
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()))

			m.fallback.ServeHTTP(w, r)
		}()

		next.ServeHTTP(w, r)
	})
}
