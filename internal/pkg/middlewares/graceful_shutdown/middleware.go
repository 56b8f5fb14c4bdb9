package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"tracking/internal/pkg/httpjson"
)

// Middleware отклоняет новые запросы, когда ongoingCtx отменён и сервис
// помечен как останавливающийся. Проверки здоровья проходят всегда, чтобы
// балансировщик увидел 503 от самого healthcheck.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context, passThrough ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(passThrough))
	for _, path := range passThrough {
		skip[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; !ok && draining(isShuttingDown, ongoingCtx) {
				w.Header().Set("Connection", "close")
				_ = httpjson.Error(w, http.StatusServiceUnavailable, "Service is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func draining(isShuttingDown *atomic.Bool, ongoingCtx context.Context) bool {
	select {
	case <-ongoingCtx.Done():
		return isShuttingDown.Load()
	default:
		return false
	}
}
