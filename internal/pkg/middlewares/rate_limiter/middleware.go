package rate_limiter

import (
	"net/http"
	"strconv"

	"tracking/internal/pkg/httpjson"
	"tracking/internal/pkg/middlewares/metrics"
	"tracking/pkg/logger"
)

// Middleware отвечает 429, когда limiter не выдал токен. qps попадает
// в заголовок X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(qps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			metrics.HTTPRateLimitedTotal.WithLabelValues(r.Method, route).Inc()
			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("Retry-After", "1")
			if err := httpjson.Error(w, http.StatusTooManyRequests, "Rate limit exceeded. Try again later."); err != nil {
				log.Error("failed to write rate limit response",
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				)
			}
		})
	}
}
