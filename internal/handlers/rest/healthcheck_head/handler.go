package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"tracking/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	db             Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, db Pinger) *Handler {
	return &Handler{
		log:            log,
		isShuttingDown: isShuttingDown,
		db:             db,
	}
}

// ServeHTTP отвечает 503, пока сервис останавливается или база недоступна.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("healthcheck: database unreachable", logger.NewField("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
