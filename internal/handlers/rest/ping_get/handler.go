package ping_get

import (
	"net/http"

	"tracking/internal/generated/dto"
	"tracking/internal/pkg/httpjson"
	"tracking/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message: &message,
	}

	if err := httpjson.Write(w, http.StatusOK, res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
