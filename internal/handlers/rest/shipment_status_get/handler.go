package shipment_status_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracking/internal/handlers/rest/converters"
	"tracking/internal/pkg/httpjson"
	"tracking/internal/service/status"
	"tracking/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдаёт историю статусов от старых записей к новым.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["tracking_number"]

	history, err := h.service.GetHistory(r.Context(), trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, status.ErrShipmentNotFound):
			err = httpjson.Error(w, http.StatusNotFound, "Shipment not found")
		default:
			h.log.With(
				logger.NewField("tracking_number", trackingNumber),
				logger.NewField("error", err),
			).Error("get status history")
			err = httpjson.Error(w, http.StatusInternalServerError, "Failed to fetch status history")
		}
		if err != nil {
			h.log.With(logger.NewField("error", err)).Error("encode JSON response")
		}
		return
	}

	if err := httpjson.Write(w, http.StatusOK, converters.HistoryToDTO(history)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
