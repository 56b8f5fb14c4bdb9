package shipment_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracking/internal/handlers/rest/converters"
	"tracking/internal/pkg/httpjson"
	"tracking/internal/service/shipment"
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

// ServeHTTP ищет отправление по трек-номеру или по id.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	found, err := h.service.GetShipment(r.Context(), identifier)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			err = httpjson.Error(w, http.StatusNotFound, "Shipment not found")
		default:
			h.log.With(logger.NewField("error", err)).Error("get shipment")
			err = httpjson.Error(w, http.StatusInternalServerError, "Failed to fetch shipment")
		}
		if err != nil {
			h.log.With(logger.NewField("error", err)).Error("encode JSON response")
		}
		return
	}

	if err := httpjson.Write(w, http.StatusOK, converters.ShipmentToDTO(found)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
