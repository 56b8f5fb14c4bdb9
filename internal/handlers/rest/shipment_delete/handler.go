package shipment_delete

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"tracking/internal/generated/dto"
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

// ServeHTTP удаляет отправление вместе со всей историей статусов.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	deleted, err := h.service.DeleteShipment(r.Context(), identifier)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			err = httpjson.Error(w, http.StatusNotFound, "Shipment not found")
		default:
			h.log.With(
				logger.NewField("identifier", identifier),
				logger.NewField("error", err),
			).Error("delete shipment")
			err = httpjson.Error(w, http.StatusInternalServerError, "Failed to delete shipment")
		}
		if err != nil {
			h.log.With(logger.NewField("error", err)).Error("encode JSON response")
		}
		return
	}

	h.log.With(
		logger.NewField("tracking_number", deleted.TrackingNumber),
		logger.NewField("id", deleted.ID),
	).Info("shipment deleted")

	response := dto.ShipmentDeleteResponse{
		Success: true,
		Message: fmt.Sprintf("Shipment %s deleted successfully", deleted.TrackingNumber),
	}
	if err := httpjson.Write(w, http.StatusOK, response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
