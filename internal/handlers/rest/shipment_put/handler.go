package shipment_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracking/internal/generated/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	var updateDTO dto.ShipmentUpdate
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		h.logEncodeError(httpjson.Error(w, http.StatusBadRequest, "No data provided"))
		return
	}

	updated, err := h.service.UpdateShipmentFields(r.Context(), identifier, converters.FieldsUpdateFromDTO(updateDTO))
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrNoFieldsToUpdate),
			errors.Is(err, shipment.ErrInvalidField),
			errors.Is(err, shipment.ErrInvalidDeliveryDate):
			h.logEncodeError(httpjson.FromError(w, http.StatusBadRequest, err))
		case errors.Is(err, shipment.ErrShipmentNotFound):
			h.logEncodeError(httpjson.Error(w, http.StatusNotFound, "Shipment not found"))
		default:
			h.log.With(
				logger.NewField("identifier", identifier),
				logger.NewField("error", err),
			).Error("update shipment")
			h.logEncodeError(httpjson.Error(w, http.StatusInternalServerError, "Failed to update shipment"))
		}
		return
	}

	if err := httpjson.Write(w, http.StatusOK, converters.ShipmentToDTO(updated)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) logEncodeError(err error) {
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
