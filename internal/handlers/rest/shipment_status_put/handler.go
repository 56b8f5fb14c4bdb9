package shipment_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracking/internal/generated/dto"
	"tracking/internal/handlers/rest/converters"
	"tracking/internal/pkg/httpjson"
	"tracking/internal/service/status"
	"tracking/pkg/logger"
)

const messageUpdated = "Status updated successfully"

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
	trackingNumber := mux.Vars(r)["tracking_number"]

	var updateDTO dto.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, "No data provided")
		return
	}
	if updateDTO.Status == "" {
		h.writeError(w, http.StatusBadRequest, "Status is required")
		return
	}

	result, err := h.service.ApplyTransition(r.Context(), trackingNumber, converters.TransitionFromDTO(updateDTO))
	if err != nil {
		switch {
		case errors.Is(err, status.ErrInvalidStatus),
			errors.Is(err, status.ErrMissingLocation):
			if err := httpjson.FromError(w, http.StatusBadRequest, err); err != nil {
				h.log.With(logger.NewField("error", err)).Error("encode JSON response")
			}
		case errors.Is(err, status.ErrShipmentNotFound):
			h.writeError(w, http.StatusNotFound, "Shipment not found")
		default:
			h.log.With(
				logger.NewField("tracking_number", trackingNumber),
				logger.NewField("error", err),
			).Error("apply status transition")
			h.writeError(w, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	response := dto.StatusUpdateResponse{
		Success:         true,
		Message:         messageUpdated,
		Status:          result.Status.String(),
		CurrentLocation: result.CurrentLocation,
	}
	if err := httpjson.Write(w, http.StatusOK, response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, message string) {
	if err := httpjson.Error(w, code, message); err != nil {
		h.log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
