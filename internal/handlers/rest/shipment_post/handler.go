package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracking/internal/generated/dto"
	"tracking/internal/handlers/rest/converters"
	"tracking/internal/pkg/auth"
	"tracking/internal/pkg/httpjson"
	"tracking/internal/service/shipment"
	"tracking/pkg/logger"
)

const messageRegistered = "Shipment registered successfully!"

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
	var createDTO dto.ShipmentCreate
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	registration := converters.RegistrationFromDTO(createDTO)
	// Токен необязателен, но если он есть, отправление запоминает автора.
	if principal, ok := auth.PrincipalFromContext(r.Context()); ok {
		registration.CreatedBy = &principal.Subject
		registration.CreatedByEmail = &principal.Email
	}

	created, err := h.service.CreateShipment(r.Context(), registration)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidField),
			errors.Is(err, shipment.ErrInvalidDeliveryDate):
			h.writeErrorFrom(w, http.StatusBadRequest, err)
		case errors.Is(err, shipment.ErrDuplicateTrackingNumber):
			h.writeErrorFrom(w, http.StatusConflict, err)
		default:
			h.log.With(logger.NewField("error", err)).Error("create shipment")
			h.writeError(w, http.StatusInternalServerError, "Failed to create shipment")
		}
		return
	}

	response := dto.ShipmentCreateResponse{
		Success:        true,
		Message:        messageRegistered,
		Id:             created.ID,
		TrackingNumber: created.TrackingNumber,
	}
	if err := httpjson.Write(w, http.StatusCreated, response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	if err := httpjson.Error(w, status, message); err != nil {
		h.log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}

func (h *Handler) writeErrorFrom(w http.ResponseWriter, status int, cause error) {
	if err := httpjson.FromError(w, status, cause); err != nil {
		h.log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
