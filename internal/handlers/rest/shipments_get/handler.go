package shipments_get

import (
	"net/http"

	"tracking/internal/handlers/rest/converters"
	"tracking/internal/pkg/httpjson"
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
	shipments, err := h.service.GetShipments(r.Context())
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("get shipments")
		if err := httpjson.Error(w, http.StatusInternalServerError, "Failed to fetch shipments"); err != nil {
			h.log.With(logger.NewField("error", err)).Error("encode JSON response")
		}
		return
	}

	if err := httpjson.Write(w, http.StatusOK, converters.ShipmentsToDTO(shipments)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
