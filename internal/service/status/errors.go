package status

import (
	"errors"

	"tracking/internal/service/shipment"
)

var (
	ErrShipmentNotFound = shipment.ErrShipmentNotFound

	ErrInvalidStatus   = errors.New("invalid status")
	ErrMissingLocation = errors.New("location is required")
	ErrPersistence     = errors.New("status change was not persisted")
)
