package correction

import (
	"errors"

	"tracking/internal/service/shipment"
)

var (
	ErrShipmentNotFound = shipment.ErrShipmentNotFound

	ErrEntryNotFound   = errors.New("status log entry not found")
	ErrInvalidCriteria = errors.New("match criteria needs a timestamp or a location substring")
	ErrMissingLocation = errors.New("replacement location is required")
	ErrEmptySubstring  = errors.New("note substring must not be empty")
	ErrUnparseableDate = errors.New("unrecognised date format")
)
