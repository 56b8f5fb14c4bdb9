package archive

import (
	"errors"

	"tracking/internal/service/shipment"
)

var (
	ErrShipmentNotFound = shipment.ErrShipmentNotFound

	ErrInvalidSnapshot = errors.New("invalid ledger snapshot")
)
