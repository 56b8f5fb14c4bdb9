package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidField          = errors.New("invalid field value")
	ErrInvalidDeliveryDate   = errors.New("invalid estimated delivery date, expected YYYY-MM-DD")
	ErrNoFieldsToUpdate      = errors.New("no valid fields to update")

	ErrShipmentNotFound        = errors.New("shipment not found")
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
	ErrTrackingNumberExhausted = errors.New("could not generate a unique tracking number")
)
