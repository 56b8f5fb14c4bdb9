package shipment

import (
	"fmt"
	"strings"
	"time"

	"tracking/internal/entities"
)

const deliveryDateLayout = time.DateOnly

type requiredField struct {
	name    string
	present bool
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// missingRequiredFields перечисляет обязательные поля, которые не переданы или пусты.
func missingRequiredFields(r *entities.ShipmentRegistration) []string {
	fields := []requiredField{
		{"sender_name", !isBlank(r.SenderName)},
		{"sender_email", !isBlank(r.SenderEmail)},
		{"sender_phone", !isBlank(r.SenderPhone)},
		{"sender_address", !isBlank(r.SenderAddress)},
		{"receiver_name", !isBlank(r.ReceiverName)},
		{"receiver_phone", !isBlank(r.ReceiverPhone)},
		{"receiver_address", !isBlank(r.ReceiverAddress)},
		{"package_type", !isBlank(r.PackageType)},
		{"weight", r.Weight != nil},
		{"shipment_cost", r.ShipmentCost != nil},
	}

	missing := make([]string, 0)
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func validateAmount(name string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidField, name)
	}
	return nil
}

func validateNotBlank(name string, v *string) error {
	if v != nil && strings.TrimSpace(*v) == "" {
		return fmt.Errorf("%w: %s must not be blank", ErrInvalidField, name)
	}
	return nil
}

func parseDeliveryDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	date, err := time.Parse(deliveryDateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDeliveryDate, *raw)
	}
	return &date, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// optional возвращает nil для пустых необязательных строк.
func optional(s *string) *string {
	if isBlank(s) {
		return nil
	}
	return trimmed(s)
}
