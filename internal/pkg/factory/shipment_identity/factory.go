package shipment_identity

import (
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPrefix = "TRK"
	suffixLength  = 8
)

type IdentityFactory struct {
	prefix string
}

func New(prefix string) *IdentityFactory {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &IdentityFactory{prefix: prefix}
}

func (f *IdentityFactory) NewShipmentID() string {
	return uuid.NewString()
}

// NewTrackingNumber возвращает префикс и 8 случайных hex символов в верхнем регистре.
// Уникальность не гарантируется, вызывающий проверяет коллизии.
func (f *IdentityFactory) NewTrackingNumber() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return f.prefix + strings.ToUpper(random[:suffixLength])
}
