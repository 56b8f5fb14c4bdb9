//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=main
package main

import (
	"context"
	"time"

	"tracking/internal/entities"
)

type ledgerCorrection interface {
	FindEntry(ctx context.Context, identifier string, criteria entities.LedgerMatchCriteria) (*entities.StatusLogEntry, error)
	ReplaceEntry(ctx context.Context, identifier string, old *entities.StatusLogEntry, replacement entities.LedgerReplacement) (*entities.StatusLogEntry, error)
	FixTimestamp(ctx context.Context, identifier string, status entities.ShipmentStatus, newTimestamp time.Time) (*entities.StatusLogEntry, error)
	RemoveNotes(ctx context.Context, identifier *string, substring string) (int64, error)
	Resync(ctx context.Context, identifier string) (*entities.Shipment, error)
	Audit(ctx context.Context, autoResync bool) (*entities.AuditReport, error)
}

type ledgerArchive interface {
	Export(ctx context.Context) (*entities.LedgerSnapshot, error)
	Import(ctx context.Context, snapshot *entities.LedgerSnapshot) (*entities.ImportReport, error)
}

type tokenIssuer interface {
	Issue(principal entities.Principal, ttl time.Duration) (string, error)
}
