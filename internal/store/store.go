// Package store implements the persistence collaborator for the
// ledger.  The engine's correctness never depends on it: snapshots
// are fire-and-forget writes after each mutation, and a snapshot
// loaded at session start must round-trip every model field exactly,
// including transaction timestamps as true time values.
package store

import (
	"context"
	"time"

	"github.com/danielfranchi555/padelAdministration/internal/model"
)

// Snapshot is the opaque serialized state handed to the store after
// every mutation: the full match collection and the append-only
// payment log.
type Snapshot struct {
	Matches  []model.Match              `json:"matches"`
	Payments []model.PaymentTransaction `json:"payments"`
	SavedAt  time.Time                  `json:"saved_at"`
}

// Store persists and restores session snapshots.  Load returns an
// empty snapshot (not an error) when nothing has been saved yet.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}
