package donation

import (
	"context"
	"time"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ItemView is one paid donation line joined with its recipient, for
// history and per-orphanage reporting
type ItemView struct {
	DonationID    uuid.UUID
	DonorID       *uuid.UUID
	Kind          beneficiary.RecipientKind
	RecipientID   uuid.UUID
	RecipientName string
	OrphanageID   uuid.UUID
	Amount        valueobject.Money
	PaidAt        time.Time
}

// Repository provides access to donation records.
// Create must fail with shared.ErrAlreadyExists when a record for the same
// checkout session already exists; that uniqueness constraint, not the
// FindByCheckoutSessionID fast path, is the correctness mechanism under
// concurrent reconciliations.
type Repository interface {
	FindByCheckoutSessionID(ctx context.Context, sessionID string) (*Donation, error)
	Create(ctx context.Context, d *Donation) error
	FindAll(ctx context.Context) ([]Donation, error)
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]Donation, error)

	// ListItems returns flattened paid donation lines joined with their
	// recipients, optionally restricted to one orphanage
	ListItems(ctx context.Context, orphanageID *uuid.UUID) ([]ItemView, error)
}
