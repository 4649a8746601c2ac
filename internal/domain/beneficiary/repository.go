package beneficiary

import (
	"context"

	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// OrphanRepository provides access to orphan records
type OrphanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Orphan, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Orphan, int64, error)
	FindByOrphanage(ctx context.Context, orphanageID uuid.UUID, filter shared.Filter) ([]Orphan, int64, error)
	Save(ctx context.Context, orphan *Orphan) error
}

// CampaignRepository provides access to campaign records
type CampaignRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Campaign, int64, error)
	FindByOrphanage(ctx context.Context, orphanageID uuid.UUID, filter shared.Filter) ([]Campaign, int64, error)
	Save(ctx context.Context, campaign *Campaign) error

	// ApplyDonation atomically increments the campaign's amount_raised and
	// flips the status to completed when the target is reached, as a single
	// storage-level read-modify-write. The (checkoutSessionID, campaignID)
	// pair is recorded with a uniqueness constraint so a retried
	// reconciliation can never double-apply a line; applied reports whether
	// this call performed the increment or found it already applied.
	ApplyDonation(ctx context.Context, campaignID uuid.UUID, checkoutSessionID string, amount valueobject.Money) (applied bool, err error)
}

// OrphanageRepository provides access to orphanage records
type OrphanageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Orphanage, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Orphanage, int64, error)
	Save(ctx context.Context, orphanage *Orphanage) error
}
