package beneficiary

import (
	"context"

	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// RecipientKind identifies which collection a donation recipient lives in.
// It is a closed set: dispatch on it happens through explicit switches,
// never through runtime model resolution.
type RecipientKind string

const (
	RecipientKindOrphan   RecipientKind = "orphan"
	RecipientKindCampaign RecipientKind = "campaign"
)

// IsValid checks if the kind is a valid RecipientKind
func (k RecipientKind) IsValid() bool {
	switch k {
	case RecipientKindOrphan, RecipientKindCampaign:
		return true
	}
	return false
}

// String returns the string representation of RecipientKind
func (k RecipientKind) String() string {
	return string(k)
}

// ParseRecipientKind converts a string into a RecipientKind
func ParseRecipientKind(s string) (RecipientKind, error) {
	kind := RecipientKind(s)
	if !kind.IsValid() {
		return "", shared.NewDomainError("INVALID_RECIPIENT_KIND",
			"Recipient kind must be 'orphan' or 'campaign'")
	}
	return kind, nil
}

// RecipientSnapshot is a read-only projection of a recipient's current state,
// carrying exactly the fields cart validation and checkout display need.
// Snapshots are fetched fresh on every read and never cached: campaign totals
// mutate concurrently from payment reconciliation.
type RecipientSnapshot struct {
	ID           uuid.UUID
	Kind         RecipientKind
	Name         string
	Images       []string
	IsSponsored  bool              // orphans only
	Status       CampaignStatus    // campaigns only
	TargetAmount valueobject.Money // campaigns only
	AmountRaised valueobject.Money // campaigns only
}

// Headroom returns the remaining funding capacity for a campaign snapshot.
// Orphan snapshots have no ceiling and report zero headroom; callers must
// check the kind first.
func (s RecipientSnapshot) Headroom() valueobject.Money {
	return s.TargetAmount.Subtract(s.AmountRaised)
}

// AcceptsDonations reports whether the recipient can receive new cart lines
func (s RecipientSnapshot) AcceptsDonations() bool {
	switch s.Kind {
	case RecipientKindOrphan:
		return !s.IsSponsored
	case RecipientKindCampaign:
		return s.Status == CampaignStatusActive
	}
	return false
}

// RecipientReader fetches recipient snapshots.
// FindSnapshots issues one query per invocation regardless of how many ids
// are requested; missing ids are simply absent from the result.
type RecipientReader interface {
	FindSnapshots(ctx context.Context, kind RecipientKind, ids []uuid.UUID) ([]RecipientSnapshot, error)
	FindSnapshot(ctx context.Context, kind RecipientKind, id uuid.UUID) (*RecipientSnapshot, error)
}
