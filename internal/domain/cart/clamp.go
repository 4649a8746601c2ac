package cart

import (
	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
)

// Clamp returns the permitted donation amount for a recipient given its
// current funding state. Campaign donations are capped at the remaining
// headroom; orphan donations have no ceiling.
//
// Callers must only pass snapshots that already passed validity filtering:
// an exhausted or inactive campaign is filtered out before clamping, so zero
// or negative headroom here is an invariant violation, not a user error.
func Clamp(snapshot beneficiary.RecipientSnapshot, requested valueobject.Money) (valueobject.Money, error) {
	if snapshot.Kind != beneficiary.RecipientKindCampaign {
		return requested, nil
	}

	headroom := snapshot.Headroom()
	if !headroom.IsPositive() {
		return valueobject.Zero(), shared.NewDomainError("CAMPAIGN_EXHAUSTED",
			"Campaign has no remaining funding capacity")
	}

	return requested.Min(headroom), nil
}
