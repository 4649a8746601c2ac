package cart

import (
	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/google/uuid"
)

// SnapshotIndex is a lookup from recipient id to its fresh snapshot.
// Absent ids mean the recipient was deleted or never existed.
type SnapshotIndex map[uuid.UUID]beneficiary.RecipientSnapshot

// NewSnapshotIndex builds an index from batched lookup results
func NewSnapshotIndex(snapshots []beneficiary.RecipientSnapshot) SnapshotIndex {
	index := make(SnapshotIndex, len(snapshots))
	for _, s := range snapshots {
		index[s.ID] = s
	}
	return index
}

// PruneResult is the outcome of revalidating a cart against live state
type PruneResult struct {
	Valid    Cart           // surviving lines, re-clamped
	Detailed []DetailedLine // surviving lines paired with their snapshots
	Dropped  Cart           // lines removed for missing/sponsored/inactive recipients
	Clamped  int            // count of lines whose amount was reduced
}

// Changed reports whether pruning altered the cart and it must be persisted
// back to its origin
func (r PruneResult) Changed() bool {
	return len(r.Dropped) > 0 || r.Clamped > 0
}

// Prune drops cart lines whose recipient is missing, sponsored, or no longer
// active, and re-clamps the amounts of surviving lines against the fresh
// snapshots. Invalid lines self-heal silently rather than blocking checkout;
// the caller logs them.
func Prune(raw Cart, snapshots SnapshotIndex) PruneResult {
	result := PruneResult{
		Valid:    make(Cart, 0, len(raw)),
		Detailed: make([]DetailedLine, 0, len(raw)),
	}

	for _, line := range raw {
		snapshot, ok := snapshots[line.RecipientID]
		if !ok || !snapshot.AcceptsDonations() {
			result.Dropped = append(result.Dropped, line)
			continue
		}

		permitted, err := Clamp(snapshot, line.Amount)
		if err != nil {
			// Headroom hit zero between the validity check and the clamp;
			// treat the line like any other stale reference.
			result.Dropped = append(result.Dropped, line)
			continue
		}
		if permitted.LessThan(line.Amount) {
			line.Amount = permitted
			result.Clamped++
		}

		result.Valid = append(result.Valid, line)
		result.Detailed = append(result.Detailed, DetailedLine{Line: line, Recipient: snapshot})
	}

	return result
}
