package cart

import "github.com/google/uuid"

// Merge combines a guest cart into a user's persisted cart. Amounts for
// duplicate recipients are summed, not clamped: clamping happens in the
// validity filter that always runs after a merge. cleared reports whether
// the guest cart held anything and must now be emptied at its origin;
// merging is a transfer of ownership, never a copy, and the direction is
// always guest into user.
func Merge(base, guest Cart) (merged Cart, cleared bool) {
	if len(guest) == 0 {
		return base, false
	}

	merged = base.Clone()
	index := make(map[uuid.UUID]int, len(merged))
	for i, line := range merged {
		index[line.RecipientID] = i
	}

	for _, incoming := range guest {
		if i, ok := index[incoming.RecipientID]; ok {
			merged[i].Amount = merged[i].Amount.Add(incoming.Amount)
			continue
		}
		index[incoming.RecipientID] = len(merged)
		merged = append(merged, incoming)
	}

	return merged, true
}
