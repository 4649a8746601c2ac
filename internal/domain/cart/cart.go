package cart

import (
	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// DefaultMaxLines is the default ceiling on distinct cart lines
const DefaultMaxLines = 20

// Line is one pledged donation to one recipient
type Line struct {
	Kind        beneficiary.RecipientKind `json:"donation_type"`
	RecipientID uuid.UUID                 `json:"recipient_id"`
	Amount      valueobject.Money         `json:"amount"`
}

// NewLine creates a validated cart line
func NewLine(kind beneficiary.RecipientKind, recipientID uuid.UUID, amount valueobject.Money) (Line, error) {
	if !kind.IsValid() {
		return Line{}, shared.NewDomainError("INVALID_RECIPIENT_KIND",
			"Recipient kind must be 'orphan' or 'campaign'")
	}
	if recipientID == uuid.Nil {
		return Line{}, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID cannot be empty")
	}
	if !amount.IsPositive() {
		return Line{}, shared.NewDomainError("INVALID_AMOUNT", "Donation amount must be positive")
	}
	return Line{Kind: kind, RecipientID: recipientID, Amount: amount}, nil
}

// Cart is an ordered collection of lines with at most one line per recipient.
// Uniqueness is enforced by the operations that build carts (merge, add),
// not by raw storage.
type Cart []Line

// Find returns the index of the line for the given recipient, or -1
func (c Cart) Find(recipientID uuid.UUID) int {
	for i, line := range c {
		if line.RecipientID == recipientID {
			return i
		}
	}
	return -1
}

// Remove returns a cart without the line for the given recipient and
// reports whether a line was removed
func (c Cart) Remove(recipientID uuid.UUID) (Cart, bool) {
	i := c.Find(recipientID)
	if i < 0 {
		return c, false
	}
	out := make(Cart, 0, len(c)-1)
	out = append(out, c[:i]...)
	out = append(out, c[i+1:]...)
	return out, true
}

// IDsByKind partitions the cart's recipient ids by kind, preserving order,
// so lookups can be batched into one query per kind
func (c Cart) IDsByKind() map[beneficiary.RecipientKind][]uuid.UUID {
	out := make(map[beneficiary.RecipientKind][]uuid.UUID, 2)
	for _, line := range c {
		out[line.Kind] = append(out[line.Kind], line.RecipientID)
	}
	return out
}

// Total returns the sum of all line amounts
func (c Cart) Total() valueobject.Money {
	total := valueobject.Zero()
	for _, line := range c {
		total = total.Add(line.Amount)
	}
	return total
}

// Clone returns a deep copy of the cart
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// DetailedLine pairs a valid cart line with the fresh recipient snapshot it
// was validated against, for checkout display
type DetailedLine struct {
	Line
	Recipient beneficiary.RecipientSnapshot `json:"recipient"`
}
