package donation

import (
	"context"

	"github.com/givehope/backend/internal/domain/cart"
	"github.com/google/uuid"
)

// CheckoutItem is one display line sent to the payment provider
type CheckoutItem struct {
	Name        string
	Images      []string
	AmountCents int64
}

// CreateCheckoutRequest carries everything the provider needs to open a
// hosted checkout session. Payload is the exact cart being paid for; the
// provider must hand it back verbatim on confirmation so reconciliation
// never re-reads a live cart.
type CreateCheckoutRequest struct {
	DonorID *uuid.UUID
	Items   []CheckoutItem
	Payload cart.Cart
}

// CheckoutSession identifies a created provider session
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutConfirmation is the provider's view of a finished session
type CheckoutConfirmation struct {
	SessionID        string
	Paid             bool
	AmountTotalCents int64
	PaymentMethod    string
	DonorID          *uuid.UUID
	Payload          cart.Cart
}

// CheckoutProvider is the port to the external payment processor. The
// provider is opaque: the core never sees card data, only session handles
// and confirmations.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req CreateCheckoutRequest) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutConfirmation, error)
}
