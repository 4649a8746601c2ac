package donation

import (
	"github.com/givehope/backend/internal/domain/cart"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// TransactionStatus mirrors the payment provider's terminal payment states
type TransactionStatus string

const (
	TransactionStatusPaid   TransactionStatus = "paid"
	TransactionStatusUnpaid TransactionStatus = "unpaid"
)

// Donation is the permanent record of one completed checkout. Exactly one
// record exists per external checkout session: CheckoutSessionID is the
// idempotency key, enforced by a uniqueness constraint in storage.
type Donation struct {
	shared.BaseEntity
	DonorID           *uuid.UUID // nil for guest checkouts
	Items             cart.Cart  // payload captured at checkout-session creation
	TotalAmount       valueobject.Money
	PaymentMethod     string
	CheckoutSessionID string
	TransactionStatus TransactionStatus
}

// NewDonation creates a donation record for a confirmed checkout session
func NewDonation(donorID *uuid.UUID, items cart.Cart, total valueobject.Money, paymentMethod, checkoutSessionID string) (*Donation, error) {
	if checkoutSessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Checkout session ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_DONATION", "Donation must contain at least one item")
	}
	if !total.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Donation total must be positive")
	}

	return &Donation{
		BaseEntity:        shared.NewBaseEntity(),
		DonorID:           donorID,
		Items:             items,
		TotalAmount:       total,
		PaymentMethod:     paymentMethod,
		CheckoutSessionID: checkoutSessionID,
		TransactionStatus: TransactionStatusPaid,
	}, nil
}
