package donation

import (
	"context"

	appcart "github.com/givehope/backend/internal/application/cart"
	"github.com/givehope/backend/internal/domain/donation"
	"github.com/givehope/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CheckoutService opens hosted payment sessions for the synced cart
type CheckoutService struct {
	carts    *appcart.Service
	provider donation.CheckoutProvider
	logger   *zap.Logger
}

// NewCheckoutService creates a CheckoutService
func NewCheckoutService(carts *appcart.Service, provider donation.CheckoutProvider, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		provider: provider,
		logger:   logger,
	}
}

// CreateCheckout syncs the owner's cart and opens a provider session for it.
// The valid cart is captured into the session payload at this moment; the
// confirmation path reconciles against that payload, never a live cart.
// Nothing is persisted here: a failed or abandoned session leaves no trace.
func (s *CheckoutService) CreateCheckout(ctx context.Context, owner appcart.Owner) (*CheckoutSessionResponse, error) {
	valid, detailed, err := s.carts.Sync(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(valid) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cart has no valid items to check out")
	}

	items := make([]donation.CheckoutItem, 0, len(detailed))
	for _, d := range detailed {
		items = append(items, donation.CheckoutItem{
			Name:        d.Recipient.Name,
			Images:      d.Recipient.Images,
			AmountCents: d.Amount.Cents(),
		})
	}

	session, err := s.provider.CreateSession(ctx, donation.CreateCheckoutRequest{
		DonorID: owner.UserID,
		Items:   items,
		Payload: valid,
	})
	if err != nil {
		s.logger.Error("Failed to create checkout session", zap.Error(err))
		return nil, shared.ErrUpstream
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", session.ID),
		zap.Int("line_count", len(valid)))

	return &CheckoutSessionResponse{
		SessionID:  session.ID,
		SessionURL: session.URL,
	}, nil
}
