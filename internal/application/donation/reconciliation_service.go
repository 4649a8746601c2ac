package donation

import (
	"context"
	"errors"

	appcart "github.com/givehope/backend/internal/application/cart"
	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/cart"
	"github.com/givehope/backend/internal/domain/donation"
	"github.com/givehope/backend/internal/domain/identity"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReconciliationService turns a paid checkout session into exactly one
// donation record and the campaign increments it implies. Safe to call any
// number of times for the same session: duplicates return the stored record.
type ReconciliationService struct {
	donations donation.Repository
	campaigns beneficiary.CampaignRepository
	provider  donation.CheckoutProvider
	users     identity.Repository
	sessions  cart.SessionStore
	logger    *zap.Logger
}

// NewReconciliationService creates a ReconciliationService
func NewReconciliationService(
	donations donation.Repository,
	campaigns beneficiary.CampaignRepository,
	provider donation.CheckoutProvider,
	users identity.Repository,
	sessions cart.SessionStore,
	logger *zap.Logger,
) *ReconciliationService {
	return &ReconciliationService{
		donations: donations,
		campaigns: campaigns,
		provider:  provider,
		users:     users,
		sessions:  sessions,
		logger:    logger,
	}
}

// ConfirmCheckout reconciles one checkout session after the payment redirect.
// Campaign increments happen before the donation record is created, each
// guarded by a per-line idempotency marker, so a crash between the two steps
// is repaired by retrying: already-applied lines are skipped, and the record
// is created once. The owner's cart is cleared only after the record exists.
func (s *ReconciliationService) ConfirmCheckout(ctx context.Context, sessionID string, owner appcart.Owner) (*DonationResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Checkout session ID cannot be empty")
	}

	// Fast path: a previous confirmation already completed.
	if existing, err := s.donations.FindByCheckoutSessionID(ctx, sessionID); err != nil {
		return nil, err
	} else if existing != nil {
		resp := ToDonationResponse(existing)
		return &resp, nil
	}

	confirmation, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to retrieve checkout session",
			zap.String("session_id", sessionID), zap.Error(err))
		return nil, shared.ErrUpstream
	}
	if !confirmation.Paid {
		return nil, shared.NewDomainError("PAYMENT_INCOMPLETE", "Checkout session has not been paid")
	}
	if len(confirmation.Payload) == 0 {
		return nil, shared.NewDomainError("EMPTY_SESSION_PAYLOAD", "Checkout session carries no donation items")
	}

	for _, line := range confirmation.Payload {
		if line.Kind != beneficiary.RecipientKindCampaign {
			continue
		}
		applied, err := s.campaigns.ApplyDonation(ctx, line.RecipientID, sessionID, line.Amount)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Campaign donation reconciled",
			zap.String("session_id", sessionID),
			zap.String("campaign_id", line.RecipientID.String()),
			zap.String("amount", line.Amount.String()),
			zap.Bool("applied", applied))
	}

	record, err := donation.NewDonation(
		confirmation.DonorID,
		confirmation.Payload,
		valueobject.NewMoneyFromCents(confirmation.AmountTotalCents),
		confirmation.PaymentMethod,
		sessionID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.donations.Create(ctx, record); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// Lost the race to a concurrent confirmation; its record wins.
			stored, ferr := s.donations.FindByCheckoutSessionID(ctx, sessionID)
			if ferr != nil {
				return nil, ferr
			}
			if stored != nil {
				resp := ToDonationResponse(stored)
				return &resp, nil
			}
		}
		return nil, err
	}

	s.clearOriginatingCart(ctx, confirmation.DonorID, owner)

	s.logger.Info("Donation recorded",
		zap.String("session_id", sessionID),
		zap.String("donation_id", record.ID.String()),
		zap.String("total", record.TotalAmount.String()))

	resp := ToDonationResponse(record)
	return &resp, nil
}

// clearOriginatingCart empties whichever cart produced the session. Failures
// here are logged, not returned: the money moved and the record exists, a
// stale cart is the lesser wrong and the next sync will re-clamp it anyway.
func (s *ReconciliationService) clearOriginatingCart(ctx context.Context, donorID *uuid.UUID, owner appcart.Owner) {
	if donorID != nil {
		if err := s.users.SaveCart(ctx, *donorID, cart.Cart{}); err != nil {
			s.logger.Warn("Failed to clear user cart after checkout",
				zap.String("user_id", donorID.String()), zap.Error(err))
		}
	}
	if owner.SessionID != "" {
		if err := s.sessions.Clear(ctx, owner.SessionID); err != nil {
			s.logger.Warn("Failed to clear session cart after checkout",
				zap.String("session_id", owner.SessionID), zap.Error(err))
		}
	}
}
