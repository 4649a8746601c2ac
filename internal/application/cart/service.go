package cart

import (
	"context"
	"fmt"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/cart"
	"github.com/givehope/backend/internal/domain/identity"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the single entry point for every cart-touching operation.
// Each call re-syncs the cart first: merge the guest cart into the user cart
// when both exist, revalidate every line against live recipient state, and
// persist the pruned cart back to its origin only when something changed.
// The cart a caller observes therefore never contains stale lines and never
// exceeds a recipient's current capacity.
type Service struct {
	users      identity.Repository
	sessions   cart.SessionStore
	recipients beneficiary.RecipientReader
	maxLines   int
	logger     *zap.Logger
}

// NewService creates a cart Service
func NewService(users identity.Repository, sessions cart.SessionStore, recipients beneficiary.RecipientReader, maxLines int, logger *zap.Logger) *Service {
	if maxLines <= 0 {
		maxLines = cart.DefaultMaxLines
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		recipients: recipients,
		maxLines:   maxLines,
		logger:     logger,
	}
}

// Sync merges, revalidates and conditionally persists the owner's cart,
// returning the valid cart and its detailed counterpart
func (s *Service) Sync(ctx context.Context, owner Owner) (cart.Cart, []cart.DetailedLine, error) {
	guest, err := s.sessions.Get(ctx, owner.SessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session cart: %w", err)
	}

	var user *identity.User
	resolved := guest
	merged := false
	if owner.IsAuthenticated() {
		user, err = s.users.FindByID(ctx, *owner.UserID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load user: %w", err)
		}
		resolved, merged = cart.Merge(user.Cart, guest)
	}

	index, err := s.lookupSnapshots(ctx, resolved)
	if err != nil {
		return nil, nil, err
	}

	result := cart.Prune(resolved, index)
	for _, dropped := range result.Dropped {
		s.logger.Info("Pruned stale cart line",
			zap.String("recipient_id", dropped.RecipientID.String()),
			zap.String("donation_type", dropped.Kind.String()))
	}

	if owner.IsAuthenticated() {
		if merged || result.Changed() {
			if err := s.users.SaveCart(ctx, user.ID, result.Valid); err != nil {
				return nil, nil, fmt.Errorf("failed to persist user cart: %w", err)
			}
		}
		if merged {
			// The guest cart's contents now live in the user cart;
			// ownership transferred, the session copy must go.
			if err := s.sessions.Clear(ctx, owner.SessionID); err != nil {
				return nil, nil, fmt.Errorf("failed to clear session cart: %w", err)
			}
		}
	} else if result.Changed() {
		if err := s.sessions.Put(ctx, owner.SessionID, result.Valid); err != nil {
			return nil, nil, fmt.Errorf("failed to persist session cart: %w", err)
		}
	}

	return result.Valid, result.Detailed, nil
}

// View returns the owner's synced cart in response form
func (s *Service) View(ctx context.Context, owner Owner) (*CartResponse, error) {
	valid, detailed, err := s.Sync(ctx, owner)
	if err != nil {
		return nil, err
	}
	resp := ToCartResponse(valid, detailed)
	return &resp, nil
}

// AddItem adds a donation to the cart, summing into an existing line for the
// same recipient. The requested total is clamped against the recipient's
// fresh snapshot, fetched individually because the recipient may not be in
// the synced cart yet.
func (s *Service) AddItem(ctx context.Context, owner Owner, req AddItemRequest) (*LineResponse, error) {
	kind, err := beneficiary.ParseRecipientKind(req.DonationType)
	if err != nil {
		return nil, err
	}
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID is not a valid UUID")
	}
	line, err := cart.NewLine(kind, recipientID, valueobject.NewMoneyFromFloat(req.Amount))
	if err != nil {
		return nil, err
	}

	valid, _, err := s.Sync(ctx, owner)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.recipients.FindSnapshot(ctx, kind, recipientID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, shared.ErrNotFound
	}
	if !snapshot.AcceptsDonations() {
		return nil, shared.ErrRecipientInactive
	}

	i := valid.Find(recipientID)
	if i >= 0 {
		total := valid[i].Amount.Add(line.Amount)
		permitted, err := cart.Clamp(*snapshot, total)
		if err != nil {
			return nil, err
		}
		valid[i].Amount = permitted
		line = valid[i]
	} else {
		if len(valid) >= s.maxLines {
			return nil, shared.ErrCartFull
		}
		permitted, err := cart.Clamp(*snapshot, line.Amount)
		if err != nil {
			return nil, err
		}
		line.Amount = permitted
		valid = append(valid, line)
	}

	if err := s.persist(ctx, owner, valid); err != nil {
		return nil, err
	}

	resp := ToLineResponse(line)
	return &resp, nil
}

// UpdateAmount replaces a line's amount, clamped against the recipient's
// fresh snapshot from the synced cart
func (s *Service) UpdateAmount(ctx context.Context, owner Owner, req UpdateAmountRequest) (*LineResponse, error) {
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID is not a valid UUID")
	}
	amount := valueobject.NewMoneyFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Donation amount must be positive")
	}

	valid, detailed, err := s.Sync(ctx, owner)
	if err != nil {
		return nil, err
	}

	i := valid.Find(recipientID)
	if i < 0 {
		return nil, shared.ErrNotFound
	}

	permitted, err := cart.Clamp(detailed[i].Recipient, amount)
	if err != nil {
		return nil, err
	}
	valid[i].Amount = permitted

	if err := s.persist(ctx, owner, valid); err != nil {
		return nil, err
	}

	resp := ToLineResponse(valid[i])
	return &resp, nil
}

// RemoveItem removes a line from the cart. Removing an absent line is a
// no-op, matching the self-healing treatment of stale references.
func (s *Service) RemoveItem(ctx context.Context, owner Owner, recipientID uuid.UUID) (cart.Cart, error) {
	valid, _, err := s.Sync(ctx, owner)
	if err != nil {
		return nil, err
	}

	remaining, removed := valid.Remove(recipientID)
	if removed {
		if err := s.persist(ctx, owner, remaining); err != nil {
			return nil, err
		}
	}
	return remaining, nil
}

// Clear empties the owner's cart
func (s *Service) Clear(ctx context.Context, owner Owner) error {
	// A merge-eligible guest cart still transfers first so the user cart is
	// what gets cleared.
	if _, _, err := s.Sync(ctx, owner); err != nil {
		return err
	}
	return s.persist(ctx, owner, cart.Cart{})
}

// persist writes a cart back to its origin: the user record when
// authenticated, the session otherwise
func (s *Service) persist(ctx context.Context, owner Owner, c cart.Cart) error {
	if owner.IsAuthenticated() {
		if err := s.users.SaveCart(ctx, *owner.UserID, c); err != nil {
			return fmt.Errorf("failed to persist user cart: %w", err)
		}
		return nil
	}
	if err := s.sessions.Put(ctx, owner.SessionID, c); err != nil {
		return fmt.Errorf("failed to persist session cart: %w", err)
	}
	return nil
}

// lookupSnapshots batch-fetches fresh snapshots for every line in the cart,
// one query per recipient kind
func (s *Service) lookupSnapshots(ctx context.Context, c cart.Cart) (cart.SnapshotIndex, error) {
	index := make(cart.SnapshotIndex, len(c))
	for kind, ids := range c.IDsByKind() {
		snapshots, err := s.recipients.FindSnapshots(ctx, kind, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s snapshots: %w", kind, err)
		}
		for _, snapshot := range snapshots {
			index[snapshot.ID] = snapshot
		}
	}
	return index, nil
}
