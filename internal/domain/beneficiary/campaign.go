package beneficiary

import (
	"time"

	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CampaignStatus represents the lifecycle state of a fundraising campaign
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCanceled  CampaignStatus = "canceled"
)

// IsValid checks if the status is a valid CampaignStatus
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCanceled:
		return true
	}
	return false
}

// String returns the string representation of CampaignStatus
func (s CampaignStatus) String() string {
	return string(s)
}

// Campaign represents an orphanage fundraising campaign.
// AmountRaised is monotonically non-decreasing and is mutated exclusively
// through payment reconciliation; the active -> completed transition fires
// exactly once when the target is reached and never reverses.
type Campaign struct {
	shared.BaseEntity
	Title        string
	Description  string
	OrphanageID  uuid.UUID
	TargetAmount valueobject.Money
	AmountRaised valueobject.Money
	Status       CampaignStatus
	Images       []string
	StartDate    time.Time
	EndDate      time.Time
}

// NewCampaign creates a new campaign in the active state
func NewCampaign(title, description string, orphanageID uuid.UUID, target valueobject.Money, start, end time.Time) (*Campaign, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Campaign title cannot be empty")
	}
	if orphanageID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORPHANAGE", "Orphanage ID cannot be empty")
	}
	if !target.IsPositive() {
		return nil, shared.NewDomainError("INVALID_TARGET", "Target amount must be positive")
	}
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_DATES", "End date must be after the start date")
	}

	return &Campaign{
		BaseEntity:   shared.NewBaseEntity(),
		Title:        title,
		Description:  description,
		OrphanageID:  orphanageID,
		TargetAmount: target,
		AmountRaised: valueobject.Zero(),
		Status:       CampaignStatusActive,
		StartDate:    start,
		EndDate:      end,
	}, nil
}

// Headroom returns the remaining funding capacity
func (c *Campaign) Headroom() valueobject.Money {
	return c.TargetAmount.Subtract(c.AmountRaised)
}

// IsActive reports whether the campaign accepts new donations
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// ReceiveDonation applies a paid amount to the campaign total and flips the
// status to completed when the target is reached. The persistence layer must
// mirror this as a single atomic read-modify-write; this method exists for
// in-memory reasoning and tests.
func (c *Campaign) ReceiveDonation(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Donation amount must be positive")
	}
	if c.Status != CampaignStatusActive {
		return shared.ErrInvalidState
	}

	c.AmountRaised = c.AmountRaised.Add(amount)
	if c.AmountRaised.GreaterThanOrEqual(c.TargetAmount) {
		c.Status = CampaignStatusCompleted
	}
	c.Touch()
	return nil
}

// Cancel moves an active campaign to the canceled state
func (c *Campaign) Cancel() error {
	if c.Status != CampaignStatusActive {
		return shared.ErrInvalidState
	}
	c.Status = CampaignStatusCanceled
	c.Touch()
	return nil
}

// Snapshot returns a read-only projection of the campaign's current state
func (c *Campaign) Snapshot() RecipientSnapshot {
	return RecipientSnapshot{
		ID:           c.ID,
		Kind:         RecipientKindCampaign,
		Name:         c.Title,
		Images:       c.Images,
		Status:       c.Status,
		TargetAmount: c.TargetAmount,
		AmountRaised: c.AmountRaised,
	}
}
