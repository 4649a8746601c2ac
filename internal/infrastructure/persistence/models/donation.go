package models

import (
	"time"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/cart"
	"github.com/givehope/backend/internal/domain/donation"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationModel is the persistence model for the Donation domain entity.
// The checkout session id carries a uniqueness constraint: it is the
// idempotency key for payment reconciliation.
type DonationModel struct {
	BaseModel
	DonorID           *uuid.UUID          `gorm:"type:uuid;index"`
	TotalAmount       decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	PaymentMethod     string              `gorm:"type:varchar(50)"`
	CheckoutSessionID string              `gorm:"type:varchar(255);not null;uniqueIndex"`
	TransactionStatus string              `gorm:"type:varchar(20);not null"`
	Items             []DonationItemModel `gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (DonationModel) TableName() string {
	return "donations"
}

// DonationItemModel is one line of a recorded donation.
type DonationItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	DonationID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind        string          `gorm:"type:varchar(20);not null"`
	RecipientID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DonationItemModel) TableName() string {
	return "donation_items"
}

// CampaignDonationModel records one applied campaign increment per
// (checkout session, campaign) pair. The composite uniqueness constraint is
// what makes reconciliation retries safe: an insert conflict means the
// increment already happened.
type CampaignDonationModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key"`
	CheckoutSessionID string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_campaign_donation_session,priority:1"`
	CampaignID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_campaign_donation_session,priority:2;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CampaignDonationModel) TableName() string {
	return "campaign_donations"
}

// ToDomain converts the persistence model to a domain Donation entity.
func (m *DonationModel) ToDomain() *donation.Donation {
	items := make(cart.Cart, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, cart.Line{
			Kind:        beneficiary.RecipientKind(item.Kind),
			RecipientID: item.RecipientID,
			Amount:      valueobject.NewMoney(item.Amount),
		})
	}
	return &donation.Donation{
		BaseEntity:        m.BaseModel.ToDomain(),
		DonorID:           m.DonorID,
		Items:             items,
		TotalAmount:       valueobject.NewMoney(m.TotalAmount),
		PaymentMethod:     m.PaymentMethod,
		CheckoutSessionID: m.CheckoutSessionID,
		TransactionStatus: donation.TransactionStatus(m.TransactionStatus),
	}
}

// FromDomain populates the persistence model from a domain Donation entity.
func (m *DonationModel) FromDomain(d *donation.Donation) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.DonorID = d.DonorID
	m.TotalAmount = d.TotalAmount.Amount()
	m.PaymentMethod = d.PaymentMethod
	m.CheckoutSessionID = d.CheckoutSessionID
	m.TransactionStatus = string(d.TransactionStatus)
	m.Items = make([]DonationItemModel, 0, len(d.Items))
	for _, line := range d.Items {
		m.Items = append(m.Items, DonationItemModel{
			ID:          uuid.New(),
			DonationID:  d.ID,
			Kind:        line.Kind.String(),
			RecipientID: line.RecipientID,
			Amount:      line.Amount.Amount(),
			CreatedAt:   d.CreatedAt,
		})
	}
}
