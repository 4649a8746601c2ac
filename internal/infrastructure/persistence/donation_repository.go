package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/donation"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/givehope/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDonationRepository implements donation.Repository using GORM
type GormDonationRepository struct {
	db *gorm.DB
}

// NewGormDonationRepository creates a new GormDonationRepository
func NewGormDonationRepository(db *gorm.DB) *GormDonationRepository {
	return &GormDonationRepository{db: db}
}

// FindByCheckoutSessionID finds the donation recorded for a checkout session.
// Returns (nil, nil) when no record exists yet.
func (r *GormDonationRepository) FindByCheckoutSessionID(ctx context.Context, sessionID string) (*donation.Donation, error) {
	var model models.DonationModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "checkout_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create persists a donation record. The unique index on
// checkout_session_id makes a concurrent duplicate surface as
// shared.ErrAlreadyExists rather than a second record.
func (r *GormDonationRepository) Create(ctx context.Context, d *donation.Donation) error {
	var model models.DonationModel
	model.FromDomain(d)

	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "checkout_session_id"}},
		DoNothing: true,
	}).Create(&model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrAlreadyExists
	}
	return nil
}

// FindAll returns every donation record, newest first
func (r *GormDonationRepository) FindAll(ctx context.Context) ([]donation.Donation, error) {
	var donationModels []models.DonationModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, err
	}
	return toDomainDonations(donationModels), nil
}

// FindByDonor returns one donor's donation records, newest first
func (r *GormDonationRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]donation.Donation, error) {
	var donationModels []models.DonationModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, err
	}
	return toDomainDonations(donationModels), nil
}

func toDomainDonations(donationModels []models.DonationModel) []donation.Donation {
	donations := make([]donation.Donation, len(donationModels))
	for i, model := range donationModels {
		donations[i] = *model.ToDomain()
	}
	return donations
}

// itemViewRow is the scan target for the flattened item listing
type itemViewRow struct {
	DonationID    uuid.UUID
	DonorID       *uuid.UUID
	Kind          string
	RecipientID   uuid.UUID
	RecipientName string
	OrphanageID   uuid.UUID
	Amount        decimal.Decimal
	PaidAt        time.Time
}

// ListItems returns flattened paid donation lines joined with their
// recipients, optionally restricted to one orphanage. Orphan and campaign
// lines resolve their recipient through different tables, hence the UNION.
func (r *GormDonationRepository) ListItems(ctx context.Context, orphanageID *uuid.UUID) ([]donation.ItemView, error) {
	query := `
SELECT di.donation_id, d.donor_id, di.kind, di.recipient_id,
       o.name AS recipient_name, o.orphanage_id, di.amount, d.created_at AS paid_at
FROM donation_items di
JOIN donations d ON d.id = di.donation_id
JOIN orphans o ON o.id = di.recipient_id
WHERE di.kind = 'orphan' AND d.transaction_status = 'paid'
UNION ALL
SELECT di.donation_id, d.donor_id, di.kind, di.recipient_id,
       c.title AS recipient_name, c.orphanage_id, di.amount, d.created_at AS paid_at
FROM donation_items di
JOIN donations d ON d.id = di.donation_id
JOIN campaigns c ON c.id = di.recipient_id
WHERE di.kind = 'campaign' AND d.transaction_status = 'paid'`

	var rows []itemViewRow
	if orphanageID != nil {
		wrapped := `SELECT * FROM (` + query + `) items WHERE orphanage_id = ? ORDER BY paid_at DESC`
		if err := r.db.WithContext(ctx).Raw(wrapped, *orphanageID).Scan(&rows).Error; err != nil {
			return nil, err
		}
	} else {
		wrapped := `SELECT * FROM (` + query + `) items ORDER BY paid_at DESC`
		if err := r.db.WithContext(ctx).Raw(wrapped).Scan(&rows).Error; err != nil {
			return nil, err
		}
	}

	views := make([]donation.ItemView, len(rows))
	for i, row := range rows {
		views[i] = donation.ItemView{
			DonationID:    row.DonationID,
			DonorID:       row.DonorID,
			Kind:          beneficiary.RecipientKind(row.Kind),
			RecipientID:   row.RecipientID,
			RecipientName: row.RecipientName,
			OrphanageID:   row.OrphanageID,
			Amount:        valueobject.NewMoney(row.Amount),
			PaidAt:        row.PaidAt,
		}
	}
	return views, nil
}

// Ensure GormDonationRepository implements donation.Repository
var _ donation.Repository = (*GormDonationRepository)(nil)
