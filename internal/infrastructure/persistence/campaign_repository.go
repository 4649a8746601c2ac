package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/givehope/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCampaignRepository implements CampaignRepository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// FindByID finds a campaign by its ID
func (r *GormCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*beneficiary.Campaign, error) {
	var model models.CampaignModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all campaigns matching the filter
func (r *GormCampaignRepository) FindAll(ctx context.Context, filter shared.Filter) ([]beneficiary.Campaign, int64, error) {
	return r.findWhere(ctx, r.db.WithContext(ctx).Model(&models.CampaignModel{}), filter)
}

// FindByOrphanage finds all campaigns run by one orphanage
func (r *GormCampaignRepository) FindByOrphanage(ctx context.Context, orphanageID uuid.UUID, filter shared.Filter) ([]beneficiary.Campaign, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CampaignModel{}).Where("orphanage_id = ?", orphanageID)
	return r.findWhere(ctx, query, filter)
}

// Save persists a campaign record
func (r *GormCampaignRepository) Save(ctx context.Context, campaign *beneficiary.Campaign) error {
	var model models.CampaignModel
	model.FromDomain(campaign)
	return r.db.WithContext(ctx).Save(&model).Error
}

// ApplyDonation applies one paid checkout line to the campaign total.
// The marker insert and the increment run in one transaction: the composite
// unique index on (checkout_session_id, campaign_id) turns a retried
// reconciliation into a no-op insert, and the increment only runs when the
// marker was actually inserted. The status flip to completed happens in the
// same UPDATE so there is no window where the total has crossed the target
// but the campaign still reads active.
func (r *GormCampaignRepository) ApplyDonation(ctx context.Context, campaignID uuid.UUID, checkoutSessionID string, amount valueobject.Money) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marker := models.CampaignDonationModel{
			ID:                uuid.New(),
			CheckoutSessionID: checkoutSessionID,
			CampaignID:        campaignID,
			Amount:            amount.Amount(),
			CreatedAt:         time.Now(),
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "checkout_session_id"}, {Name: "campaign_id"}},
			DoNothing: true,
		}).Create(&marker)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already applied by an earlier reconciliation attempt.
			return nil
		}

		update := tx.Model(&models.CampaignModel{}).
			Where("id = ?", campaignID).
			Updates(map[string]interface{}{
				"amount_raised": gorm.Expr("amount_raised + ?", amount.Amount()),
				"status": gorm.Expr(
					"CASE WHEN amount_raised + ? >= target_amount AND status = 'active' THEN 'completed' ELSE status END",
					amount.Amount()),
				"updated_at": time.Now(),
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		applied = true
		return nil
	})
	return applied, err
}

func (r *GormCampaignRepository) findWhere(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]beneficiary.Campaign, int64, error) {
	query = r.applyFilterWithoutPagination(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	var campaignModels []models.CampaignModel
	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, 0, err
	}

	campaigns := make([]beneficiary.Campaign, len(campaignModels))
	for i, model := range campaignModels {
		campaigns[i] = *model.ToDomain()
	}
	return campaigns, total, nil
}

func (r *GormCampaignRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormCampaignRepository implements CampaignRepository
var _ beneficiary.CampaignRepository = (*GormCampaignRepository)(nil)
