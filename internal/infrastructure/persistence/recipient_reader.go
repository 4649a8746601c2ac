package persistence

import (
	"context"
	"errors"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecipientReader resolves live recipient snapshots for cart
// revalidation. Snapshots are read fresh on every call, never cached:
// clamping against stale campaign totals would defeat the revalidation.
type GormRecipientReader struct {
	db *gorm.DB
}

// NewGormRecipientReader creates a new GormRecipientReader
func NewGormRecipientReader(db *gorm.DB) *GormRecipientReader {
	return &GormRecipientReader{db: db}
}

// FindSnapshots returns live snapshots for the given ids of one kind.
// Missing ids are simply absent from the result.
func (r *GormRecipientReader) FindSnapshots(ctx context.Context, kind beneficiary.RecipientKind, ids []uuid.UUID) ([]beneficiary.RecipientSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	switch kind {
	case beneficiary.RecipientKindOrphan:
		var orphanModels []models.OrphanModel
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&orphanModels).Error; err != nil {
			return nil, err
		}
		snapshots := make([]beneficiary.RecipientSnapshot, len(orphanModels))
		for i, model := range orphanModels {
			snapshots[i] = model.ToDomain().Snapshot()
		}
		return snapshots, nil

	case beneficiary.RecipientKindCampaign:
		var campaignModels []models.CampaignModel
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&campaignModels).Error; err != nil {
			return nil, err
		}
		snapshots := make([]beneficiary.RecipientSnapshot, len(campaignModels))
		for i, model := range campaignModels {
			snapshots[i] = model.ToDomain().Snapshot()
		}
		return snapshots, nil
	}

	return nil, shared.NewDomainError("INVALID_RECIPIENT_KIND", "Unknown recipient kind")
}

// FindSnapshot returns the live snapshot for one recipient, or (nil, nil)
// when it does not exist.
func (r *GormRecipientReader) FindSnapshot(ctx context.Context, kind beneficiary.RecipientKind, id uuid.UUID) (*beneficiary.RecipientSnapshot, error) {
	switch kind {
	case beneficiary.RecipientKindOrphan:
		var model models.OrphanModel
		if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		snapshot := model.ToDomain().Snapshot()
		return &snapshot, nil

	case beneficiary.RecipientKindCampaign:
		var model models.CampaignModel
		if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		snapshot := model.ToDomain().Snapshot()
		return &snapshot, nil
	}

	return nil, shared.NewDomainError("INVALID_RECIPIENT_KIND", "Unknown recipient kind")
}

// Ensure GormRecipientReader implements beneficiary.RecipientReader
var _ beneficiary.RecipientReader = (*GormRecipientReader)(nil)
