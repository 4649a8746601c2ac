package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrphanageRepository implements OrphanageRepository using GORM
type GormOrphanageRepository struct {
	db *gorm.DB
}

// NewGormOrphanageRepository creates a new GormOrphanageRepository
func NewGormOrphanageRepository(db *gorm.DB) *GormOrphanageRepository {
	return &GormOrphanageRepository{db: db}
}

// FindByID finds an orphanage by its ID
func (r *GormOrphanageRepository) FindByID(ctx context.Context, id uuid.UUID) (*beneficiary.Orphanage, error) {
	var model models.OrphanageModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all orphanages matching the filter
func (r *GormOrphanageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]beneficiary.Orphanage, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrphanageModel{})
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ?", searchPattern)
	}

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
		query = query.Order("name ASC")
	}

	var orphanageModels []models.OrphanageModel
	if err := query.Find(&orphanageModels).Error; err != nil {
		return nil, 0, err
	}

	orphanages := make([]beneficiary.Orphanage, len(orphanageModels))
	for i, model := range orphanageModels {
		orphanages[i] = *model.ToDomain()
	}
	return orphanages, total, nil
}

// Save persists an orphanage record
func (r *GormOrphanageRepository) Save(ctx context.Context, orphanage *beneficiary.Orphanage) error {
	var model models.OrphanageModel
	model.FromDomain(orphanage)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Ensure GormOrphanageRepository implements OrphanageRepository
var _ beneficiary.OrphanageRepository = (*GormOrphanageRepository)(nil)
