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

// GormOrphanRepository implements OrphanRepository using GORM
type GormOrphanRepository struct {
	db *gorm.DB
}

// NewGormOrphanRepository creates a new GormOrphanRepository
func NewGormOrphanRepository(db *gorm.DB) *GormOrphanRepository {
	return &GormOrphanRepository{db: db}
}

// FindByID finds an orphan by its ID
func (r *GormOrphanRepository) FindByID(ctx context.Context, id uuid.UUID) (*beneficiary.Orphan, error) {
	var model models.OrphanModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all orphans matching the filter
func (r *GormOrphanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]beneficiary.Orphan, int64, error) {
	return r.findWhere(ctx, r.db.WithContext(ctx).Model(&models.OrphanModel{}), filter)
}

// FindByOrphanage finds all orphans belonging to one orphanage
func (r *GormOrphanRepository) FindByOrphanage(ctx context.Context, orphanageID uuid.UUID, filter shared.Filter) ([]beneficiary.Orphan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrphanModel{}).Where("orphanage_id = ?", orphanageID)
	return r.findWhere(ctx, query, filter)
}

// Save persists an orphan record
func (r *GormOrphanRepository) Save(ctx context.Context, orphan *beneficiary.Orphan) error {
	var model models.OrphanModel
	model.FromDomain(orphan)
	return r.db.WithContext(ctx).Save(&model).Error
}

func (r *GormOrphanRepository) findWhere(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]beneficiary.Orphan, int64, error) {
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
		query = query.Order("name ASC")
	}

	var orphanModels []models.OrphanModel
	if err := query.Find(&orphanModels).Error; err != nil {
		return nil, 0, err
	}

	orphans := make([]beneficiary.Orphan, len(orphanModels))
	for i, model := range orphanModels {
		orphans[i] = *model.ToDomain()
	}
	return orphans, total, nil
}

func (r *GormOrphanRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR bio ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "gender":
			query = query.Where("gender = ?", value)
		case "country":
			query = query.Where("country = ?", value)
		case "is_sponsored":
			query = query.Where("is_sponsored = ?", value)
		}
	}

	return query
}

// Ensure GormOrphanRepository implements OrphanRepository
var _ beneficiary.OrphanRepository = (*GormOrphanRepository)(nil)
