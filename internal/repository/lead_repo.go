package repository

import (
	"context"

	"pulseauto/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	Update(ctx context.Context, lead *model.Lead) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, filter model.LeadFilter) ([]model.Lead, int64, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	return GetDB(ctx, r.db).Create(lead).Error
}

func (r *leadRepository) Update(ctx context.Context, lead *model.Lead) error {
	return GetDB(ctx, r.db).Save(lead).Error
}

func (r *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var lead model.Lead
	if err := GetDB(ctx, r.db).First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends
func (r *leadRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var lead model.Lead
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) List(ctx context.Context, filter model.LeadFilter) ([]model.Lead, int64, error) {
	var leads []model.Lead
	var total int64

	scoped := func() *gorm.DB {
		query := GetDB(ctx, r.db).Model(&model.Lead{})
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.DealerID != "" {
			query = query.Where("dealer_id = ?", filter.DealerID)
		}
		return query
	}

	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := scoped().Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&leads).Error; err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}
