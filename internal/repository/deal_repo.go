package repository

import (
	"context"

	"pulseauto/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DealRepository interface {
	Create(ctx context.Context, deal *model.Deal) error
	Update(ctx context.Context, deal *model.Deal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Deal, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Deal, error)
	List(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error)
}

type dealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(ctx context.Context, deal *model.Deal) error {
	return GetDB(ctx, r.db).Create(deal).Error
}

func (r *dealRepository) Update(ctx context.Context, deal *model.Deal) error {
	return GetDB(ctx, r.db).Save(deal).Error
}

func (r *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Deal, error) {
	var deal model.Deal
	if err := GetDB(ctx, r.db).First(&deal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *dealRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Deal, error) {
	var deal model.Deal
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&deal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *dealRepository) List(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error) {
	var deals []model.Deal
	var total int64

	scoped := func() *gorm.DB {
		query := GetDB(ctx, r.db).Model(&model.Deal{})
		if filter.DealerID != "" {
			query = query.Where("dealer_id = ?", filter.DealerID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		return query
	}

	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := scoped().Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&deals).Error; err != nil {
		return nil, 0, err
	}

	return deals, total, nil
}
