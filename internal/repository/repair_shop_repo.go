package repository

import (
	"context"
	"encoding/json"

	"pulseauto/internal/model"

	"gorm.io/gorm"
)

type RepairShopRepository interface {
	Create(ctx context.Context, shop *model.RepairShop) error
	List(ctx context.Context, filter model.RepairShopFilter) ([]model.RepairShop, error)
}

type repairShopRepository struct {
	db *gorm.DB
}

func NewRepairShopRepository(db *gorm.DB) RepairShopRepository {
	return &repairShopRepository{db: db}
}

func (r *repairShopRepository) Create(ctx context.Context, shop *model.RepairShop) error {
	return GetDB(ctx, r.db).Create(shop).Error
}

const maxRepairShops = 1000

func (r *repairShopRepository) List(ctx context.Context, filter model.RepairShopFilter) ([]model.RepairShop, error) {
	var shops []model.RepairShop

	query := GetDB(ctx, r.db).Model(&model.RepairShop{})
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.State != "" {
		query = query.Where("state ILIKE ?", "%"+filter.State+"%")
	}
	if filter.ZipCode != "" {
		query = query.Where("zip_code = ?", filter.ZipCode)
	}
	if filter.Service != "" {
		// jsonb containment: services contains the single requested service
		contains, err := json.Marshal([]string{filter.Service})
		if err != nil {
			return nil, err
		}
		query = query.Where("services @> ?::jsonb", string(contains))
	}

	if err := query.Order("rating DESC, name ASC").Limit(maxRepairShops).Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}
