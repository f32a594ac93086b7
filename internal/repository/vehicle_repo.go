package repository

import (
	"context"

	"pulseauto/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	List(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, int64, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return GetDB(ctx, r.db).Create(vehicle).Error
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return GetDB(ctx, r.db).Save(vehicle).Error
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(GetDB(ctx, r.db), &model.Vehicle{}, id)
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := GetDB(ctx, r.db).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, int64, error) {
	var vehicles []model.Vehicle
	var total int64

	query := applyVehicleFilter(GetDB(ctx, r.db).Model(&model.Vehicle{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetchQuery := applyVehicleFilter(GetDB(ctx, r.db).Model(&model.Vehicle{}), filter)
	if err := fetchQuery.Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

func applyVehicleFilter(query *gorm.DB, filter model.VehicleFilter) *gorm.DB {
	if filter.Make != "" {
		query = query.Where("make ILIKE ?", "%"+filter.Make+"%")
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DealerID != "" {
		query = query.Where("dealer_id = ?", filter.DealerID)
	}
	return query
}
