package repository

import (
	"context"
	"fmt"

	"pulseauto/internal/model"

	"gorm.io/gorm"
)

// StatisticsRepository answers the admin dashboard's aggregate queries.
// An empty dealerID or status means "any".
type StatisticsRepository interface {
	CountVehicles(ctx context.Context, dealerID, status string) (int64, error)
	AverageVehiclePrice(ctx context.Context, dealerID string) (float64, error)
	CountLeads(ctx context.Context, dealerID, status string) (int64, error)
	CountDeals(ctx context.Context, dealerID, status string) (int64, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) CountVehicles(ctx context.Context, dealerID, status string) (int64, error) {
	return r.count(ctx, &model.Vehicle{}, dealerID, status)
}

func (r *statisticsRepository) CountLeads(ctx context.Context, dealerID, status string) (int64, error) {
	return r.count(ctx, &model.Lead{}, dealerID, status)
}

func (r *statisticsRepository) CountDeals(ctx context.Context, dealerID, status string) (int64, error) {
	return r.count(ctx, &model.Deal{}, dealerID, status)
}

func (r *statisticsRepository) AverageVehiclePrice(ctx context.Context, dealerID string) (float64, error) {
	var result struct {
		Value float64
	}
	query := r.db.WithContext(ctx).Model(&model.Vehicle{}).Select("COALESCE(AVG(price), 0) as value")
	if dealerID != "" {
		query = query.Where("dealer_id = ?", dealerID)
	}
	if err := query.Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to average vehicle price: %w", err)
	}
	return result.Value, nil
}

func (r *statisticsRepository) count(ctx context.Context, table interface{}, dealerID, status string) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(table)
	if dealerID != "" {
		query = query.Where("dealer_id = ?", dealerID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count %T: %w", table, err)
	}
	return total, nil
}
