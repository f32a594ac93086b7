package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pulseauto/internal/model"
	"pulseauto/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type StatisticsService interface {
	GetAdminStats(ctx context.Context, dealerID string) (model.AdminStats, error)
}

type statisticsService struct {
	statsRepo repository.StatisticsRepository
	cache     repository.CacheRepository
	ttl       time.Duration
	logger    *zap.Logger
}

func NewStatisticsService(
	statsRepo repository.StatisticsRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) StatisticsService {
	return &statisticsService{statsRepo: statsRepo, cache: cache, ttl: ttl, logger: logger}
}

func statsCacheKey(dealerID string) string {
	return "admin_stats:" + dealerID
}

// GetAdminStats aggregates dashboard counts, serving from cache while the entry is fresh
func (s *statisticsService) GetAdminStats(ctx context.Context, dealerID string) (model.AdminStats, error) {
	key := statsCacheKey(dealerID)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var stats model.AdminStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return stats, nil
		}
		s.logger.Warn("Discarding unreadable stats cache entry", zap.String("key", key))
	}

	stats, err := s.aggregate(ctx, dealerID)
	if err != nil {
		return model.AdminStats{}, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
			s.logger.Warn("Failed to cache admin stats", zap.String("key", key), zap.Error(err))
		}
	}
	return stats, nil
}

func (s *statisticsService) aggregate(ctx context.Context, dealerID string) (model.AdminStats, error) {
	var stats model.AdminStats
	var avgPrice float64

	g, gctx := errgroup.WithContext(ctx)
	counts := []struct {
		dst   *int64
		query func(context.Context, string, string) (int64, error)
		state string
	}{
		{&stats.Vehicles.Total, s.statsRepo.CountVehicles, ""},
		{&stats.Vehicles.Available, s.statsRepo.CountVehicles, model.VehicleStatusAvailable},
		{&stats.Vehicles.Sold, s.statsRepo.CountVehicles, model.VehicleStatusSold},
		{&stats.Leads.Total, s.statsRepo.CountLeads, ""},
		{&stats.Leads.New, s.statsRepo.CountLeads, model.LeadStatusNew},
		{&stats.Deals.Total, s.statsRepo.CountDeals, ""},
		{&stats.Deals.Pending, s.statsRepo.CountDeals, model.DealStatusPending},
	}
	for _, c := range counts {
		g.Go(func() error {
			n, err := c.query(gctx, dealerID, c.state)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	g.Go(func() error {
		avg, err := s.statsRepo.AverageVehiclePrice(gctx, dealerID)
		if err != nil {
			return err
		}
		avgPrice = avg
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.AdminStats{}, fmt.Errorf("failed to aggregate admin stats: %w", err)
	}

	stats.Vehicles.AveragePrice = decimal.NewFromFloat(avgPrice).RoundBank(2).InexactFloat64()
	return stats, nil
}
