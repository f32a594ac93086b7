package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulseauto/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{
		counts: map[string]int64{
			"vehicles:":          12,
			"vehicles:Available": 9,
			"vehicles:Sold":      3,
			"leads:":             20,
			"leads:New":          7,
			"deals:":             5,
			"deals:Pending":      2,
		},
		average: 31250.125,
	}
}

func TestGetAdminStatsAggregates(t *testing.T) {
	repo := sampleStatsRepo()
	svc := NewStatisticsService(repo, repository.NewMemoryCache(), time.Minute, zap.NewNop())

	stats, err := svc.GetAdminStats(context.Background(), "dealer-1")
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.Vehicles.Total)
	assert.Equal(t, int64(9), stats.Vehicles.Available)
	assert.Equal(t, int64(3), stats.Vehicles.Sold)
	assert.Equal(t, 31250.12, stats.Vehicles.AveragePrice)
	assert.Equal(t, int64(20), stats.Leads.Total)
	assert.Equal(t, int64(7), stats.Leads.New)
	assert.Equal(t, int64(5), stats.Deals.Total)
	assert.Equal(t, int64(2), stats.Deals.Pending)
	assert.Equal(t, 8, repo.calls)
}

func TestGetAdminStatsServesFromCachePerDealer(t *testing.T) {
	repo := sampleStatsRepo()
	svc := NewStatisticsService(repo, repository.NewMemoryCache(), time.Minute, zap.NewNop())

	first, err := svc.GetAdminStats(context.Background(), "dealer-1")
	require.NoError(t, err)
	second, err := svc.GetAdminStats(context.Background(), "dealer-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 8, repo.calls)

	_, err = svc.GetAdminStats(context.Background(), "dealer-2")
	require.NoError(t, err)
	assert.Equal(t, 16, repo.calls)
}

func TestGetAdminStatsPropagatesErrors(t *testing.T) {
	repo := sampleStatsRepo()
	repo.err = errDatabaseDown
	cache := repository.NewMemoryCache()
	svc := NewStatisticsService(repo, cache, time.Minute, zap.NewNop())

	_, err := svc.GetAdminStats(context.Background(), "")
	assert.True(t, errors.Is(err, errDatabaseDown))

	_, cached := cache.Get(context.Background(), statsCacheKey(""))
	assert.False(t, cached)
}
