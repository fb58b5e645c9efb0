package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"coffeeshop-pos/internal/domain"
	"coffeeshop-pos/internal/mocks"
	"coffeeshop-pos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReportService_TopItems_cacheHit(t *testing.T) {
	repository := mocks.NewReportRepository(t)
	menu := mocks.NewMenuReader(t)
	audit := mocks.NewAuditRepository(t)
	cache := mocks.NewReportCache(t)
	svc := service.NewReportService(repository, menu, audit, cache)

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	cache.On("TopItemQuantities", ctx, "2026-08-31", 5).
		Return(map[int]int{1: 12, 2: 30}, nil).Once()
	menu.On("GetMenuItem", 1).Return(&domain.MenuItem{ID: 1, Name: "Flat White"}, nil).Once()
	menu.On("GetMenuItem", 2).Return(&domain.MenuItem{ID: 2, Name: "Cold Brew"}, nil).Once()

	items, err := svc.TopItems(ctx, day, 5)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Cold Brew", items[0].MenuItemName)
	assert.Equal(t, 30, items[0].QuantitySold)
	assert.Equal(t, "Flat White", items[1].MenuItemName)
}

func TestReportService_TopItems_fallsBackToPostgres(t *testing.T) {
	repository := mocks.NewReportRepository(t)
	menu := mocks.NewMenuReader(t)
	audit := mocks.NewAuditRepository(t)
	cache := mocks.NewReportCache(t)
	svc := service.NewReportService(repository, menu, audit, cache)

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	expected := []domain.TopItem{{MenuItemID: 4, MenuItemName: "Mocha", QuantitySold: 9}}

	cache.On("TopItemQuantities", ctx, "2026-08-31", 5).
		Return(nil, errors.New("redis unreachable")).Once()
	repository.On("TopItems", day, 5).Return(expected, nil).Once()

	items, err := svc.TopItems(ctx, day, 5)
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestReportService_DailySales(t *testing.T) {
	repository := mocks.NewReportRepository(t)
	menu := mocks.NewMenuReader(t)
	audit := mocks.NewAuditRepository(t)
	cache := mocks.NewReportCache(t)
	svc := service.NewReportService(repository, menu, audit, cache)

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	expected := &domain.DailySalesReport{
		Date:       "2026-08-31",
		OrderCount: 18,
		GrossSales: decimal.NewFromFloat(1240.50),
	}

	repository.On("DailySalesSummary", day).Return(expected, nil).Once()

	report, err := svc.DailySales(day)
	assert.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestReportService_LatestOrderNumber(t *testing.T) {
	repository := mocks.NewReportRepository(t)
	menu := mocks.NewMenuReader(t)
	audit := mocks.NewAuditRepository(t)
	cache := mocks.NewReportCache(t)
	svc := service.NewReportService(repository, menu, audit, cache)

	ctx := context.Background()
	cache.On("LatestOrderNumber", ctx).Return("ORD-20260831-0042", nil).Once()

	number, err := svc.LatestOrderNumber(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "ORD-20260831-0042", number)
}
