package service

import (
	"context"
	"sort"
	"time"

	"coffeeshop-pos/internal/domain"
)

type ReportService struct {
	repo  ReportRepository
	menu  MenuReader
	audit AuditRepository
	cache ReportCache
}

func NewReportService(repo ReportRepository, menu MenuReader, audit AuditRepository, cache ReportCache) *ReportService {
	return &ReportService{repo: repo, menu: menu, audit: audit, cache: cache}
}

func (s *ReportService) DailySales(day time.Time) (*domain.DailySalesReport, error) {
	return s.repo.DailySalesSummary(day)
}

// TopItems reads the aggregator's Redis ZSET first and falls back to a
// Postgres aggregation when the cache is cold or unreachable.
func (s *ReportService) TopItems(ctx context.Context, day time.Time, limit int) ([]domain.TopItem, error) {
	if s.cache != nil {
		quantities, err := s.cache.TopItemQuantities(ctx, day.Format("2006-01-02"), limit)
		if err == nil && len(quantities) > 0 {
			return s.resolveTopItems(quantities), nil
		}
	}
	return s.repo.TopItems(day, limit)
}

func (s *ReportService) resolveTopItems(quantities map[int]int) []domain.TopItem {
	items := make([]domain.TopItem, 0, len(quantities))
	for id, qty := range quantities {
		item := domain.TopItem{MenuItemID: id, QuantitySold: qty}
		if menuItem, err := s.menu.GetMenuItem(id); err == nil {
			item.MenuItemName = menuItem.Name
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].QuantitySold > items[j].QuantitySold
	})
	return items
}

func (s *ReportService) SalesHistory(from, to *time.Time) ([]domain.SalesLog, error) {
	return s.audit.ListSalesLogs(from, to)
}

func (s *ReportService) ActivityHistory(limit int) ([]domain.ActivityLog, error) {
	return s.audit.ListActivityLogs(limit)
}

func (s *ReportService) LatestOrderNumber(ctx context.Context) (string, error) {
	if s.cache == nil {
		return "", nil
	}
	return s.cache.LatestOrderNumber(ctx)
}

var _ ReportServiceInterface = (*ReportService)(nil)
