package service

import (
	"errors"
	"fmt"
	"strconv"

	"coffeeshop-pos/internal/domain"
)

var ErrNegativeStock = errors.New("stock must not be negative")

type InventoryService struct {
	repo     InventoryRepository
	activity ActivityRecorder
}

func NewInventoryService(repo InventoryRepository, activity ActivityRecorder) *InventoryService {
	return &InventoryService{repo: repo, activity: activity}
}

func (s *InventoryService) Create(actor *domain.Profile, item *domain.InventoryItem) error {
	if item.CurrentStock < 0 {
		return ErrNegativeStock
	}
	if err := s.repo.CreateInventoryItem(item); err != nil {
		return err
	}
	s.refreshAlert(item.ID, item.CurrentStock, item.MinStockLevel)
	s.activity.Record("inventory_created", "Created inventory item "+item.ItemName, actorID(actor),
		map[string]string{"inventory_id": strconv.Itoa(item.ID)})
	return nil
}

func (s *InventoryService) List() ([]domain.InventoryItem, error) {
	return s.repo.ListInventoryItems()
}

func (s *InventoryService) Get(id int) (*domain.InventoryItem, error) {
	return s.repo.GetInventoryItem(id)
}

func (s *InventoryService) Update(actor *domain.Profile, item *domain.InventoryItem) error {
	if err := s.repo.UpdateInventoryItem(item); err != nil {
		return err
	}
	s.activity.Record("inventory_updated", "Updated inventory item "+item.ItemName, actorID(actor),
		map[string]string{"inventory_id": strconv.Itoa(item.ID)})
	return nil
}

func (s *InventoryService) Delete(actor *domain.Profile, id int) (int64, error) {
	rows, err := s.repo.DeleteInventoryItem(id)
	if err != nil || rows == 0 {
		return rows, err
	}
	s.activity.Record("inventory_deleted", "Deleted inventory item", actorID(actor),
		map[string]string{"inventory_id": strconv.Itoa(id)})
	return rows, nil
}

// UpdateStock sets the new stock value and recomputes the active alert
// against it. A write that leaves the value unchanged does not touch
// alerting, mirroring the no-op condition of the original trigger.
func (s *InventoryService) UpdateStock(actor *domain.Profile, id, newStock int, restocked bool) (*domain.InventoryItem, error) {
	if newStock < 0 {
		return nil, ErrNegativeStock
	}

	item, err := s.repo.GetInventoryItem(id)
	if err != nil {
		return nil, err
	}

	previous, err := s.repo.UpdateStock(id, newStock, restocked)
	if err != nil {
		return nil, err
	}

	if previous != newStock {
		s.refreshAlert(id, newStock, item.MinStockLevel)
		s.activity.Record("stock_updated",
			fmt.Sprintf("Stock of %s changed from %d to %d", item.ItemName, previous, newStock),
			actorID(actor),
			map[string]string{
				"inventory_id": strconv.Itoa(id),
				"old_stock":    strconv.Itoa(previous),
				"new_stock":    strconv.Itoa(newStock),
			})
	}

	return s.repo.GetInventoryItem(id)
}

// refreshAlert is best-effort: a failed alert write never fails the stock
// update itself.
func (s *InventoryService) refreshAlert(inventoryID, stock, minLevel int) {
	level := domain.AlertLevelFor(stock, minLevel)
	if level == domain.AlertNone {
		_ = s.repo.ClearActiveAlert(inventoryID)
		return
	}
	_ = s.repo.UpsertActiveAlert(inventoryID, level)
}

func (s *InventoryService) ListAlerts(unacknowledgedOnly bool) ([]domain.LowStockAlert, error) {
	return s.repo.ListAlerts(unacknowledgedOnly)
}

func (s *InventoryService) AcknowledgeAlert(actor *domain.Profile, alertID int) error {
	userID := 0
	if actor != nil {
		userID = actor.UserID
	}
	if err := s.repo.AcknowledgeAlert(alertID, userID); err != nil {
		return err
	}
	s.activity.Record("alert_acknowledged", "Acknowledged low-stock alert", actorID(actor),
		map[string]string{"alert_id": strconv.Itoa(alertID)})
	return nil
}

var _ InventoryServiceInterface = (*InventoryService)(nil)
