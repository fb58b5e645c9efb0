package service

import (
	"errors"
	"strconv"

	"coffeeshop-pos/internal/domain"
)

var ErrInvalidPrice = errors.New("price must not be negative")

type MenuService struct {
	repo     MenuRepository
	activity ActivityRecorder
}

func NewMenuService(repo MenuRepository, activity ActivityRecorder) *MenuService {
	return &MenuService{repo: repo, activity: activity}
}

func (s *MenuService) CreateCategory(actor *domain.Profile, cat *domain.Category) error {
	if err := s.repo.CreateCategory(cat); err != nil {
		return err
	}
	s.activity.Record("category_created", "Created category "+cat.Name, actorID(actor),
		map[string]string{"category_id": strconv.Itoa(cat.ID)})
	return nil
}

func (s *MenuService) ListCategories() ([]domain.Category, error) {
	return s.repo.ListCategories()
}

func (s *MenuService) GetCategory(id int) (*domain.Category, error) {
	return s.repo.GetCategory(id)
}

func (s *MenuService) UpdateCategory(actor *domain.Profile, cat *domain.Category) error {
	if err := s.repo.UpdateCategory(cat); err != nil {
		return err
	}
	s.activity.Record("category_updated", "Updated category "+cat.Name, actorID(actor),
		map[string]string{"category_id": strconv.Itoa(cat.ID)})
	return nil
}

func (s *MenuService) DeleteCategory(actor *domain.Profile, id int) (int64, error) {
	rows, err := s.repo.DeleteCategory(id)
	if err != nil || rows == 0 {
		return rows, err
	}
	s.activity.Record("category_deleted", "Deleted category", actorID(actor),
		map[string]string{"category_id": strconv.Itoa(id)})
	return rows, nil
}

func (s *MenuService) CreateItem(actor *domain.Profile, item *domain.MenuItem) error {
	if item.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if err := s.repo.CreateMenuItem(item); err != nil {
		return err
	}
	s.activity.Record("menu_item_created", "Created menu item "+item.Name, actorID(actor),
		map[string]string{"menu_item_id": strconv.Itoa(item.ID)})
	return nil
}

func (s *MenuService) ListItems(categoryID *int, availableOnly bool) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(categoryID, availableOnly)
}

func (s *MenuService) GetItem(id int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(id)
}

func (s *MenuService) UpdateItem(actor *domain.Profile, item *domain.MenuItem) error {
	if item.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if err := s.repo.UpdateMenuItem(item); err != nil {
		return err
	}
	s.activity.Record("menu_item_updated", "Updated menu item "+item.Name, actorID(actor),
		map[string]string{"menu_item_id": strconv.Itoa(item.ID)})
	return nil
}

func (s *MenuService) DeleteItem(actor *domain.Profile, id int) (int64, error) {
	rows, err := s.repo.DeleteMenuItem(id)
	if err != nil || rows == 0 {
		return rows, err
	}
	s.activity.Record("menu_item_deleted", "Deleted menu item", actorID(actor),
		map[string]string{"menu_item_id": strconv.Itoa(id)})
	return rows, nil
}

func (s *MenuService) SetItemAvailability(actor *domain.Profile, id int, available bool) error {
	if err := s.repo.SetMenuItemAvailability(id, available); err != nil {
		return err
	}
	s.activity.Record("menu_item_updated", "Changed menu item availability", actorID(actor),
		map[string]string{
			"menu_item_id": strconv.Itoa(id),
			"is_available": strconv.FormatBool(available),
		})
	return nil
}

func actorID(actor *domain.Profile) *int {
	if actor == nil {
		return nil
	}
	return &actor.UserID
}

var _ MenuServiceInterface = (*MenuService)(nil)
