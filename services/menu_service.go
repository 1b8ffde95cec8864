package services

import (
	"errors"
	"sort"
	"time"

	"canteen/entity"
	"canteen/pkg/apperr"
	"canteen/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuItemRepository

	now func() time.Time
}

func NewMenuService(repo *repository.MenuItemRepository) *MenuService {
	return &MenuService{Repo: repo, now: time.Now}
}

type MenuItemRequest struct {
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	Price           float64   `json:"price"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Categories      []string  `json:"categories"`
	AvailableStatus bool      `json:"availableStatus"`
}

// CreateMenuItem writes one row per requested category. The rows share
// nothing but the name; each gets its own menu id and lives its own life.
// Returns the row for the first category.
func (s *MenuService) CreateMenuItem(req *MenuItemRequest, createdBy string) (*entity.MenuItem, error) {
	if len(req.Categories) == 0 {
		return nil, apperr.InvalidRequest("at least one category must be specified")
	}

	var first *entity.MenuItem
	for _, category := range req.Categories {
		item := &entity.MenuItem{
			Name:            req.Name,
			Description:     req.Description,
			Quantity:        req.Quantity,
			Unit:            req.Unit,
			Price:           req.Price,
			StartDate:       req.StartDate,
			EndDate:         req.EndDate,
			Category:        category,
			AvailableStatus: req.AvailableStatus,
			CreatedBy:       createdBy,
		}
		if err := s.Repo.Create(item); err != nil {
			return nil, err
		}
		if first == nil {
			first = item
		}
	}

	first.RefreshActive(s.now())
	return first, nil
}

// UpdateMenuItem mutates the row in place for everything except a price
// change. A price change never touches the stored price: it opens a new
// price epoch as a fresh row (same category, original creator) and leaves
// the old row behind as history.
func (s *MenuService) UpdateMenuItem(id uint, req *MenuItemRequest, updatedBy string) (*entity.MenuItem, error) {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item")
		}
		return nil, err
	}

	if existing.Price != req.Price {
		newItem := &entity.MenuItem{
			Name:            req.Name,
			Description:     req.Description,
			Quantity:        req.Quantity,
			Unit:            req.Unit,
			Price:           req.Price,
			StartDate:       req.StartDate,
			EndDate:         req.EndDate,
			Category:        existing.Category,
			AvailableStatus: req.AvailableStatus,
			CreatedBy:       existing.CreatedBy,
			UpdatedBy:       updatedBy,
		}
		if err := s.Repo.Create(newItem); err != nil {
			return nil, err
		}
		newItem.RefreshActive(s.now())
		return newItem, nil
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Quantity = req.Quantity
	existing.Unit = req.Unit
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate
	existing.AvailableStatus = req.AvailableStatus
	existing.UpdatedBy = updatedBy
	if err := s.Repo.Save(existing); err != nil {
		return nil, err
	}

	existing.RefreshActive(s.now())
	return existing, nil
}

type PriceHistoryEntry struct {
	ID              uint      `json:"id"`
	MenuID          string    `json:"menuId"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
	AvailableStatus bool      `json:"availableStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
	AllCategories   []string  `json:"allCategories"`
}

// GetPriceHistory returns every price epoch of the named item, newest
// first, optionally narrowed to one category. AllCategories always covers
// the whole name so the UI can offer the category switch.
func (s *MenuService) GetPriceHistory(name, category string) ([]PriceHistoryEntry, error) {
	all, err := s.Repo.FindByNameNewestFirst(name)
	if err != nil {
		return nil, err
	}

	catSet := make(map[string]struct{})
	for _, item := range all {
		catSet[item.Category] = struct{}{}
	}
	categories := make([]string, 0, len(catSet))
	for c := range catSet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	now := s.now()
	entries := make([]PriceHistoryEntry, 0, len(all))
	for _, item := range all {
		if category != "" && item.Category != category {
			continue
		}
		entries = append(entries, PriceHistoryEntry{
			ID:              item.ID,
			MenuID:          item.MenuID,
			Name:            item.Name,
			Category:        item.Category,
			Price:           item.Price,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			StartDate:       item.StartDate,
			EndDate:         item.EndDate,
			IsActive:        item.ActiveAt(now),
			AvailableStatus: item.AvailableStatus,
			CreatedAt:       item.CreatedAt,
			CreatedBy:       item.CreatedBy,
			AllCategories:   categories,
		})
	}
	return entries, nil
}

func (s *MenuService) GetActiveMenuItems(asOf time.Time, category string) ([]entity.MenuItem, error) {
	items, err := s.Repo.FindActiveOnDate(asOf, category)
	if err != nil {
		return nil, err
	}
	s.refreshAll(items)
	return items, nil
}

func (s *MenuService) GetMenuItemsWithFilters(f repository.MenuItemFilter) ([]entity.MenuItem, error) {
	items, err := s.Repo.FindWithFilters(f)
	if err != nil {
		return nil, err
	}
	s.refreshAll(items)
	return items, nil
}

func (s *MenuService) GetAllMenuItems() ([]entity.MenuItem, error) {
	items, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	s.refreshAll(items)
	return items, nil
}

func (s *MenuService) UpdateAvailability(id uint, available bool, updatedBy string) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item")
		}
		return nil, err
	}

	item.AvailableStatus = available
	item.UpdatedBy = updatedBy
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}

	item.RefreshActive(s.now())
	return item, nil
}

// DeleteMenuItem hard-deletes one physical row and with it that slice of
// the item's price history. There is no soft delete to recover from.
func (s *MenuService) DeleteMenuItem(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu item")
		}
		return err
	}
	return s.Repo.Delete(id)
}

func (s *MenuService) refreshAll(items []entity.MenuItem) {
	now := s.now()
	for i := range items {
		items[i].RefreshActive(now)
	}
}
