package repository

import (
	"time"

	"canteen/entity"

	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindByMenuID(menuID string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Where("menu_id = ?", menuID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("name").Find(&items).Error
	return items, err
}

// FindByNameNewestFirst returns every price epoch of a logical item,
// newest creation first. This is the raw material of a price history.
func (r *MenuItemRepository) FindByNameNewestFirst(name string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("name = ?", name).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// FindActiveOnDate returns rows whose validity window contains the date,
// optionally narrowed to one category.
func (r *MenuItemRepository) FindActiveOnDate(date time.Time, category string) ([]entity.MenuItem, error) {
	q := r.DB.Where("start_date <= ? AND end_date >= ?", date, date)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

type MenuItemFilter struct {
	Name       string
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
	ActiveOnly bool
}

func (r *MenuItemRepository) FindWithFilters(f MenuItemFilter) ([]entity.MenuItem, error) {
	q := r.DB.Order("name")
	if f.Name != "" {
		q = q.Where("name LIKE ?", "%"+f.Name+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.StartDate != nil {
		q = q.Where("start_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("end_date <= ?", *f.EndDate)
	}
	if f.ActiveOnly {
		now := time.Now()
		q = q.Where("start_date <= ? AND end_date >= ?", now, now)
	}
	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

// Delete is a hard delete. The row's slice of price history is gone for
// good; the service warns callers about that.
func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
