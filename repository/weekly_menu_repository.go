package repository

import (
	"time"

	"canteen/entity"

	"gorm.io/gorm"
)

type WeeklyMenuRepository struct {
	DB *gorm.DB
}

func NewWeeklyMenuRepository(db *gorm.DB) *WeeklyMenuRepository {
	return &WeeklyMenuRepository{DB: db}
}

func (r *WeeklyMenuRepository) Create(wm *entity.WeeklyMenu) error {
	return r.DB.Create(wm).Error
}

func (r *WeeklyMenuRepository) CreateAll(items []entity.WeeklyMenu) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.Create(&items).Error
}

// FindForDay returns schedule entries whose week contains the date,
// optionally narrowed to one weekday and meal category.
func (r *WeeklyMenuRepository) FindForDay(date time.Time, dayOfWeek, category string) ([]entity.WeeklyMenu, error) {
	q := r.DB.
		Preload("MenuItem").
		Where("week_start_date <= ? AND week_end_date >= ?", date, date)
	if dayOfWeek != "" {
		q = q.Where("day_of_week = ?", dayOfWeek)
	}
	if category != "" {
		q = q.Where("meal_category = ?", category)
	}
	var items []entity.WeeklyMenu
	err := q.Find(&items).Error
	return items, err
}

func (r *WeeklyMenuRepository) FindBetween(start, end time.Time) ([]entity.WeeklyMenu, error) {
	var items []entity.WeeklyMenu
	err := r.DB.
		Preload("MenuItem").
		Where("week_start_date >= ? AND week_end_date <= ?", start, end).
		Find(&items).Error
	return items, err
}

func (r *WeeklyMenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.WeeklyMenu{}, id).Error
}
