package entity

import (
	"time"
)

// WeeklyMenu schedules an existing menu item row onto a day of a week.
// It only references MenuItem, never mutates it.
type WeeklyMenu struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	DayOfWeek     string    `gorm:"not null" json:"dayOfWeek"` // MONDAY..SUNDAY
	MealCategory  string    `json:"mealCategory"`
	WeekStartDate time.Time `gorm:"column:week_start_date;not null" json:"weekStartDate"`
	WeekEndDate   time.Time `gorm:"column:week_end_date;not null" json:"weekEndDate"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `gorm:"column:created_by" json:"createdBy"`
}
