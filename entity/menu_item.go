package entity

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MenuItem is one physical row per price epoch. A logical item (same name)
// accumulates rows over time as its price changes; old rows are the price
// history and are never rewritten.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MenuID      string    `gorm:"column:menu_id;uniqueIndex;not null" json:"menuId"` // business id, fixed at creation
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Quantity    float64   `gorm:"not null" json:"quantity"`
	Unit        string    `gorm:"not null" json:"unit"`
	Price       float64   `gorm:"not null" json:"price"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Category    string    `gorm:"not null" json:"category"` // breakfast, lunch, thali, snacks, beverages

	// Point-in-time calculation, never authoritative in the database.
	IsActive bool `gorm:"-" json:"isActive"`

	AvailableStatus bool `gorm:"default:true" json:"availableStatus"` // manual toggle, independent of the window

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.MenuID == "" {
		m.MenuID = NewMenuID(m.Name)
	}
	return nil
}

// NewMenuID derives the business identifier from the item name and the
// creation instant, e.g. "masala-dosa-1719820800000123456". Nanosecond
// resolution keeps ids distinct when one request creates several rows
// back to back; menu_id carries a unique index.
func NewMenuID(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	return fmt.Sprintf("%s-%d", slug, time.Now().UnixNano())
}

// ActiveAt reports whether the validity window contains t.
func (m *MenuItem) ActiveAt(t time.Time) bool {
	return !t.Before(m.StartDate) && !t.After(m.EndDate)
}

// RefreshActive recomputes IsActive for serialization. Call it on every
// read path; the stored column does not exist.
func (m *MenuItem) RefreshActive(now time.Time) {
	m.IsActive = m.ActiveAt(now)
}
