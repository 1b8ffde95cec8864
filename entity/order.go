package entity

import (
	"time"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID uint     `gorm:"not null" json:"employeeId"`
	Employee   Employee `json:"employee"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity     int     `gorm:"not null" json:"quantity"`
	PriceAtOrder float64 `gorm:"column:price_at_order;not null" json:"priceAtOrder"` // permanent snapshot, never recomputed
	TotalPrice   float64 `gorm:"column:total_price;not null" json:"totalPrice"`

	OrderTime            time.Time   `gorm:"column:order_time;not null" json:"orderTime"`
	ExpectedDeliveryDate time.Time   `gorm:"column:expected_delivery_date" json:"expectedDeliveryDate"`
	Status               OrderStatus `gorm:"not null;default:PENDING" json:"status"`
	Remarks              string      `gorm:"type:text" json:"remarks"`
	CreatedBy            string      `gorm:"column:created_by;not null" json:"createdBy"`
}

// OrderSummary is the flattened row returned by free-text search.
type OrderSummary struct {
	ID                   uint        `json:"id"`
	Status               OrderStatus `json:"status"`
	TotalPrice           float64     `json:"totalPrice"`
	OrderTime            time.Time   `json:"orderTime"`
	ExpectedDeliveryDate time.Time   `json:"expectedDeliveryDate"`
	Remarks              string      `json:"remarks"`
	EmployeeName         string      `json:"employeeName"`
	ItemName             string      `json:"itemName"`
	EmployeeBusinessID   string      `json:"employeeBusinessId"`
	MenuBusinessID       string      `json:"menuBusinessId"`
}
