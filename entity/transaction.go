package entity

import (
	"time"
)

// Transaction bills exactly one order. The unique index on OrderID is the
// authoritative idempotency guard; the repository's existence check is only
// a fast path in front of it.
type Transaction struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TransactionID string `gorm:"column:transaction_id;uniqueIndex;not null" json:"transactionId"`

	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`

	// Denormalized copies of the order's employee and menu item for query
	// convenience.
	EmployeeID uint     `json:"employeeId"`
	Employee   Employee `json:"employee"`
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"column:unit_price;not null" json:"unitPrice"`
	TotalPrice float64 `gorm:"column:total_price;not null" json:"totalPrice"`

	Status    TransactionStatus `gorm:"not null" json:"status"`
	Remarks   string            `gorm:"type:text" json:"remarks"`   // append-only log
	Responses string            `gorm:"type:text" json:"responses"` // append-only log

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `gorm:"column:created_by" json:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `gorm:"column:updated_by" json:"updatedBy"`
}

const logTimestampLayout = "2006-01-02T15:04:05"

// AddRemark appends a timestamped entry to the remarks log and forces the
// status to MODIFIED no matter what it was before, PAID included.
func (t *Transaction) AddRemark(remark, actor string) {
	t.Remarks = appendLogEntry(t.Remarks, remark, actor)
	t.Status = TxnModified
}

// AddResponse appends to the responses log. Status is left alone.
func (t *Transaction) AddResponse(response, actor string) {
	t.Responses = appendLogEntry(t.Responses, response, actor)
}

func appendLogEntry(log, text, actor string) string {
	entry := time.Now().Format(logTimestampLayout) + " - " + actor + ": " + text
	if log == "" {
		return entry
	}
	return log + "\n" + entry
}
