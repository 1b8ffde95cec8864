package repository

import (
	"time"

	"canteen/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) Save(tx *gorm.DB, order *entity.Order) error {
	return tx.Save(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.
		Preload("Employee").
		Preload("MenuItem").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByEmployee(employeeID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Employee").
		Preload("MenuItem").
		Where("employee_id = ?", employeeID).
		Order("order_time DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByEmployeeAndStatus(employeeID uint, status entity.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Employee").
		Preload("MenuItem").
		Where("employee_id = ? AND status = ?", employeeID, status).
		Order("order_time DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Employee").
		Preload("MenuItem").
		Where("status = ?", status).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByDeliveryDateBetween(start, end time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Employee").
		Preload("MenuItem").
		Where("expected_delivery_date BETWEEN ? AND ?", start, end).
		Find(&orders).Error
	return orders, err
}

// Search matches the term against remarks, item name, employee name and
// both business identifiers, returning flattened summaries.
func (r *OrderRepository) Search(term string) ([]entity.OrderSummary, error) {
	like := "%" + term + "%"
	var rows []entity.OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select(`orders.id, orders.status, orders.total_price, orders.order_time,
			orders.expected_delivery_date, orders.remarks,
			employees.first_name || ' ' || employees.last_name AS employee_name,
			menu_items.name AS item_name,
			employees.employee_id AS employee_business_id,
			menu_items.menu_id AS menu_business_id`).
		Joins("JOIN employees ON employees.id = orders.employee_id").
		Joins("JOIN menu_items ON menu_items.id = orders.menu_item_id").
		Where(`orders.remarks LIKE ? OR menu_items.name LIKE ?
			OR employees.first_name || ' ' || employees.last_name LIKE ?
			OR employees.employee_id LIKE ? OR menu_items.menu_id LIKE ?`,
			like, like, like, like, like).
		Scan(&rows).Error
	return rows, err
}

type OrderHistoryFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Department string
	Category   string
}

// FindHistory returns completed orders (delivered or cancelled) within the
// optional filters.
func (r *OrderRepository) FindHistory(f OrderHistoryFilter) ([]entity.Order, error) {
	q := r.DB.
		Preload("Employee").
		Preload("MenuItem").
		Joins("JOIN employees ON employees.id = orders.employee_id").
		Joins("JOIN menu_items ON menu_items.id = orders.menu_item_id").
		Where("orders.status IN ?", []entity.OrderStatus{entity.OrderDelivered, entity.OrderCancelled})
	if f.StartDate != nil {
		q = q.Where("orders.expected_delivery_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("orders.expected_delivery_date <= ?", *f.EndDate)
	}
	if f.Department != "" {
		q = q.Where("employees.department = ?", f.Department)
	}
	if f.Category != "" {
		q = q.Where("menu_items.category = ?", f.Category)
	}
	var orders []entity.Order
	err := q.Find(&orders).Error
	return orders, err
}

// FindByStatusWithoutTransaction returns orders in the given status that no
// transaction references yet. The sync job feeds on this from inside its
// transaction, so the handle comes from the caller.
func (r *OrderRepository) FindByStatusWithoutTransaction(tx *gorm.DB, status entity.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order
	err := tx.
		Preload("Employee").
		Preload("MenuItem").
		Joins("LEFT JOIN transactions ON transactions.order_id = orders.id").
		Where("orders.status = ? AND transactions.id IS NULL", status).
		Find(&orders).Error
	return orders, err
}
