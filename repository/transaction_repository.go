package repository

import (
	"canteen/entity"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) Save(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Save(t).Error
}

// ExistsByOrderID is the fast path in front of the unique index on
// order_id; the index stays authoritative under races. Takes the caller's
// handle so the check shares the transaction with the insert it guards.
func (r *TransactionRepository) ExistsByOrderID(tx *gorm.DB, orderID uint) (bool, error) {
	var count int64
	err := tx.Model(&entity.Transaction{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *TransactionRepository) FindByID(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.DB.
		Preload("Order").
		Preload("Employee").
		Preload("MenuItem").
		First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) FindAll() ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := r.DB.
		Preload("Order").
		Preload("Employee").
		Preload("MenuItem").
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *TransactionRepository) FindByMenuBusinessID(menuID string) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := r.DB.
		Preload("Order").
		Preload("Employee").
		Preload("MenuItem").
		Joins("JOIN menu_items ON menu_items.id = transactions.menu_item_id").
		Where("menu_items.menu_id = ?", menuID).
		Find(&txns).Error
	return txns, err
}

// FindByEmployeeBusinessID runs on the caller's handle; billing reads it
// both standalone and inside the bill-generation transaction.
func (r *TransactionRepository) FindByEmployeeBusinessID(tx *gorm.DB, employeeID string) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := tx.
		Preload("Order").
		Preload("Employee").
		Preload("MenuItem").
		Joins("JOIN employees ON employees.id = transactions.employee_id").
		Where("employees.employee_id = ?", employeeID).
		Order("transactions.created_at").
		Find(&txns).Error
	return txns, err
}

// FindAllBilledEmployees lists distinct employee ids and names appearing in
// the ledger, for the admin billing screen.
type BilledEmployee struct {
	EmployeeID string `json:"employeeId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}

func (r *TransactionRepository) FindAllBilledEmployees() ([]BilledEmployee, error) {
	var rows []BilledEmployee
	err := r.DB.Model(&entity.Transaction{}).
		Distinct("employees.employee_id, employees.first_name, employees.last_name").
		Joins("JOIN employees ON employees.id = transactions.employee_id").
		Scan(&rows).Error
	return rows, err
}
