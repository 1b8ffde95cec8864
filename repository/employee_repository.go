package repository

import (
	"canteen/entity"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) FindByID(id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByEmployeeID(employeeID string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.Where("employee_id = ?", employeeID).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByEmail(email string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.Where("email = ?", email).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Employee{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *EmployeeRepository) CountByEmployeeID(employeeID string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Employee{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count, err
}

func (r *EmployeeRepository) Create(e *entity.Employee) error {
	return r.DB.Create(e).Error
}

func (r *EmployeeRepository) Save(e *entity.Employee) error {
	return r.DB.Save(e).Error
}

func (r *EmployeeRepository) ListAll() ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.DB.Order("employee_id").Find(&employees).Error
	return employees, err
}

// ListCustomers returns every non-admin employee, the broadcast audience
// for notifications.
func (r *EmployeeRepository) ListCustomers() ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.DB.
		Where("is_admin = ? AND is_super_admin = ?", false, false).
		Find(&employees).Error
	return employees, err
}
