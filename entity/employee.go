package entity

import (
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	EmployeeID   string `gorm:"uniqueIndex;not null" json:"employeeId"` // business id, stable across modules
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Department   string `json:"department"`
	CustomerType string `json:"customerType"`
	IsAdmin      bool   `json:"isAdmin"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
	Active       bool   `gorm:"default:true" json:"active"`

	Orders       []Order       `json:"-"`
	Transactions []Transaction `json:"-"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) Role() string {
	switch {
	case e.IsSuperAdmin:
		return "superadmin"
	case e.IsAdmin:
		return "admin"
	default:
		return "employee"
	}
}
