package services

import (
	"testing"
	"time"

	"canteen/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Employee{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.Transaction{},
		&entity.WeeklyMenu{},
		&entity.Feedback{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, employeeID string) *entity.Employee {
	t.Helper()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	e := &entity.Employee{
		EmployeeID: employeeID,
		Email:      employeeID + "@example.com",
		Password:   string(hashed),
		FirstName:  "Test",
		LastName:   "Employee",
		Department: "Engineering",
		Active:     true,
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return e
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) *entity.MenuItem {
	t.Helper()

	now := time.Now()
	item := &entity.MenuItem{
		Name:      name,
		Quantity:  1,
		Unit:      "plate",
		Price:     price,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 30),
		Category:  "lunch",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}
