package configs

import (
	"log"

	"canteen/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env on a fresh database.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmployeeID == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMPLOYEE_ID/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Employee{}).Where("employee_id = ?", cfg.AdminEmployeeID).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmployeeID)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Employee{
		EmployeeID:   cfg.AdminEmployeeID,
		Email:        cfg.AdminEmail,
		Password:     string(hash),
		FirstName:    "Admin",
		LastName:     "Seed",
		Department:   "CANTEEN",
		CustomerType: "STAFF",
		IsAdmin:      true,
		IsSuperAdmin: true,
		Active:       true,
	}
	return db.Create(&admin).Error
}
