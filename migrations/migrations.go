package migrations

import (
	"fmt"

	"StoreHub/models"
	"StoreHub/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunMigrations creates or updates every table the catalog uses.
func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running migrations...")

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("failed to migrate User: %w", err)
	}
	if err := db.AutoMigrate(&models.Supplier{}); err != nil {
		return fmt.Errorf("failed to migrate Supplier: %w", err)
	}
	if err := db.AutoMigrate(&models.Category{}); err != nil {
		return fmt.Errorf("failed to migrate Category: %w", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate Product: %w", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		return fmt.Errorf("failed to migrate Order: %w", err)
	}
	if err := db.AutoMigrate(&models.OrderProduct{}); err != nil {
		return fmt.Errorf("failed to migrate OrderProduct: %w", err)
	}

	logrus.Info("Migrations completed successfully")
	return nil
}

// Seed creates the initial admin account when the users table is empty.
// Safe to run on every start.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin")
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     "admin",
		Email:        "admin@storehub.local",
		PasswordHash: &hash,
		AuthProvider: models.ProviderLocal,
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"email": admin.Email,
	}).Warn("Seeded default admin account, change its password")
	return nil
}
