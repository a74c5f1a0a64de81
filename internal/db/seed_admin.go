package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/morcel/product-catalog/internal/hash"
	"github.com/morcel/product-catalog/internal/models"
)

// SeedAdmin ensures an admin account exists when credentials are configured.
// Idempotent: an already-present user with the same username is left as is.
func SeedAdmin(ctx context.Context, db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("looking up admin user: %w", err)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := models.User{
		Username:     username,
		PasswordHash: pwHash,
		Role:         "admin",
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	return nil
}
