package db

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/morcel/product-catalog/internal/hash"
	"github.com/morcel/product-catalog/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestSeedAdmin(t *testing.T) {
	db := initTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedAdmin(ctx, db, "root", "hunter2"))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "root").First(&admin).Error)
	require.Equal(t, "admin", admin.Role)
	require.True(t, hash.CheckPassword(admin.PasswordHash, "hunter2"))

	// a second run must not create a duplicate or rewrite the hash
	require.NoError(t, SeedAdmin(ctx, db, "root", "changed"))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSeedAdminDisabled(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, SeedAdmin(context.Background(), db, "", ""))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}
