package repo

import (
	"gorm.io/gorm"
)

// GormRepo is the single store access point; every query goes through it
// with the request context attached.
type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
