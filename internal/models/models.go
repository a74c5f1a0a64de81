package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Email        string `json:"email"`
	Role         string `gorm:"not null;default:user"    json:"role"`
}

type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null"                 json:"name"`
	Description string `json:"description"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Quantity    uint      `gorm:"default:0"                json:"quantity"`
	CategoryID  uint      `gorm:"index;not null"           json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID"    json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
