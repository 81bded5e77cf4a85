package models

import "time"

// Product represents a product in the store catalog.
// An image URL must be set before a product may be created.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"gte=0"`
	Category    string    `json:"category" gorm:"type:varchar(100)" validate:"required"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(512)" validate:"required,url"`
	Stock       int       `json:"stock" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
