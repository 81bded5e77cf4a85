package repositories

import (
	"storeadmin/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetAll returns products ordered by creation time, newest first.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Count() (int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
