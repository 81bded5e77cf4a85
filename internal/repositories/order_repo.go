package repositories

import (
	"storeadmin/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// created by the storefront; the admin service lists them, reads details and
// updates status. GetAll returns orders ordered by creation time, newest
// first. Line items are read-only snapshots.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetItems(orderID string) ([]models.OrderItem, error)
	Create(order *models.Order, items []models.OrderItem) error
	UpdateStatus(id string, status string) error
}
