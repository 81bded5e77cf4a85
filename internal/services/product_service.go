package services

import (
	"errors"
	"fmt"
	"log"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
)

// CategoryAll is the sentinel that selects the full, unfiltered catalog.
const CategoryAll = "All"

var (
	// ErrImageRequired rejects a product create before any insert is issued.
	ErrImageRequired = errors.New("an image must be uploaded before the product can be created")
	// ErrDeleteNotConfirmed rejects a delete that was not explicitly
	// confirmed by the operator. No delete is issued.
	ErrDeleteNotConfirmed = errors.New("product deletion requires explicit confirmation")
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. The event publisher may be
// nil, in which case no events are published.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetProducts retrieves products, newest first, optionally narrowed to one
// category. An empty category or the "All" sentinel returns the full list.
// The filter is an exact match applied over the loaded list.
func (s *ProductService) GetProducts(category string) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if category == "" || category == CategoryAll {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetCategories returns the distinct category values currently in the
// catalog, always prefixed with the "All" sentinel. Order follows first
// appearance in the product list.
func (s *ProductService) GetCategories() ([]string, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. A product without an image URL is
// rejected before the insert is issued.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.ImageURL == "" {
		return ErrImageRequired
	}

	if err := s.repo.Create(product); err != nil {
		return err
	}

	if s.events != nil {
		if err := s.events.PublishAdminEvent(EventProductCreated, product); err != nil {
			log.Printf("Warning: failed to publish product created event for %s: %v", product.ID, err)
		}
	}
	return nil
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID. The operator's confirmation is
// an explicit input: without it no delete is issued.
func (s *ProductService) DeleteProduct(id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// CountProducts returns the catalog size.
func (s *ProductService) CountProducts() (int64, error) {
	return s.repo.Count()
}
