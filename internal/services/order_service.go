package services

import (
	"fmt"
	"log"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
)

// Placeholders rendered when an order's owning profile is missing. Absent
// related rows are not an error.
const (
	unknownCustomerName  = "Unknown"
	unknownCustomerEmail = "-"
)

// validStatuses is the set of settable order statuses. There is no
// transition graph: staff may set any status from any other.
var validStatuses = map[string]bool{
	models.StatusPending:    true,
	models.StatusProcessing: true,
	models.StatusShipped:    true,
	models.StatusDelivered:  true,
	models.StatusCancelled:  true,
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	profileRepo repositories.ProfileRepository
	events      EventPublisher
}

// NewOrderService creates a new OrderService. The event publisher may be
// nil, in which case no events are published.
func NewOrderService(orderRepo repositories.OrderRepository, profileRepo repositories.ProfileRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		events:      events,
	}
}

// GetAllOrders retrieves all orders joined with their customers' identity,
// newest first. A failed profile lookup degrades every row to placeholders
// rather than failing the list.
func (s *OrderService) GetAllOrders() ([]models.OrderSummary, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	userIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.UserID != "" && !seen[o.UserID] {
			seen[o.UserID] = true
			userIDs = append(userIDs, o.UserID)
		}
	}

	profilesByID := make(map[string]models.Profile)
	if len(userIDs) > 0 {
		profiles, err := s.profileRepo.GetByIDs(userIDs)
		if err != nil {
			log.Printf("Error loading customer profiles for order list: %v", err)
		} else {
			for _, p := range profiles {
				profilesByID[p.ID] = p
			}
		}
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summary := models.OrderSummary{
			Order:         o,
			CustomerName:  unknownCustomerName,
			CustomerEmail: unknownCustomerEmail,
		}
		if p, ok := profilesByID[o.UserID]; ok {
			if p.FullName != "" {
				summary.CustomerName = p.FullName
			}
			if p.Email != "" {
				summary.CustomerEmail = p.Email
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetOrderDetail retrieves a single order with its customer and line items.
// The three reads are dependent: a missing order stops the sequence, while a
// failed profile or items read degrades that sub-resource only.
func (s *OrderService) GetOrderDetail(id string) (*models.OrderDetail, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	detail := &models.OrderDetail{
		Order:         *order,
		CustomerName:  unknownCustomerName,
		CustomerEmail: unknownCustomerEmail,
		Items:         []models.OrderItem{},
	}

	if order.UserID != "" {
		profile, err := s.profileRepo.GetByID(order.UserID)
		if err != nil {
			log.Printf("Error loading customer profile for order %s: %v", id, err)
		} else {
			if profile.FullName != "" {
				detail.CustomerName = profile.FullName
			}
			if profile.Email != "" {
				detail.CustomerEmail = profile.Email
			}
		}
	}

	items, err := s.orderRepo.GetItems(id)
	if err != nil {
		log.Printf("Error loading items for order %s: %v", id, err)
	} else if items != nil {
		detail.Items = items
	}

	return detail, nil
}

// UpdateOrderStatus updates the status of an existing order. The value must
// be one of the known statuses; setting the current value is a no-op in
// effect.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"order_id": id,
			"status":   status,
		}
		if err := s.events.PublishAdminEvent(EventOrderStatusUpdated, payload); err != nil {
			log.Printf("Warning: failed to publish status update event for order %s: %v", id, err)
		}
	}
	return nil
}
