package models

import "time"

// Order statuses settable by staff. There is no transition graph: any status
// may be set from any other, as long as the value is one of these.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Order represents a customer order placed through the storefront.
type Order struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string    `json:"user_id" gorm:"type:varchar(36);index"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status" gorm:"type:varchar(32)"`
	ShippingAddress string    `json:"shipping_address" gorm:"type:varchar(512)"`
	Phone           string    `json:"phone" gorm:"type:varchar(32)"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderItem is a line item belonging to exactly one order. Product name,
// image and price are snapshots taken when the order was placed, so later
// catalog edits do not rewrite order history. Read-only in this service.
type OrderItem struct {
	ID              string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID         string  `json:"order_id" gorm:"type:varchar(36);index"`
	ProductName     string  `json:"product_name" gorm:"type:varchar(100)"`
	ProductImageURL string  `json:"product_image_url" gorm:"type:varchar(512)"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	Subtotal        float64 `json:"subtotal"`
}

// OrderSummary is an order row joined with the owning customer's identity,
// as shown on the order list. Missing profiles render as "Unknown" / "-".
type OrderSummary struct {
	Order
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// OrderDetail is the full view of a single order: the order row, the owning
// customer and the line items.
type OrderDetail struct {
	Order
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
}
