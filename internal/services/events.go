package services

// Event types published to the admin events queue.
const (
	EventProductCreated     = "product.created"
	EventOrderStatusUpdated = "order.status_updated"
	EventUserRoleUpdated    = "user.role_updated"
)

// EventPublisher publishes admin activity events. Satisfied by
// pkg/rabbitmq.Client; a nil publisher disables publication.
type EventPublisher interface {
	PublishAdminEvent(eventType string, payload interface{}) error
}
