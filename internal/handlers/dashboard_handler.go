package handlers

import (
	"log"

	"storeadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles HTTP requests for dashboard statistics.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Get("/stats", h.HandleGetStats)
}

// HandleGetStats returns the dashboard summary counts.
func (h *DashboardHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		log.Printf("Error getting dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load dashboard data. Please try again.",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}
