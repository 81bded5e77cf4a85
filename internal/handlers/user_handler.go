package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"storeadmin/internal/repositories"
	"storeadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user account management.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Patch("/:id/role", h.HandleUpdateUserRole)
}

// HandleGetUsers retrieves all user profiles.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// HandleUpdateUserRole changes the role on a profile.
func (h *UserHandler) HandleUpdateUserRole(c *fiber.Ctx) error {
	userID := c.Params("id")
	var updateData struct {
		Role string `json:"role"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for role update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for role update",
			"error":   err.Error(),
		})
	}

	if updateData.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Role is required for role update.",
		})
	}

	if err := h.service.UpdateUserRole(userID, updateData.Role); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with ID %s not found", userID),
			})
		case strings.Contains(err.Error(), "invalid role"):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Invalid role: %s", updateData.Role),
			})
		default:
			log.Printf("Error updating role for user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update user role",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %s role updated successfully to %s", userID, updateData.Role),
	})
}
