package services

import (
	"fmt"
	"log"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
)

// validRoles is the set of role values staff may assign.
var validRoles = map[string]bool{
	models.RoleAdmin:    true,
	models.RoleCustomer: true,
}

// UserService handles business logic related to user accounts. Accounts are
// created externally; the admin console only lists them and changes roles.
type UserService struct {
	profileRepo repositories.ProfileRepository
	events      EventPublisher
}

// NewUserService creates a new UserService. The event publisher may be nil,
// in which case no events are published.
func NewUserService(profileRepo repositories.ProfileRepository, events EventPublisher) *UserService {
	return &UserService{
		profileRepo: profileRepo,
		events:      events,
	}
}

// GetAllUsers retrieves all profiles.
func (s *UserService) GetAllUsers() ([]models.Profile, error) {
	return s.profileRepo.GetAll()
}

// UpdateUserRole changes the role on a profile, typically promoting an
// account to admin.
func (s *UserService) UpdateUserRole(id string, role string) error {
	if !validRoles[role] {
		return fmt.Errorf("invalid role: %s", role)
	}

	if err := s.profileRepo.UpdateRole(id, role); err != nil {
		return fmt.Errorf("failed to update role for user %s: %w", id, err)
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"user_id": id,
			"role":    role,
		}
		if err := s.events.PublishAdminEvent(EventUserRoleUpdated, payload); err != nil {
			log.Printf("Warning: failed to publish role update event for user %s: %v", id, err)
		}
	}
	return nil
}
