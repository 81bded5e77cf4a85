package repositories

import "storeadmin/internal/models"

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	GetAll() ([]models.Profile, error)
	GetByID(id string) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByIDs(ids []string) ([]models.Profile, error)
	Count() (int64, error)
	Create(profile *models.Profile) error
	UpdateRole(id string, role string) error
}
