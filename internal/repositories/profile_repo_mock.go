package repositories

import (
	"fmt"
	"sync"
	"time"

	"storeadmin/internal/models"

	"github.com/google/uuid"
)

// MockProfileRepository is an in-memory implementation of ProfileRepository.
type MockProfileRepository struct {
	profiles map[string]models.Profile
	mu       sync.RWMutex
}

// NewMockProfileRepository creates a new instance of MockProfileRepository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]models.Profile),
	}
}

// GetAll returns all profiles.
func (r *MockProfileRepository) GetAll() ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profileList := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profileList = append(profileList, p)
	}
	return profileList, nil
}

// GetByID returns a profile by its ID.
func (r *MockProfileRepository) GetByID(id string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return &profile, nil
}

// GetByEmail returns a profile by its email address.
func (r *MockProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.Email == email {
			profile := p
			return &profile, nil
		}
	}
	return nil, fmt.Errorf("profile with email %s: %w", email, ErrNotFound)
}

// GetByIDs returns the profiles whose IDs are in the given set.
func (r *MockProfileRepository) GetByIDs(ids []string) ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var profiles []models.Profile
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

// Count returns the number of stored profiles.
func (r *MockProfileRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.profiles)), nil
}

// Create adds a new profile.
func (r *MockProfileRepository) Create(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	r.profiles[profile.ID] = *profile
	return nil
}

// UpdateRole updates the role of a profile.
func (r *MockProfileRepository) UpdateRole(id string, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	profile.Role = role
	profile.UpdatedAt = time.Now()
	r.profiles[id] = profile
	return nil
}
