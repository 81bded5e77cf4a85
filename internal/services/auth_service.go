package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Sign-in and guard outcomes. The three cases are deliberately distinct so
// callers can surface different messages: bad credentials, a role lookup
// that failed, and a valid account that simply is not an admin.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleVerification   = errors.New("could not verify account role")
	ErrAdminOnly          = errors.New("access denied: admins only")
)

// AuthService handles sign-in and admin role verification.
type AuthService struct {
	profileRepo repositories.ProfileRepository
	jwtSecret   []byte
	tokenDurat  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(profileRepo repositories.ProfileRepository, jwtSecret string) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour,
	}
}

// SignIn authenticates a staff member and returns a signed JWT. The password
// check and the role lookup are separate steps: a failed lookup is
// ErrRoleVerification, a non-admin role is ErrAdminOnly, and any credential
// problem collapses into ErrInvalidCredentials without revealing whether the
// email exists.
func (s *AuthService) SignIn(email, password string) (string, *models.Profile, error) {
	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// Re-read the profile for the role check. Authentication succeeded at
	// this point, so a failure here is a verification problem, not bad
	// credentials.
	verified, err := s.profileRepo.GetByID(profile.ID)
	if err != nil {
		log.Printf("Role lookup failed for profile %s: %v", profile.ID, err)
		return "", nil, ErrRoleVerification
	}
	if verified.Role != models.RoleAdmin {
		return "", nil, ErrAdminOnly
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": verified.ID,
		"email":   verified.Email,
		"role":    verified.Role,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, verified, nil
}

// VerifyAdmin checks that the profile behind an authenticated identity still
// holds the admin role. A single failed lookup is a deny, not a transient
// error to retry.
func (s *AuthService) VerifyAdmin(userID string) error {
	profile, err := s.profileRepo.GetByID(userID)
	if err != nil {
		log.Printf("Admin verification lookup failed for profile %s: %v", userID, err)
		return ErrRoleVerification
	}
	if profile.Role != models.RoleAdmin {
		return ErrAdminOnly
	}
	return nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
