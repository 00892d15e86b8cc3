package user

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"swapsociety-backend/internal/domain"
	"swapsociety-backend/internal/pkg/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidEmailFormat    = errors.New("Invalid email format")
	ErrInvalidPasswordFormat = errors.New("Invalid password format")
	ErrNameRequired          = errors.New("Name is required and must be a non-empty string")
	ErrInvalidName           = errors.New("Name contains invalid characters (only letters, spaces, hyphens, and apostrophes allowed)")
	ErrEmailRegistered       = errors.New("Email already registered")
	ErrProfileNotFound       = errors.New("Profile not found")
	ErrMissingUpdateFields   = errors.New("Missing update fields")
	ErrNoValidUpdateFields   = errors.New("No valid update fields provided")
	ErrSaveFailed            = errors.New("Failed to save profile")
)

// Service owns the profile records.
type Service struct {
	DB *gorm.DB
}

// CreateUserInput is an email/password sign-up.
type CreateUserInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	University string `json:"university"`
}

// CreateUser creates the identity and its profile record with defaults: empty
// bio, unverified, zero rating and reviews, empty listings and wishlist, and
// an initials avatar.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if in.Email == "" || !validation.IsValidEmail(in.Email) {
		return nil, ErrInvalidEmailFormat
	}
	if in.Password == "" || !validation.IsValidPassword(in.Password) {
		return nil, ErrInvalidPasswordFormat
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !validation.IsValidName(name) {
		return nil, ErrInvalidName
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	var existing domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       initialsAvatar(name),
		University:   strings.TrimSpace(in.University),
		Listings:     datatypes.JSON([]byte("[]")),
		Wishlist:     datatypes.JSON([]byte("[]")),
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// EnsureProfileInput carries what the identity provider knows about a social
// sign-in subject.
type EnsureProfileInput struct {
	UserID string
	Name   string
	Email  string
	Avatar string
}

// EnsureProfile returns the existing profile for the email, or creates one on
// first social sign-in. Google-only accounts have no password hash.
func (s *Service) EnsureProfile(ctx context.Context, in EnsureProfileInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	var existing domain.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "User"
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = initialsAvatar(name)
	}
	u := &domain.User{
		UserID:   in.UserID,
		Name:     name,
		Email:    email,
		Avatar:   avatar,
		Listings: datatypes.JSON([]byte("[]")),
		Wishlist: datatypes.JSON([]byte("[]")),
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// ViewProfile returns the profile by subject id.
func (s *Service) ViewProfile(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, ErrProfileNotFound
	}
	var u domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile persists the editable fields — name, university, bio — keyed
// by the subject id. Other keys are ignored.
func (s *Service) UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*domain.User, error) {
	if len(fields) == 0 {
		return nil, ErrMissingUpdateFields
	}

	allowed := map[string]bool{"name": true, "university": true, "bio": true}
	upd := make(map[string]interface{})
	for k, v := range fields {
		if allowed[k] {
			upd[k] = v
		}
	}
	if len(upd) == 0 {
		return nil, ErrNoValidUpdateFields
	}

	if n, ok := upd["name"].(string); ok {
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return nil, ErrNameRequired
		}
		if !validation.IsValidName(trimmed) {
			return nil, ErrInvalidName
		}
		upd["name"] = trimmed
	}

	result := s.DB.WithContext(ctx).Model(&domain.User{}).Where("user_id = ?", userID).Updates(upd)
	if result.Error != nil {
		return nil, ErrSaveFailed
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}

	var u domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func initialsAvatar(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", url.QueryEscape(name))
}
