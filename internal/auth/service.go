package auth

import (
	"context"
	"strings"

	"swapsociety-backend/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginInput for login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUserShape is the object stored in the session and returned by /me.
type SessionUserShape struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university"`
	IsVerified bool   `json:"is_verified"`
}

// ShapeFor projects a profile into the session shape.
func ShapeFor(u *domain.User) SessionUserShape {
	return SessionUserShape{
		UserID:     u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		University: u.University,
		IsVerified: u.IsVerified,
	}
}

type Service struct {
	DB *gorm.DB
}

// LogIn finds the profile by email and verifies the password. Google-only
// accounts (empty hash) cannot log in with a password. Emails are stored
// lowercased, so the lookup normalizes the same way sign-up does.
func (s *Service) LogIn(ctx context.Context, in LoginInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrEmailPasswordRequired
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	var u domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidEmail
		}
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, ErrGoogleAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrIncorrectPassword
	}
	return &u, nil
}

// VerifyUser validates the session user map and returns the shape for /me.
func VerifyUser(sessionUser interface{}) (*SessionUserShape, error) {
	if sessionUser == nil {
		return nil, ErrNotAuthenticated
	}
	m, ok := sessionUser.(map[string]interface{})
	if !ok {
		return nil, ErrNotAuthenticated
	}
	userID, _ := m["user_id"].(string)
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	verified, _ := m["is_verified"].(bool)
	return &SessionUserShape{
		UserID:     userID,
		Name:       str(m["name"]),
		Email:      str(m["email"]),
		University: str(m["university"]),
		IsVerified: verified,
	}, nil
}

func str(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
