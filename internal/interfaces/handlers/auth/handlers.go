package auth

import (
	"context"
	"time"

	usersvc "swapsociety-backend/internal/application/user"
	authsvc "swapsociety-backend/internal/auth"
	"swapsociety-backend/internal/middleware"
	"swapsociety-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const userSessionsPrefix = "user_sessions:"

// Handlers holds dependencies for auth endpoints.
type Handlers struct {
	Auth   *authsvc.Service
	Users  *usersvc.Service
	Rdb    *redis.Client
	Config middleware.SessionConfig

	Google      authsvc.GoogleConfig
	Exchanger   authsvc.CodeExchanger
	FrontendURL string

	Now func() time.Time // tests override; nil means time.Now
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Signup POST /api/v1/auth/signup — create profile, start session, 201.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req usersvc.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	u, err := h.Users.CreateUser(c.Context(), req)
	if err != nil {
		switch err {
		case usersvc.ErrInvalidEmailFormat, usersvc.ErrInvalidPasswordFormat,
			usersvc.ErrNameRequired, usersvc.ErrInvalidName:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case usersvc.ErrEmailRegistered:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, usersvc.ErrSaveFailed.Error(), fiber.StatusInternalServerError, nil)
		}
	}

	if err := h.startSession(c, authsvc.ShapeFor(u)); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.SuccessCreated(c, "Account created successfully", fiber.Map{
		"user": authsvc.ShapeFor(u),
	}, nil)
}

// Login POST /api/v1/auth/login — authenticate, create session, set cookie.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req authsvc.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, authsvc.ErrEmailPasswordRequired.Error(), fiber.StatusBadRequest, nil)
	}

	u, err := h.Auth.LogIn(c.Context(), req)
	if err != nil {
		switch err {
		case authsvc.ErrEmailPasswordRequired, authsvc.ErrGoogleAccount:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case authsvc.ErrInvalidEmail, authsvc.ErrIncorrectPassword:
			return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	if err := h.startSession(c, authsvc.ShapeFor(u)); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Login successful", fiber.Map{
		"user": authsvc.ShapeFor(u),
	}, nil)
}

// startSession rotates the session id, stores the user, tracks the session
// set, and sets the cookie.
func (h *Handlers) startSession(c *fiber.Ctx, su authsvc.SessionUserShape) error {
	sessionID := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, middleware.SessionUser{
		UserID:     su.UserID,
		Name:       su.Name,
		Email:      su.Email,
		University: su.University,
		IsVerified: su.IsVerified,
	})

	if h.Rdb != nil {
		if err := h.Rdb.SAdd(context.Background(), userSessionsPrefix+su.UserID, sessionID).Err(); err != nil {
			return err
		}
	}

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = "s:" + sessionID
	c.Cookie(&cookie)
	return nil
}

// Me GET /api/v1/auth/me — session snapshot with the stored profile.
func (h *Handlers) Me(c *fiber.Ctx) error {
	sessionUser := middleware.GetUser(c)
	su, err := authsvc.VerifyUser(sessionUser)
	if err != nil {
		return response.Error(c, authsvc.ErrNotAuthenticated.Error(), fiber.StatusUnauthorized, nil)
	}

	data := fiber.Map{"user": su}
	if h.Users != nil {
		if profile, err := h.Users.ViewProfile(c.Context(), su.UserID); err == nil {
			data["profile"] = profile
		}
	}
	return response.Success(c, "Authenticated", data, nil)
}

// Logout DELETE /api/v1/auth/logout — destroy session, clear cookie. Always
// succeeds from the client's point of view.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)
	sessionUser := middleware.GetUser(c)

	ctx := context.Background()
	if h.Rdb != nil && sessionUser != nil && sessionID != "" {
		if m, ok := sessionUser.(map[string]interface{}); ok {
			if userID, _ := m["user_id"].(string); userID != "" {
				_ = h.Rdb.SRem(ctx, userSessionsPrefix+userID, sessionID).Err()
			}
		}
	}
	if h.Rdb != nil && sessionID != "" {
		_ = h.Rdb.Del(ctx, middleware.SessionRedisPrefix+sessionID).Err()
	}
	middleware.DestroySession(c)

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logged out successfully", nil, nil)
}

// GoogleRedirect GET /api/v1/auth/google — 302 to the consent screen with a
// signed state token.
func (h *Handlers) GoogleRedirect(c *fiber.Ctx) error {
	if !h.Google.Configured() {
		return response.Error(c, authsvc.ErrNotConfigured.Error(), fiber.StatusServiceUnavailable, nil)
	}
	state, err := h.Google.NewStateToken(h.now())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return c.Redirect(h.Google.AuthURL(state), fiber.StatusFound)
}

// GoogleCallback GET /api/v1/auth/google/callback — verify state, exchange
// the code, create the profile on first sign-in, start a session, redirect
// to the frontend.
func (h *Handlers) GoogleCallback(c *fiber.Ctx) error {
	if !h.Google.Configured() || h.Exchanger == nil {
		return response.Error(c, authsvc.ErrNotConfigured.Error(), fiber.StatusServiceUnavailable, nil)
	}
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		return response.Error(c, authsvc.ErrInvalidState.Error(), fiber.StatusBadRequest, nil)
	}
	if err := h.Google.VerifyStateToken(state, h.now()); err != nil {
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	}

	gu, err := h.Exchanger.Exchange(c.Context(), code)
	if err != nil {
		log.Error().Err(err).Msg("google code exchange failed")
		return response.Error(c, "Google sign-in failed", fiber.StatusBadGateway, nil)
	}

	u, err := h.Users.EnsureProfile(c.Context(), usersvc.EnsureProfileInput{
		UserID: gu.Subject,
		Name:   gu.Name,
		Email:  gu.Email,
		Avatar: gu.Picture,
	})
	if err != nil {
		return response.Error(c, usersvc.ErrSaveFailed.Error(), fiber.StatusInternalServerError, nil)
	}

	if err := h.startSession(c, authsvc.ShapeFor(u)); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return c.Redirect(h.FrontendURL, fiber.StatusFound)
}
