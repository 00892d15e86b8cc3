package user

import (
	usersvc "swapsociety-backend/internal/application/user"
	"swapsociety-backend/internal/middleware"
	"swapsociety-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *usersvc.Service
}

// ViewProfile GET /api/v1/users/view-profile — the session subject's profile.
func (h *Handlers) ViewProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}
	profile, err := h.Service.ViewProfile(c.Context(), userID)
	if err != nil {
		if err == usersvc.ErrProfileNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Profile fetched successfully", profile, nil)
}

// UpdateProfile PUT /api/v1/users/update-profile — name, university, bio
// only; anything else in the body is ignored.
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return response.Error(c, usersvc.ErrMissingUpdateFields.Error(), fiber.StatusBadRequest, nil)
	}

	profile, err := h.Service.UpdateProfile(c.Context(), userID, fields)
	if err != nil {
		switch err {
		case usersvc.ErrMissingUpdateFields, usersvc.ErrNoValidUpdateFields:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case usersvc.ErrProfileNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, usersvc.ErrSaveFailed.Error(), fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Profile updated successfully", profile, nil)
}
