package notifications

import (
	notifsvc "swapsociety-backend/internal/application/notifications"
	"swapsociety-backend/internal/middleware"
	"swapsociety-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *notifsvc.Service
}

// List GET /api/v1/notifications/ — live (unexpired) notifications for the
// session subject.
func (h *Handlers) List(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}
	items, err := h.Service.List(c.Context(), userID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Notifications fetched successfully", items, fiber.Map{
		"count": len(items),
	})
}

// Dismiss DELETE /api/v1/notifications/:notification_id — remove one entry
// before it expires.
func (h *Handlers) Dismiss(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}
	id := c.Params("notification_id")
	if id == "" {
		return response.Error(c, "notification_id is required", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Dismiss(c.Context(), userID, id); err != nil {
		if err == notifsvc.ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Notification dismissed", nil, nil)
}
