package wishlist

import (
	wishsvc "swapsociety-backend/internal/application/wishlist"
	"swapsociety-backend/internal/middleware"
	"swapsociety-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *wishsvc.Service
}

// Toggle POST /api/v1/wishlist/toggle/:listing_id — flips membership and
// returns whether the listing is now wishlisted.
func (h *Handlers) Toggle(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}
	listingID := c.Params("listing_id")
	if listingID == "" {
		return response.Error(c, "listing_id is required", fiber.StatusBadRequest, nil)
	}

	wishlisted, err := h.Service.Toggle(c.Context(), userID, listingID)
	if err != nil {
		if err == wishsvc.ErrListingNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	msg := "Removed from wishlist"
	if wishlisted {
		msg = "Added to wishlist"
	}
	return response.Success(c, msg, fiber.Map{"wishlisted": wishlisted}, nil)
}

// ViewWishlist GET /api/v1/wishlist/view-wishlist — wishlisted listings,
// newest first.
func (h *Handlers) ViewWishlist(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}
	listings, err := h.Service.View(c.Context(), userID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Wishlist fetched successfully", listings, fiber.Map{
		"count": len(listings),
	})
}
