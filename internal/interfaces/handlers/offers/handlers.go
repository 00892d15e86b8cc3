package offers

import (
	offersvc "swapsociety-backend/internal/application/offers"
	"swapsociety-backend/internal/middleware"
	"swapsociety-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *offersvc.Service
}

// Suggestions GET /api/v1/offers/suggestions/:listing_id — 70/80/90% of the
// asking price.
func (h *Handlers) Suggestions(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}
	listingID := c.Params("listing_id")
	if listingID == "" {
		return response.Error(c, "listing_id is required", fiber.StatusBadRequest, nil)
	}

	listing, amounts, err := h.Service.Suggest(c.Context(), listingID)
	if err != nil {
		if err == offersvc.ErrListingNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Suggestions fetched successfully", fiber.Map{
		"listingId":   listing.ListingID,
		"price":       listing.Price,
		"suggestions": amounts,
	}, nil)
}

// MakeOfferRequest body for make-offer.
type MakeOfferRequest struct {
	ListingID string `json:"listingId"`
	Amount    int64  `json:"amount"`
	Message   string `json:"message"`
}

// MakeOffer POST /api/v1/offers/make-offer — validates and notifies, stores
// nothing.
func (h *Handlers) MakeOffer(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req MakeOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	err := h.Service.Submit(c.Context(), userID, offersvc.SubmitInput{
		ListingID: req.ListingID,
		Amount:    req.Amount,
		Message:   req.Message,
	})
	if err != nil {
		switch err {
		case offersvc.ErrInvalidAmount:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case offersvc.ErrListingNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Offer sent successfully", nil, nil)
}
