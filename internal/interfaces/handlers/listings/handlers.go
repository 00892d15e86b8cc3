package listings

import (
	"time"

	listsvc "swapsociety-backend/internal/application/listings"
	"swapsociety-backend/internal/domain"
	"swapsociety-backend/internal/middleware"
	"swapsociety-backend/internal/pkg/format"
	"swapsociety-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *listsvc.Service
}

// GetAllListings GET /api/v1/listings/get-all-listings — filtered and sorted
// feed. Query: q, category, type, condition, sort.
func (h *Handlers) GetAllListings(c *fiber.Ctx) error {
	criteria := domain.DefaultFilterState()
	criteria.Search = c.Query("q")
	if v := c.Query("category"); v != "" {
		criteria.Category = v
	}
	if v := c.Query("type"); v != "" {
		criteria.ListingType = v
	}
	if v := c.Query("condition"); v != "" {
		criteria.Condition = v
	}
	if v := c.Query("sort"); v != "" {
		criteria.SortBy = domain.SortBy(v)
	}

	results, err := h.Service.Search(c.Context(), criteria)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listings fetched successfully", results, fiber.Map{
		"count": len(results),
	})
}

// GetListingByID GET /api/v1/listings/get-listing/:listing_id — detail view,
// counts the view.
func (h *Handlers) GetListingByID(c *fiber.Ctx) error {
	listingID := c.Params("listing_id")
	if listingID == "" {
		return response.Error(c, "listing_id is required", fiber.StatusBadRequest, nil)
	}
	listing, err := h.Service.GetByID(c.Context(), listingID)
	if err != nil {
		if err == listsvc.ErrListingNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listing fetched successfully", listing, fiber.Map{
		"priceFormatted": format.FormatPrice(listing.Price),
		"postedAgo":      format.TimeAgo(listing.CreatedAt.Format(time.RFC3339)),
		"slug":           format.Slugify(listing.Title),
	})
}

// GetCategories GET /api/v1/listings/get-categories — static category table.
func (h *Handlers) GetCategories(c *fiber.Ctx) error {
	return response.Success(c, "Categories fetched successfully", listsvc.Categories(), nil)
}

// CreateListingRequest body for create-listing.
type CreateListingRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	Category       string   `json:"category"`
	Condition      string   `json:"condition"`
	ListingType    string   `json:"listingType"`
	Price          int64    `json:"price"`
	RentalDuration *string  `json:"rentalDuration"`
	Deposit        *int64   `json:"deposit"`
}

// CreateListing POST /api/v1/listings/create-listing — auth required.
func (h *Handlers) CreateListing(c *fiber.Ctx) error {
	sellerID := middleware.GetUserID(c)
	if sellerID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	listing, err := h.Service.Create(c.Context(), sellerID, listsvc.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Images:         req.Images,
		Category:       req.Category,
		Condition:      req.Condition,
		ListingType:    req.ListingType,
		Price:          req.Price,
		RentalDuration: req.RentalDuration,
		Deposit:        req.Deposit,
	})
	if err != nil {
		switch err {
		case domain.ErrTitleRequired, domain.ErrInvalidCategory, domain.ErrInvalidCondition,
			domain.ErrInvalidListingType, domain.ErrNegativePrice, domain.ErrNegativeDeposit,
			domain.ErrDurationRequired, domain.ErrDurationNotApplicable, domain.ErrInvalidRentalDuration:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case listsvc.ErrSellerProfileMissing:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Listing created successfully", listing, nil)
}
