package listings

import (
	"context"
	"encoding/json"
	"errors"

	"swapsociety-backend/internal/catalog"
	"swapsociety-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound      = errors.New("Listing not found")
	ErrSellerProfileMissing = errors.New("Seller profile not found")
)

type Service struct {
	DB *gorm.DB
}

// Search fetches the canonical collection and derives the visible subset
// through the filter/sort pipeline. The stored rows are never mutated.
func (s *Service) Search(ctx context.Context, criteria domain.FilterState) ([]domain.Listing, error) {
	var all []domain.Listing
	if err := s.DB.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, err
	}
	return catalog.FilterAndSort(all, criteria), nil
}

// GetByID returns one listing and counts the view. Views only ever go up.
func (s *Service) GetByID(ctx context.Context, listingID string) (*domain.Listing, error) {
	if listingID == "" {
		return nil, ErrListingNotFound
	}
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).Where("listing_id = ?", listingID).First(&listing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&listing).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	listing.Views++
	return &listing, nil
}

// CreateInput carries the listing-creation form.
type CreateInput struct {
	Title          string
	Description    string
	Images         []string
	Category       string
	Condition      string
	ListingType    string
	Price          int64
	RentalDuration *string
	Deposit        *int64
}

// Create stores a new listing attributed to the seller's profile and appends
// its id to the profile's listings array in the same transaction.
func (s *Service) Create(ctx context.Context, sellerID string, in CreateInput) (*domain.Listing, error) {
	var seller domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", sellerID).First(&seller).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSellerProfileMissing
		}
		return nil, err
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	imagesBytes, _ := json.Marshal(images)

	listing := &domain.Listing{
		ListingID:        uuid.New().String(),
		Title:            in.Title,
		Description:      in.Description,
		Images:           datatypes.JSON(imagesBytes),
		Category:         domain.Category(in.Category),
		Condition:        domain.Condition(in.Condition),
		ListingType:      domain.ListingType(in.ListingType),
		Price:            in.Price,
		Deposit:          in.Deposit,
		SellerID:         seller.UserID,
		SellerName:       seller.Name,
		SellerAvatar:     seller.Avatar,
		SellerUniversity: seller.University,
		SellerRating:     seller.Rating,
		Status:           domain.StatusActive,
	}
	if in.RentalDuration != nil {
		d := domain.RentalDuration(*in.RentalDuration)
		listing.RentalDuration = &d
	}
	if err := listing.ValidateNew(); err != nil {
		return nil, err
	}

	var sellerListings []string
	_ = json.Unmarshal(seller.Listings, &sellerListings)
	sellerListings = append(sellerListings, listing.ListingID)
	listingsBytes, _ := json.Marshal(sellerListings)

	tx := s.DB.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if err := tx.Create(listing).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&seller).UpdateColumn("listings", datatypes.JSON(listingsBytes)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return listing, nil
}

// Categories returns the fixed category table for chips and filter panels.
func Categories() []domain.CategoryInfo {
	return domain.Categories[:]
}
