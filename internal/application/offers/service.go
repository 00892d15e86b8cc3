// Package offers implements offer submission: suggested amounts and the
// notification summarizing a sent offer. Offers are not persisted — the
// interaction is a message to the seller, not an order.
package offers

import (
	"context"
	"errors"
	"fmt"
	"math"

	"swapsociety-backend/internal/application/notifications"
	"swapsociety-backend/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("Listing not found")
	ErrInvalidAmount   = errors.New("Invalid offer amount")
)

// Notifier emits the offer-sent notification.
type Notifier interface {
	Show(ctx context.Context, userID, message, kind string) error
}

type Service struct {
	DB     *gorm.DB
	Notify Notifier
}

// Suggestions are 70%, 80% and 90% of the asking price, rounded to the
// nearest rupee.
func Suggestions(price int64) []int64 {
	pcts := []float64{0.7, 0.8, 0.9}
	out := make([]int64, len(pcts))
	for i, p := range pcts {
		out[i] = int64(math.Round(float64(price) * p))
	}
	return out
}

// Suggest returns the listing together with its suggested offer amounts.
func (s *Service) Suggest(ctx context.Context, listingID string) (*domain.Listing, []int64, error) {
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).Where("listing_id = ?", listingID).First(&listing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, ErrListingNotFound
		}
		return nil, nil, err
	}
	return &listing, Suggestions(listing.Price), nil
}

// SubmitInput is one offer: a proposed amount plus an optional message.
type SubmitInput struct {
	ListingID string
	Amount    int64
	Message   string
}

// Submit validates the offer and emits exactly one notification summarizing
// it. No record is written.
func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) error {
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).Where("listing_id = ?", in.ListingID).First(&listing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrListingNotFound
		}
		return err
	}
	if s.Notify != nil {
		msg := fmt.Sprintf("Offer of ₹%d sent to %s! 🤝", in.Amount, listing.SellerName)
		_ = s.Notify.Show(ctx, userID, msg, notifications.KindSuccess)
	}
	return nil
}
