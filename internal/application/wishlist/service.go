// Package wishlist holds the centralized liked/wishlist state, keyed by
// listing id per user, so every rendering of a listing agrees on its state.
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"swapsociety-backend/internal/application/notifications"
	"swapsociety-backend/internal/domain"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const keyPrefix = "wishlist:"

var ErrListingNotFound = errors.New("Listing not found")

// Notifier emits the user-facing toggle notifications.
type Notifier interface {
	Show(ctx context.Context, userID, message, kind string) error
}

// Service stores the wishlist as a Redis set per user and keeps the
// listing's likes counter and the profile's wishlist array in step.
type Service struct {
	DB     *gorm.DB
	Rdb    *redis.Client
	Notify Notifier
}

// Toggle flips membership of the listing in the user's wishlist. Returns the
// new state (true = now wishlisted) and emits exactly one notification per
// call: an "added" message or a "removed" message.
func (s *Service) Toggle(ctx context.Context, userID, listingID string) (bool, error) {
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).Where("listing_id = ?", listingID).First(&listing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, ErrListingNotFound
		}
		return false, err
	}

	key := keyPrefix + userID
	member, err := s.Rdb.SIsMember(ctx, key, listingID).Result()
	if err != nil {
		return false, err
	}

	if member {
		if err := s.Rdb.SRem(ctx, key, listingID).Err(); err != nil {
			return false, err
		}
		// Unlike decrements, floored at zero.
		s.DB.WithContext(ctx).Model(&domain.Listing{}).
			Where("listing_id = ? AND likes > 0", listingID).
			UpdateColumn("likes", gorm.Expr("likes - 1"))
		s.syncProfile(ctx, userID, listingID, false)
		if s.Notify != nil {
			_ = s.Notify.Show(ctx, userID, "Removed from wishlist", notifications.KindInfo)
		}
		return false, nil
	}

	if err := s.Rdb.SAdd(ctx, key, listingID).Err(); err != nil {
		return false, err
	}
	s.DB.WithContext(ctx).Model(&domain.Listing{}).
		Where("listing_id = ?", listingID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	s.syncProfile(ctx, userID, listingID, true)
	if s.Notify != nil {
		msg := fmt.Sprintf("Added \"%s\" to wishlist ❤️", listing.Title)
		_ = s.Notify.Show(ctx, userID, msg, notifications.KindSuccess)
	}
	return true, nil
}

// Contains reports whether the listing is in the user's wishlist.
func (s *Service) Contains(ctx context.Context, userID, listingID string) (bool, error) {
	return s.Rdb.SIsMember(ctx, keyPrefix+userID, listingID).Result()
}

// View returns the wishlisted listings, newest first.
func (s *Service) View(ctx context.Context, userID string) ([]domain.Listing, error) {
	ids, err := s.Rdb.SMembers(ctx, keyPrefix+userID).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Listing{}, nil
	}
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).
		Where("listing_id IN ?", ids).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// syncProfile mirrors the wishlist into the profile record's id array.
// Best-effort: seed sellers have no profile row and that is fine.
func (s *Service) syncProfile(ctx context.Context, userID, listingID string, add bool) {
	var u domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error; err != nil {
		return
	}
	var ids []string
	_ = json.Unmarshal(u.Wishlist, &ids)
	next := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id != listingID {
			next = append(next, id)
		}
	}
	if add {
		next = append(next, listingID)
	}
	b, _ := json.Marshal(next)
	s.DB.WithContext(ctx).Model(&u).UpdateColumn("wishlist", datatypes.JSON(b))
}
