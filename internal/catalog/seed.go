package catalog

import (
	"context"
	"encoding/json"
	"time"

	"swapsociety-backend/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedListings returns the deterministic six-item collection that stands in
// for real inventory on a fresh install. Timestamps are offsets from now so
// relative-time display stays sensible.
func SeedListings(now time.Time) []domain.Listing {
	return []domain.Listing{
		{
			ListingID:        "1",
			Title:            "MacBook Air M2 — Like New",
			Description:      "Barely used MacBook Air M2, 8GB RAM, 256GB SSD. Perfect for college work. Comes with charger and original box.",
			Images:           imagesJSON("/images/placeholder-laptop.jpg"),
			Category:         domain.CategoryElectronics,
			Condition:        domain.ConditionLikeNew,
			ListingType:      domain.TypeBoth,
			Price:            65000,
			RentalDuration:   durationPtr(domain.DurationMonth),
			Deposit:          int64Ptr(10000),
			SellerID:         "user1",
			SellerName:       "Arjun Patel",
			SellerUniversity: "IIT Delhi",
			SellerRating:     4.8,
			Status:           domain.StatusActive,
			Views:            234,
			Likes:            45,
			CreatedAt:        now.Add(-2 * 24 * time.Hour),
			UpdatedAt:        now,
		},
		{
			ListingID:        "2",
			Title:            "Nike Air Jordan 1 Retro — Size 9",
			Description:      "Classic Jordan 1s in great condition. Worn only a few times. Size UK 9.",
			Images:           imagesJSON("/images/placeholder-shoes.jpg"),
			Category:         domain.CategoryShoes,
			Condition:        domain.ConditionGood,
			ListingType:      domain.TypeSale,
			Price:            4500,
			SellerID:         "user2",
			SellerName:       "Priya Sharma",
			SellerUniversity: "BITS Pilani",
			SellerRating:     4.5,
			Status:           domain.StatusActive,
			Views:            156,
			Likes:            32,
			CreatedAt:        now.Add(-5 * 24 * time.Hour),
			UpdatedAt:        now,
		},
		{
			ListingID:        "3",
			Title:            "Zara Oversized Denim Jacket",
			Description:      "Trendy oversized denim jacket from Zara. Size M. Goes with everything!",
			Images:           imagesJSON("/images/placeholder-jacket.jpg"),
			Category:         domain.CategoryClothing,
			Condition:        domain.ConditionLikeNew,
			ListingType:      domain.TypeRent,
			Price:            200,
			RentalDuration:   durationPtr(domain.DurationDay),
			Deposit:          int64Ptr(1000),
			SellerID:         "user3",
			SellerName:       "Rohan Mehta",
			SellerUniversity: "NIT Trichy",
			SellerRating:     4.2,
			Status:           domain.StatusActive,
			Views:            89,
			Likes:            18,
			CreatedAt:        now.Add(-1 * 24 * time.Hour),
			UpdatedAt:        now,
		},
		{
			ListingID:        "4",
			Title:            "Engineering Mathematics — Kreyszig 10th Ed",
			Description:      "Advanced Engineering Mathematics by Kreyszig. Some highlights but overall in great shape.",
			Images:           imagesJSON("/images/placeholder-book.jpg"),
			Category:         domain.CategoryBooks,
			Condition:        domain.ConditionGood,
			ListingType:      domain.TypeBoth,
			Price:            350,
			RentalDuration:   durationPtr(domain.DurationMonth),
			Deposit:          int64Ptr(200),
			SellerID:         "user4",
			SellerName:       "Sneha Gupta",
			SellerUniversity: "VIT Vellore",
			SellerRating:     4.9,
			Status:           domain.StatusActive,
			Views:            312,
			Likes:            67,
			CreatedAt:        now.Add(-3 * 24 * time.Hour),
			UpdatedAt:        now,
		},
		{
			ListingID:        "5",
			Title:            "Casio G-Shock GA-2100",
			Description:      "CasiOak watch in matte black. Barely worn, with box and papers.",
			Images:           imagesJSON("/images/placeholder-watch.jpg"),
			Category:         domain.CategoryWatches,
			Condition:        domain.ConditionLikeNew,
			ListingType:      domain.TypeSale,
			Price:            6800,
			SellerID:         "user5",
			SellerName:       "Aditya Kumar",
			SellerUniversity: "IIIT Hyderabad",
			SellerRating:     4.6,
			Status:           domain.StatusActive,
			Views:            198,
			Likes:            42,
			CreatedAt:        now.Add(-4 * 24 * time.Hour),
			UpdatedAt:        now,
		},
		{
			ListingID:        "6",
			Title:            "JBL Charge 5 Bluetooth Speaker",
			Description:      "Powerful portable speaker with amazing bass. Perfect for hostel parties. Battery lasts 20+ hours.",
			Images:           imagesJSON("/images/placeholder-speaker.jpg"),
			Category:         domain.CategoryElectronics,
			Condition:        domain.ConditionGood,
			ListingType:      domain.TypeRent,
			Price:            150,
			RentalDuration:   durationPtr(domain.DurationDay),
			Deposit:          int64Ptr(2000),
			SellerID:         "user1",
			SellerName:       "Arjun Patel",
			SellerUniversity: "IIT Delhi",
			SellerRating:     4.8,
			Status:           domain.StatusActive,
			Views:            445,
			Likes:            89,
			CreatedAt:        now.Add(-6 * 24 * time.Hour),
			UpdatedAt:        now,
		},
	}
}

// EnsureSeeded inserts the seed collection when the Listings table is empty,
// so an unconfigured checkout still has something to browse.
func EnsureSeeded(ctx context.Context, db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Listing{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seed := SeedListings(now)
	return db.WithContext(ctx).Create(&seed).Error
}

func imagesJSON(urls ...string) datatypes.JSON {
	b, _ := json.Marshal(urls)
	return datatypes.JSON(b)
}

func durationPtr(d domain.RentalDuration) *domain.RentalDuration {
	return &d
}

func int64Ptr(v int64) *int64 {
	return &v
}
