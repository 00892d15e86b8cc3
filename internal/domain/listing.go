package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// ListingType says how an item can change hands: rented, bought, or either.
type ListingType string

const (
	TypeRent ListingType = "rent"
	TypeSale ListingType = "sale"
	TypeBoth ListingType = "both"
)

func (t ListingType) Valid() bool {
	switch t {
	case TypeRent, TypeSale, TypeBoth:
		return true
	}
	return false
}

// Condition is the seller's self-reported quality grade.
type Condition string

const (
	ConditionLikeNew  Condition = "like-new"
	ConditionGood     Condition = "good"
	ConditionFair     Condition = "fair"
	ConditionWellUsed Condition = "well-used"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionLikeNew, ConditionGood, ConditionFair, ConditionWellUsed:
		return true
	}
	return false
}

// Status is the listing lifecycle state.
type Status string

const (
	StatusActive Status = "active"
	StatusSold   Status = "sold"
	StatusRented Status = "rented"
	StatusPaused Status = "paused"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusSold, StatusRented, StatusPaused:
		return true
	}
	return false
}

// RentalDuration is the billing unit for rentals.
type RentalDuration string

const (
	DurationDay   RentalDuration = "day"
	DurationWeek  RentalDuration = "week"
	DurationMonth RentalDuration = "month"
)

func (d RentalDuration) Valid() bool {
	switch d {
	case DurationDay, DurationWeek, DurationMonth:
		return true
	}
	return false
}

// Listing is a sellable/rentable item with commercial and seller metadata.
// Prices are integer rupees (no minor units).
type Listing struct {
	ListingID        string          `gorm:"column:listing_id;primaryKey" json:"id"`
	Title            string          `gorm:"column:title;not null" json:"title"`
	Description      string          `gorm:"column:description" json:"description"`
	Images           datatypes.JSON  `gorm:"column:images" json:"images"`
	Category         Category        `gorm:"column:category;not null" json:"category"`
	Condition        Condition       `gorm:"column:condition;not null" json:"condition"`
	ListingType      ListingType     `gorm:"column:listing_type;not null" json:"listingType"`
	Price            int64           `gorm:"column:price;not null" json:"price"`
	RentalDuration   *RentalDuration `gorm:"column:rental_duration" json:"rentalDuration,omitempty"`
	Deposit          *int64          `gorm:"column:deposit" json:"deposit,omitempty"`
	SellerID         string          `gorm:"column:seller_id;not null" json:"sellerId"`
	SellerName       string          `gorm:"column:seller_name" json:"sellerName"`
	SellerAvatar     string          `gorm:"column:seller_avatar" json:"sellerAvatar"`
	SellerUniversity string          `gorm:"column:seller_university" json:"sellerUniversity"`
	SellerRating     float64         `gorm:"column:seller_rating" json:"sellerRating"`
	Status           Status          `gorm:"column:status;type:varchar(20);default:'active'" json:"status"`
	Views            int64           `gorm:"column:views;default:0" json:"views"`
	Likes            int64           `gorm:"column:likes;default:0" json:"likes"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func (Listing) TableName() string {
	return "Listings"
}

var (
	ErrTitleRequired         = errors.New("Title is required")
	ErrInvalidCategory       = errors.New("Invalid category")
	ErrInvalidCondition      = errors.New("Invalid condition")
	ErrInvalidListingType    = errors.New("Invalid listing type")
	ErrNegativePrice         = errors.New("Price must be non-negative")
	ErrNegativeDeposit       = errors.New("Deposit must be non-negative")
	ErrDurationRequired      = errors.New("Rental duration is required for rent listings")
	ErrDurationNotApplicable = errors.New("Rental duration only applies to rent listings")
	ErrInvalidRentalDuration = errors.New("Invalid rental duration")
)

// Rentable reports whether the listing participates in rentals.
func (l *Listing) Rentable() bool {
	return l.ListingType == TypeRent || l.ListingType == TypeBoth
}

// ValidateNew checks the invariants a listing must satisfy before it is
// stored: closed enums, non-negative amounts, and rental_duration present
// iff the listing is rentable.
func (l *Listing) ValidateNew() error {
	if l.Title == "" {
		return ErrTitleRequired
	}
	if !l.Category.Valid() {
		return ErrInvalidCategory
	}
	if !l.Condition.Valid() {
		return ErrInvalidCondition
	}
	if !l.ListingType.Valid() {
		return ErrInvalidListingType
	}
	if l.Price < 0 {
		return ErrNegativePrice
	}
	if l.Deposit != nil && *l.Deposit < 0 {
		return ErrNegativeDeposit
	}
	if l.Rentable() {
		if l.RentalDuration == nil {
			return ErrDurationRequired
		}
		if !l.RentalDuration.Valid() {
			return ErrInvalidRentalDuration
		}
	} else if l.RentalDuration != nil {
		return ErrDurationNotApplicable
	}
	return nil
}
