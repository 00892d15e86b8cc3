package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is the durable profile record, keyed by the auth subject id. It is
// distinct from the session object: the session carries a snapshot, this row
// is the source of truth.
type User struct {
	UserID       string         `gorm:"column:user_id;primaryKey" json:"id"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	Email        string         `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"column:password_hash" json:"-"`
	Avatar       string         `gorm:"column:avatar" json:"avatar"`
	University   string         `gorm:"column:university" json:"university"`
	Bio          string         `gorm:"column:bio" json:"bio"`
	IsVerified   bool           `gorm:"column:is_verified;default:false" json:"isVerified"`
	Rating       float64        `gorm:"column:rating;default:0" json:"rating"`
	TotalReviews int            `gorm:"column:total_reviews;default:0" json:"totalReviews"`
	Listings     datatypes.JSON `gorm:"column:listings" json:"listings"`
	Wishlist     datatypes.JSON `gorm:"column:wishlist" json:"wishlist"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (User) TableName() string {
	return "Users"
}

// BeforeCreate assigns a subject id when the caller did not bring one
// (email/password sign-up; Google sign-in supplies the provider subject).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.New().String()
	}
	return nil
}
