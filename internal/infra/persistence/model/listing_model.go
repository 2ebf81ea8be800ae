package model

import (
	"time"

	"gorm.io/datatypes"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
// PlaceID carries the external identifier and is unique.
type ListingModel struct {
	ID               int64                       `gorm:"primaryKey;autoIncrement"`
	PlaceID          string                      `gorm:"type:text;uniqueIndex:listings_place_id_key;not null"`
	Name             string                      `gorm:"type:text;not null"`
	FormattedAddress string                      `gorm:"type:text;not null;default:''"`
	Latitude         *float64                    `gorm:"type:decimal(10,8)"`
	Longitude        *float64                    `gorm:"type:decimal(11,8)"`
	PhoneNumber      string                      `gorm:"type:varchar(64);not null;default:''"`
	Website          string                      `gorm:"type:text;not null;default:''"`
	PrimaryType      string                      `gorm:"type:varchar(128);not null;default:'';index"`
	Types            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Rating           *float64                    `gorm:"type:decimal(3,2)"`
	UserRatingsTotal *int
	EditorialSummary string `gorm:"type:text;not null;default:''"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Reviews        []ListingReviewModel      `gorm:"foreignKey:PlaceID;references:PlaceID;constraint:OnDelete:CASCADE"`
	Photos         []ListingPhotoModel       `gorm:"foreignKey:PlaceID;references:PlaceID;constraint:OnDelete:CASCADE"`
	OpeningPeriods []ListingOpeningHourModel `gorm:"foreignKey:PlaceID;references:PlaceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// ListingReviewModel mirrors the 'listing_reviews' table. Position keeps the source order.
type ListingReviewModel struct {
	ID                      int64  `gorm:"primaryKey;autoIncrement"`
	PlaceID                 string `gorm:"type:text;not null;index"`
	Position                int    `gorm:"not null"`
	AuthorName              string `gorm:"type:text;not null;default:''"`
	Rating                  *float64
	RelativeTimeDescription string     `gorm:"type:text;not null;default:''"`
	ReviewTime              *time.Time
	Text                    string `gorm:"type:text;not null;default:''"`
	ProfilePhotoURL         string `gorm:"column:profile_photo_url;type:text;not null;default:''"`
	AuthorURL               string `gorm:"column:author_url;type:text;not null;default:''"`
	CreatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingReviewModel) TableName() string {
	return "listing_reviews"
}

// ListingPhotoModel mirrors the 'listing_photos' table.
type ListingPhotoModel struct {
	ID             int64                       `gorm:"primaryKey;autoIncrement"`
	PlaceID        string                      `gorm:"type:text;not null;index"`
	Position       int                         `gorm:"not null"`
	PhotoReference string                      `gorm:"type:text;not null"`
	Height         int                         `gorm:"not null;default:0"`
	Width          int                         `gorm:"not null;default:0"`
	Attributions   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingPhotoModel) TableName() string {
	return "listing_photos"
}

// ListingOpeningHourModel mirrors the 'listing_opening_hours' table.
type ListingOpeningHourModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	PlaceID   string  `gorm:"type:text;not null;index"`
	OpenDay   int     `gorm:"type:smallint;not null"`
	OpenTime  string  `gorm:"type:char(4);not null"`
	CloseDay  *int    `gorm:"type:smallint"`
	CloseTime *string `gorm:"type:char(4)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingOpeningHourModel) TableName() string {
	return "listing_opening_hours"
}
