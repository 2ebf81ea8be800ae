// Package entity contains the core business objects of the directory.
package entity

import "time"

// Listing is the canonical business record. ExternalID is the natural key supplied by
// the data source (e.g. a Google Place ID) and identifies the same business across imports.
//
// Reviews, Photos and OpeningPeriods are owned by the listing. A nil slice means the
// collection was not supplied; a non-nil empty slice means it was supplied and is empty.
type Listing struct {
	ID               int64     // Surrogate key assigned by storage.
	ExternalID       string    `json:"externalId" validate:"required"`
	Name             string    `json:"name" validate:"required"`
	FormattedAddress string    `json:"formattedAddress"`
	Latitude         *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64  `json:"longitude" validate:"omitempty,longitude"`
	PhoneNumber      string    `json:"phoneNumber"`
	Website          string    `json:"website"`
	PrimaryType      string    `json:"primaryType"`
	Types            []string  `json:"types"`
	Rating           *float64  `json:"rating" validate:"omitempty,min=0,max=5"`
	UserRatingsTotal *int      `json:"userRatingsTotal" validate:"omitempty,min=0"`
	EditorialSummary string    `json:"editorialSummary"`
	CreatedAt        time.Time // Timestamp of the first import.
	UpdatedAt        time.Time // Timestamp of the last import or patch.

	Reviews        []Review        `json:"reviews" validate:"omitempty,dive"`
	Photos         []Photo         `json:"photos" validate:"omitempty,dive"`
	OpeningPeriods []OpeningPeriod `json:"openingPeriods" validate:"omitempty,dive"`
}

// Review is a single customer review of a listing. Duplicates from the source are kept.
type Review struct {
	AuthorName              string     `json:"authorName"`
	Rating                  *float64   `json:"rating" validate:"omitempty,min=0,max=5"`
	RelativeTimeDescription string     `json:"relativeTimeDescription"`
	Time                    *time.Time `json:"time"`
	Text                    string     `json:"text"`
	ProfilePhotoURL         string     `json:"profilePhotoUrl"`
	AuthorURL               string     `json:"authorUrl"`
}

// Photo references a business image. PhotoReference is opaque and is used to build a display URL.
type Photo struct {
	PhotoReference string   `json:"photoReference" validate:"required"`
	Height         int      `json:"height" validate:"min=0"`
	Width          int      `json:"width" validate:"min=0"`
	Attributions   []string `json:"attributions"`
}

// OpeningPeriod is one open/close window. Days run 0 (Sunday) to 6, times are "HHMM".
// CloseDay and CloseTime are nil for open-ended (24 hour) periods.
type OpeningPeriod struct {
	OpenDay   int     `json:"openDay" validate:"min=0,max=6"`
	OpenTime  string  `json:"openTime" validate:"len=4,numeric"`
	CloseDay  *int    `json:"closeDay" validate:"omitempty,min=0,max=6"`
	CloseTime *string `json:"closeTime" validate:"omitempty,len=4,numeric"`
}

// HasCoordinates reports whether both latitude and longitude are known.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
