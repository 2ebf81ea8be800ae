package handler

import (
	"time"

	"bizdir/internal/domain/entity"
)

// ListingResponse is the JSON view of a stored listing.
type ListingResponse struct {
	ExternalID       string                  `json:"externalId"`
	Name             string                  `json:"name"`
	FormattedAddress string                  `json:"formattedAddress"`
	Latitude         *float64                `json:"latitude"`
	Longitude        *float64                `json:"longitude"`
	PhoneNumber      string                  `json:"phoneNumber"`
	Website          string                  `json:"website"`
	PrimaryType      string                  `json:"primaryType"`
	Types            []string                `json:"types"`
	Rating           *float64                `json:"rating"`
	UserRatingsTotal *int                    `json:"userRatingsTotal"`
	EditorialSummary string                  `json:"editorialSummary"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
	Reviews          []ReviewResponse        `json:"reviews,omitempty"`
	Photos           []PhotoResponse         `json:"photos,omitempty"`
	OpeningPeriods   []OpeningPeriodResponse `json:"openingPeriods,omitempty"`
	DistanceKm       *float64                `json:"distanceKm,omitempty"`
}

type ReviewResponse struct {
	AuthorName              string     `json:"authorName"`
	Rating                  *float64   `json:"rating"`
	RelativeTimeDescription string     `json:"relativeTimeDescription"`
	Time                    *time.Time `json:"time"`
	Text                    string     `json:"text"`
	ProfilePhotoURL         string     `json:"profilePhotoUrl"`
	AuthorURL               string     `json:"authorUrl"`
}

type PhotoResponse struct {
	PhotoReference string   `json:"photoReference"`
	Height         int      `json:"height"`
	Width          int      `json:"width"`
	Attributions   []string `json:"attributions"`
}

type OpeningPeriodResponse struct {
	OpenDay   int     `json:"openDay"`
	OpenTime  string  `json:"openTime"`
	CloseDay  *int    `json:"closeDay"`
	CloseTime *string `json:"closeTime"`
}

// PatchListingRequest is the body of a partial update. Omitted fields stay unchanged.
type PatchListingRequest struct {
	Name             *string  `json:"name" validate:"omitempty,max=512"`
	FormattedAddress *string  `json:"formattedAddress" validate:"omitempty,max=1024"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,longitude"`
	PhoneNumber      *string  `json:"phoneNumber" validate:"omitempty,max=64"`
	Website          *string  `json:"website" validate:"omitempty,max=2048"`
	PrimaryType      *string  `json:"primaryType" validate:"omitempty,max=128"`
	Rating           *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	UserRatingsTotal *int     `json:"userRatingsTotal" validate:"omitempty,min=0"`
	EditorialSummary *string  `json:"editorialSummary"`
}

func (r *PatchListingRequest) toPatch() *entity.ListingPatch {
	return &entity.ListingPatch{
		Name:             r.Name,
		FormattedAddress: r.FormattedAddress,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		PhoneNumber:      r.PhoneNumber,
		Website:          r.Website,
		PrimaryType:      r.PrimaryType,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		EditorialSummary: r.EditorialSummary,
	}
}

func newListingResponse(listing *entity.Listing) *ListingResponse {
	resp := &ListingResponse{
		ExternalID:       listing.ExternalID,
		Name:             listing.Name,
		FormattedAddress: listing.FormattedAddress,
		Latitude:         listing.Latitude,
		Longitude:        listing.Longitude,
		PhoneNumber:      listing.PhoneNumber,
		Website:          listing.Website,
		PrimaryType:      listing.PrimaryType,
		Types:            listing.Types,
		Rating:           listing.Rating,
		UserRatingsTotal: listing.UserRatingsTotal,
		EditorialSummary: listing.EditorialSummary,
		CreatedAt:        listing.CreatedAt,
		UpdatedAt:        listing.UpdatedAt,
	}

	if resp.Types == nil {
		resp.Types = []string{}
	}

	for _, review := range listing.Reviews {
		resp.Reviews = append(resp.Reviews, ReviewResponse(review))
	}

	for _, photo := range listing.Photos {
		resp.Photos = append(resp.Photos, PhotoResponse(photo))
	}

	for _, period := range listing.OpeningPeriods {
		resp.OpeningPeriods = append(resp.OpeningPeriods, OpeningPeriodResponse(period))
	}

	return resp
}

func newListingResponses(listings []*entity.Listing) []*ListingResponse {
	result := make([]*ListingResponse, 0, len(listings))
	for _, listing := range listings {
		result = append(result, newListingResponse(listing))
	}

	return result
}

func newNearbyResponses(nearby []*entity.NearbyListing) []*ListingResponse {
	result := make([]*ListingResponse, 0, len(nearby))
	for _, item := range nearby {
		resp := newListingResponse(item.Listing)
		distance := item.DistanceKm
		resp.DistanceKm = &distance
		result = append(result, resp)
	}

	return result
}
