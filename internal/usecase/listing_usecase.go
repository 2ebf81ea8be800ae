package usecase

import (
	"context"

	"bizdir/internal/domain/entity"
)

// ListListingsInput represents a page request for listings.
type ListListingsInput struct {
	PrimaryType string
	Page        int
	Limit       int
}

// ListListingsOutput is one page of listings.
type ListListingsOutput struct {
	Listings []*entity.Listing
	Total    int64
	Page     int
	Limit    int
}

// NearbyListingsInput describes a radius search around a point.
type NearbyListingsInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// ListingUsecase defines the read and maintenance operations on stored listings.
type ListingUsecase interface {
	GetListing(ctx context.Context, externalID string) (*entity.Listing, error)
	ListListings(ctx context.Context, input *ListListingsInput) (*ListListingsOutput, error)
	// NearbyListings returns listings within the radius, nearest first.
	NearbyListings(ctx context.Context, input *NearbyListingsInput) ([]*entity.NearbyListing, error)
	// PatchListing writes the non-nil fields of patch and returns the stored listing.
	PatchListing(ctx context.Context, externalID string, patch *entity.ListingPatch) (*entity.Listing, error)
	DeleteListing(ctx context.Context, externalID string) error
}
