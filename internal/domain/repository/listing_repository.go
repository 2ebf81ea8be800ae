// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bizdir/internal/domain/entity"
	"bizdir/internal/errors"
)

// ErrListingNotFound is returned when no listing has the requested external ID.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the listing write and read operations.
type ListingRepository interface {
	// Upsert inserts the listing or, when its external ID already exists, overwrites every
	// mutable column in place. inserted is true only when a new row was created.
	Upsert(ctx context.Context, listing *entity.Listing) (inserted bool, err error)

	// ReplaceReviews deletes every review stored for externalID, then inserts reviews.
	ReplaceReviews(ctx context.Context, externalID string, reviews []entity.Review) error

	// ReplacePhotos deletes every photo stored for externalID, then inserts photos.
	ReplacePhotos(ctx context.Context, externalID string, photos []entity.Photo) error

	// ReplaceOpeningPeriods deletes every opening period stored for externalID, then inserts periods.
	ReplaceOpeningPeriods(ctx context.Context, externalID string, periods []entity.OpeningPeriod) error

	// FindByExternalID loads a listing with its reviews, photos and opening periods.
	// Returns ErrListingNotFound if absent.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Listing, error)

	// List returns one page of listings without children and the total matching count.
	List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error)

	// FindWithinBounds returns listings whose coordinates fall inside box.
	FindWithinBounds(ctx context.Context, box entity.BoundingBox) ([]*entity.Listing, error)

	// ApplyPatch writes the non-nil fields of patch. Returns ErrListingNotFound if absent.
	ApplyPatch(ctx context.Context, externalID string, patch *entity.ListingPatch) error

	// Delete removes the listing and, through the foreign keys, its children.
	// Returns ErrListingNotFound if absent.
	Delete(ctx context.Context, externalID string) error
}
