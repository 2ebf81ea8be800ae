// Package normalize turns heterogeneous source records into validated listings.
//
// Two source shapes are understood: the Google Places details shape (place_id,
// formatted_address, geometry.location, opening_hours.periods) and the scraper export
// shape (placeId, title, location, categories, totalScore). Each logical field is resolved
// from a list of alias paths; the first non-empty value wins.
package normalize

import (
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/entity"
)

var (
	externalIDPaths       = []string{"externalId", "external_id", "place_id", "placeId"}
	namePaths             = []string{"name", "title"}
	addressPaths          = []string{"formatted_address", "formattedAddress", "address", "vicinity"}
	latitudePaths         = []string{"latitude", "lat", "geometry.location.lat", "location.lat", "location.latitude"}
	longitudePaths        = []string{"longitude", "lng", "lon", "geometry.location.lng", "location.lng", "location.longitude"}
	phonePaths            = []string{"formatted_phone_number", "international_phone_number", "phoneNumber", "phone_number", "phone"}
	websitePaths          = []string{"website", "websiteUrl"}
	primaryTypePaths      = []string{"primaryType", "primary_type"}
	typesPaths            = []string{"types", "categories"}
	categoryPaths         = []string{"category", "categoryName"}
	ratingPaths           = []string{"rating", "totalScore"}
	ratingsTotalPaths     = []string{"user_ratings_total", "userRatingsTotal", "reviewsCount"}
	editorialSummaryPaths = []string{"editorial_summary.overview", "editorialSummary.overview", "editorialSummary", "editorial_summary", "description"}
)

// Record normalizes the record at position index of a batch. It has no side effects.
// Failures are returned as *errors.RecordError of kind validation, carrying index and
// whatever external ID could be resolved.
func Record(index int, raw map[string]any) (*entity.Listing, error) {
	if raw == nil {
		return nil, domainerrors.NewValidationError(index, "", "record must be a JSON object")
	}

	listing := &entity.Listing{
		ExternalID:       firstString(raw, externalIDPaths...),
		Name:             firstString(raw, namePaths...),
		FormattedAddress: firstString(raw, addressPaths...),
		PhoneNumber:      firstString(raw, phonePaths...),
		Website:          firstString(raw, websitePaths...),
		EditorialSummary: firstString(raw, editorialSummaryPaths...),
	}

	fail := func(reason string) (*entity.Listing, error) {
		return nil, domainerrors.NewValidationError(index, listing.ExternalID, reason)
	}

	var ok bool
	if listing.Latitude, ok = firstFloat(raw, latitudePaths...); !ok {
		return fail("latitude must be a number")
	}
	if listing.Longitude, ok = firstFloat(raw, longitudePaths...); !ok {
		return fail("longitude must be a number")
	}
	if (listing.Latitude == nil) != (listing.Longitude == nil) {
		return fail("latitude and longitude must be given together")
	}
	if listing.Rating, ok = firstFloat(raw, ratingPaths...); !ok {
		return fail("rating must be a number")
	}
	if listing.UserRatingsTotal, ok = firstInt(raw, ratingsTotalPaths...); !ok {
		return fail("userRatingsTotal must be an integer")
	}

	listing.Types = firstStrings(raw, typesPaths...)
	listing.PrimaryType = primaryType(raw, listing.Types)

	var err error
	if listing.Reviews, err = reviews(raw); err != nil {
		return fail(err.Error())
	}
	if listing.Photos, err = photos(raw); err != nil {
		return fail(err.Error())
	}
	if listing.OpeningPeriods, err = openingPeriods(raw); err != nil {
		return fail(err.Error())
	}

	if err := validate.Struct(listing); err != nil {
		return fail(validationMessage(err))
	}

	return listing, nil
}

// primaryType prefers an explicit value, then the first type or category.
func primaryType(raw map[string]any, types []string) string {
	if explicit := firstString(raw, primaryTypePaths...); explicit != "" {
		return explicit
	}

	if len(types) > 0 {
		return types[0]
	}

	return firstString(raw, categoryPaths...)
}
