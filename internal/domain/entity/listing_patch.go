package entity

// ListingPatch is a partial update of a listing's scalar attributes.
// A nil field is left unchanged; a non-nil field overwrites the stored value.
type ListingPatch struct {
	Name             *string
	FormattedAddress *string
	Latitude         *float64
	Longitude        *float64
	PhoneNumber      *string
	Website          *string
	PrimaryType      *string
	Rating           *float64
	UserRatingsTotal *int
	EditorialSummary *string
}

// IsEmpty reports whether the patch would change nothing.
func (p *ListingPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.FormattedAddress == nil &&
		p.Latitude == nil &&
		p.Longitude == nil &&
		p.PhoneNumber == nil &&
		p.Website == nil &&
		p.PrimaryType == nil &&
		p.Rating == nil &&
		p.UserRatingsTotal == nil &&
		p.EditorialSummary == nil
}

// ListingFilter selects a page of listings.
type ListingFilter struct {
	PrimaryType string
	Offset      int
	Limit       int
}

// BoundingBox is an axis-aligned latitude/longitude window used to prefilter nearby searches.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NearbyListing pairs a listing with its great-circle distance from the search origin.
type NearbyListing struct {
	Listing    *Listing
	DistanceKm float64
}
