package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"bizdir/config"
	deliverycontext "bizdir/internal/delivery/context"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/errors"
	"bizdir/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const metersPerKm = 1000.0

type listingService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	config      *config.ListingConfig
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService creates a new listing service instance. The config is expected to have
// its defaults applied by config.New.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		config:      params.Config.Listing,
		logger:      params.Logger,
	}
}

func (s *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, s.logger)
}

// GetListing retrieves a listing with its children.
func (s *listingService) GetListing(ctx context.Context, externalID string) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, mapListingError(err)
	}

	return listing, nil
}

// ListListings retrieves one page of listings. Page numbers start at 1.
func (s *listingService) ListListings(ctx context.Context, input *usecase.ListListingsInput) (*usecase.ListListingsOutput, error) {
	page := max(input.Page, 1)
	limit := s.pageSize(input.Limit)

	listings, total, err := s.listingRepo.List(ctx, entity.ListingFilter{
		PrimaryType: strings.TrimSpace(input.PrimaryType),
		Offset:      (page - 1) * limit,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ListListingsOutput{
		Listings: listings,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// NearbyListings prefilters by bounding box in SQL and then filters and sorts by great-circle distance.
func (s *listingService) NearbyListings(ctx context.Context, input *usecase.NearbyListingsInput) ([]*entity.NearbyListing, error) {
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates are out of range")
	}

	if input.RadiusKm <= 0 || input.RadiusKm > s.config.MaxNearbyRadiusKm {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("radiusKm must be greater than 0 and at most %g", s.config.MaxNearbyRadiusKm),
		)
	}

	limit := s.pageSize(input.Limit)
	origin := orb.Point{input.Longitude, input.Latitude}
	radiusMeters := input.RadiusKm * metersPerKm

	candidates, err := s.listingRepo.FindWithinBounds(ctx, boundingBox(origin, radiusMeters))
	if err != nil {
		return nil, err
	}

	nearby := make([]*entity.NearbyListing, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.HasCoordinates() {
			continue
		}

		distance := geo.DistanceHaversine(origin, orb.Point{*candidate.Longitude, *candidate.Latitude})
		if distance > radiusMeters {
			continue
		}

		nearby = append(nearby, &entity.NearbyListing{
			Listing:    candidate,
			DistanceKm: distance / metersPerKm,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	s.log(ctx).Debug("Nearby search",
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(nearby)),
	)

	return nearby, nil
}

// PatchListing applies the patch and reloads the listing in the same transaction.
func (s *listingService) PatchListing(ctx context.Context, externalID string, patch *entity.ListingPatch) (*entity.Listing, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be blank")
	}

	var updated *entity.Listing
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		if err := listingRepo.ApplyPatch(ctx, externalID, patch); err != nil {
			return err
		}

		listing, err := listingRepo.FindByExternalID(ctx, externalID)
		if err != nil {
			return err
		}
		updated = listing

		return nil
	})
	if err != nil {
		return nil, mapListingError(err)
	}

	s.log(ctx).Info("Listing patched", slog.String("external_id", externalID))

	return updated, nil
}

// DeleteListing removes a listing and its children.
func (s *listingService) DeleteListing(ctx context.Context, externalID string) error {
	if err := s.listingRepo.Delete(ctx, externalID); err != nil {
		return mapListingError(err)
	}

	s.log(ctx).Info("Listing deleted", slog.String("external_id", externalID))

	return nil
}

func (s *listingService) pageSize(requested int) int {
	if requested <= 0 {
		return s.config.DefaultPageSize
	}

	return min(requested, s.config.MaxPageSize)
}

func mapListingError(err error) error {
	if errors.Is(err, repository.ErrListingNotFound) {
		return domainerrors.ErrListingNotFound
	}

	return err
}

// boundingBox returns the lat/lng window enclosing the circle. Near the antimeridian the
// window wraps and MinLng ends up greater than MaxLng; near a pole it spans every longitude.
func boundingBox(center orb.Point, radiusMeters float64) entity.BoundingBox {
	bound := geo.NewBoundAroundPoint(center, radiusMeters)

	box := entity.BoundingBox{
		MinLat: bound.Min.Lat(),
		MaxLat: bound.Max.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLng: bound.Max.Lon(),
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 {
		box.MinLat = math.Max(box.MinLat, -90)
		box.MaxLat = math.Min(box.MaxLat, 90)
		box.MinLng, box.MaxLng = -180, 180

		return box
	}

	if box.MinLng < -180 {
		box.MinLng += 360
	}
	if box.MaxLng > 180 {
		box.MaxLng -= 360
	}

	return box
}
