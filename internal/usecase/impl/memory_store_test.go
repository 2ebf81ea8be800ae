package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sort"

	"bizdir/config"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// storedListing is one listing row plus its child rows.
type storedListing struct {
	listing entity.Listing
	reviews []entity.Review
	photos  []entity.Photo
	periods []entity.OpeningPeriod
}

type memoryState struct {
	listings map[string]*storedListing
	nextID   int64
}

func (s *memoryState) clone() *memoryState {
	cloned := &memoryState{
		listings: make(map[string]*storedListing, len(s.listings)),
		nextID:   s.nextID,
	}
	for id, stored := range s.listings {
		copied := *stored
		copied.reviews = slices.Clone(stored.reviews)
		copied.photos = slices.Clone(stored.photos)
		copied.periods = slices.Clone(stored.periods)
		cloned.listings[id] = &copied
	}

	return cloned
}

// memoryStore is an in-memory stand-in for the listing tables with transaction and savepoint semantics.
type memoryStore struct {
	state *memoryState

	// Errors injected by external ID.
	upsertErrors  map[string]error
	reviewErrors  map[string]error
	systemicAfter map[string]bool

	commits   int
	rollbacks int
	writes    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		state:         &memoryState{listings: make(map[string]*storedListing)},
		upsertErrors:  make(map[string]error),
		reviewErrors:  make(map[string]error),
		systemicAfter: make(map[string]bool),
	}
}

func (m *memoryStore) get(externalID string) (*storedListing, bool) {
	stored, ok := m.state.listings[externalID]

	return stored, ok
}

func (m *memoryStore) count() int {
	return len(m.state.listings)
}

// Execute implements repository.TransactionManager.
func (m *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	factory := &memoryFactory{store: m, state: m.state.clone()}

	if err := fn(factory); err != nil {
		m.rollbacks++

		return err
	}

	m.state = factory.state
	m.commits++

	return nil
}

type memoryFactory struct {
	store *memoryStore
	state *memoryState
}

func (f *memoryFactory) ListingRepo() repository.ListingRepository {
	return &memoryListingRepo{factory: f}
}

func (f *memoryFactory) Savepoint(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	snapshot := f.state.clone()

	if err := fn(f); err != nil {
		f.state = snapshot

		return err
	}

	return nil
}

type memoryListingRepo struct {
	factory *memoryFactory
}

func (r *memoryListingRepo) Upsert(_ context.Context, listing *entity.Listing) (bool, error) {
	store := r.factory.store
	if store.systemicAfter[listing.ExternalID] {
		return false, domainerrors.NewSystemicError(io.ErrUnexpectedEOF, "connection lost")
	}
	if err := store.upsertErrors[listing.ExternalID]; err != nil {
		return false, err
	}

	store.writes++
	state := r.factory.state

	if existing, ok := state.listings[listing.ExternalID]; ok {
		reviews, photos, periods := existing.reviews, existing.photos, existing.periods
		existing.listing = *listing
		existing.listing.Reviews, existing.listing.Photos, existing.listing.OpeningPeriods = nil, nil, nil
		existing.reviews, existing.photos, existing.periods = reviews, photos, periods
		listing.ID = existing.listing.ID

		return false, nil
	}

	state.nextID++
	listing.ID = state.nextID
	stored := &storedListing{listing: *listing}
	stored.listing.Reviews, stored.listing.Photos, stored.listing.OpeningPeriods = nil, nil, nil
	state.listings[listing.ExternalID] = stored

	return true, nil
}

func (r *memoryListingRepo) ReplaceReviews(_ context.Context, externalID string, reviews []entity.Review) error {
	if err := r.factory.store.reviewErrors[externalID]; err != nil {
		return err
	}

	r.factory.store.writes++
	r.factory.state.listings[externalID].reviews = slices.Clone(reviews)

	return nil
}

func (r *memoryListingRepo) ReplacePhotos(_ context.Context, externalID string, photos []entity.Photo) error {
	r.factory.store.writes++
	r.factory.state.listings[externalID].photos = slices.Clone(photos)

	return nil
}

func (r *memoryListingRepo) ReplaceOpeningPeriods(_ context.Context, externalID string, periods []entity.OpeningPeriod) error {
	r.factory.store.writes++
	r.factory.state.listings[externalID].periods = slices.Clone(periods)

	return nil
}

func (r *memoryListingRepo) FindByExternalID(_ context.Context, externalID string) (*entity.Listing, error) {
	stored, ok := r.factory.state.listings[externalID]
	if !ok {
		return nil, repository.ErrListingNotFound
	}

	listing := stored.listing
	listing.Reviews = slices.Clone(stored.reviews)
	listing.Photos = slices.Clone(stored.photos)
	listing.OpeningPeriods = slices.Clone(stored.periods)

	return &listing, nil
}

func (r *memoryListingRepo) List(_ context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	var listings []*entity.Listing
	for _, stored := range r.factory.state.listings {
		if filter.PrimaryType != "" && stored.listing.PrimaryType != filter.PrimaryType {
			continue
		}
		listing := stored.listing
		listings = append(listings, &listing)
	}

	sort.Slice(listings, func(i, j int) bool { return listings[i].Name < listings[j].Name })

	total := int64(len(listings))
	start := min(filter.Offset, len(listings))
	end := min(start+filter.Limit, len(listings))

	return listings[start:end], total, nil
}

func (r *memoryListingRepo) FindWithinBounds(context.Context, entity.BoundingBox) ([]*entity.Listing, error) {
	return nil, nil
}

func (r *memoryListingRepo) ApplyPatch(context.Context, string, *entity.ListingPatch) error {
	return nil
}

func (r *memoryListingRepo) Delete(_ context.Context, externalID string) error {
	if _, ok := r.factory.state.listings[externalID]; !ok {
		return repository.ErrListingNotFound
	}
	delete(r.factory.state.listings, externalID)

	return nil
}
