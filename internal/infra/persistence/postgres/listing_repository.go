package postgres

import (
	"context"
	"time"

	"bizdir/config"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultChildInsertBatchSize = 100

// upsertListingSQL overwrites every mutable column on conflict. xmax is zero only for a
// tuple created by the current statement, which tells an insert apart from an update
// without a separate existence check.
const upsertListingSQL = `
INSERT INTO listings (
	place_id, name, formatted_address, latitude, longitude, phone_number, website,
	primary_type, types, rating, user_ratings_total, editorial_summary, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
ON CONFLICT (place_id) DO UPDATE SET
	name = EXCLUDED.name,
	formatted_address = EXCLUDED.formatted_address,
	latitude = EXCLUDED.latitude,
	longitude = EXCLUDED.longitude,
	phone_number = EXCLUDED.phone_number,
	website = EXCLUDED.website,
	primary_type = EXCLUDED.primary_type,
	types = EXCLUDED.types,
	rating = EXCLUDED.rating,
	user_ratings_total = EXCLUDED.user_ratings_total,
	editorial_summary = EXCLUDED.editorial_summary,
	updated_at = NOW()
RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`

type upsertResult struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Inserted  bool
}

// listingRepository implements the domain.ListingRepository interface.
type listingRepository struct {
	db                   *gorm.DB
	childInsertBatchSize int
}

// NewListingRepository is the constructor for listingRepository outside of a transaction.
func NewListingRepository(db *gorm.DB, cfg *config.Config) repository.ListingRepository {
	return newListingRepository(db, childBatchSize(cfg))
}

func newListingRepository(db *gorm.DB, childInsertBatchSize int) *listingRepository {
	if childInsertBatchSize <= 0 {
		childInsertBatchSize = defaultChildInsertBatchSize
	}

	return &listingRepository{
		db:                   db,
		childInsertBatchSize: childInsertBatchSize,
	}
}

// Upsert inserts the listing or overwrites the row that already carries its external ID.
func (repo *listingRepository) Upsert(ctx context.Context, listing *entity.Listing) (bool, error) {
	var result upsertResult

	err := repo.db.WithContext(ctx).Raw(upsertListingSQL,
		listing.ExternalID,
		listing.Name,
		listing.FormattedAddress,
		listing.Latitude,
		listing.Longitude,
		listing.PhoneNumber,
		listing.Website,
		listing.PrimaryType,
		datatypes.JSONSlice[string](listing.Types),
		listing.Rating,
		listing.UserRatingsTotal,
		listing.EditorialSummary,
	).Scan(&result).Error
	if err != nil {
		return false, classifyWriteError(listing.ExternalID, err)
	}

	listing.ID = result.ID
	listing.CreatedAt = result.CreatedAt
	listing.UpdatedAt = result.UpdatedAt

	return result.Inserted, nil
}

// ReplaceReviews deletes the stored reviews of a listing and inserts the given set.
func (repo *listingRepository) ReplaceReviews(ctx context.Context, externalID string, reviews []entity.Review) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("place_id = ?", externalID).Delete(&model.ListingReviewModel{}).Error; err != nil {
		return classifyWriteError(externalID, errors.Wrap(err, "failed to delete reviews"))
	}

	if len(reviews) == 0 {
		return nil
	}

	reviewModels := make([]*model.ListingReviewModel, 0, len(reviews))
	for i := range reviews {
		reviewModels = append(reviewModels, fromReviewDomain(externalID, i, &reviews[i]))
	}

	if err := db.CreateInBatches(reviewModels, repo.childInsertBatchSize).Error; err != nil {
		return classifyWriteError(externalID, errors.Wrap(err, "failed to insert reviews"))
	}

	return nil
}

// ReplacePhotos deletes the stored photos of a listing and inserts the given set.
func (repo *listingRepository) ReplacePhotos(ctx context.Context, externalID string, photos []entity.Photo) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("place_id = ?", externalID).Delete(&model.ListingPhotoModel{}).Error; err != nil {
		return classifyWriteError(externalID, errors.Wrap(err, "failed to delete photos"))
	}

	if len(photos) == 0 {
		return nil
	}

	photoModels := make([]*model.ListingPhotoModel, 0, len(photos))
	for i := range photos {
		photoModels = append(photoModels, fromPhotoDomain(externalID, i, &photos[i]))
	}

	if err := db.CreateInBatches(photoModels, repo.childInsertBatchSize).Error; err != nil {
		return classifyWriteError(externalID, errors.Wrap(err, "failed to insert photos"))
	}

	return nil
}

// ReplaceOpeningPeriods deletes the stored opening hours of a listing and inserts the given set.
func (repo *listingRepository) ReplaceOpeningPeriods(ctx context.Context, externalID string, periods []entity.OpeningPeriod) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("place_id = ?", externalID).Delete(&model.ListingOpeningHourModel{}).Error; err != nil {
		return classifyWriteError(externalID, errors.Wrap(err, "failed to delete opening hours"))
	}

	if len(periods) == 0 {
		return nil
	}

	periodModels := make([]*model.ListingOpeningHourModel, 0, len(periods))
	for i := range periods {
		periodModels = append(periodModels, fromOpeningPeriodDomain(externalID, &periods[i]))
	}

	if err := db.CreateInBatches(periodModels, repo.childInsertBatchSize).Error; err != nil {
		return classifyWriteError(externalID, errors.Wrap(err, "failed to insert opening hours"))
	}

	return nil
}

// FindByExternalID retrieves a listing and its children.
func (repo *listingRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Listing, error) {
	var listingM model.ListingModel

	err := repo.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("OpeningPeriods", func(db *gorm.DB) *gorm.DB { return db.Order("open_day ASC, open_time ASC") }).
		Where("place_id = ?", externalID).
		First(&listingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find listing by external ID")
	}

	return toListingDomain(&listingM, true), nil
}

// List returns one page of listings ordered by name.
func (repo *listingRepository) List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ListingModel{})
	if filter.PrimaryType != "" {
		query = query.Where("primary_type = ?", filter.PrimaryType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count listings")
	}

	var listingModels []*model.ListingModel
	if err := query.
		Order("name ASC").
		Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&listingModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM, false))
	}

	return listings, total, nil
}

// FindWithinBounds returns listings inside box. A box whose MinLng exceeds MaxLng spans the antimeridian.
func (repo *listingRepository) FindWithinBounds(ctx context.Context, box entity.BoundingBox) ([]*entity.Listing, error) {
	query := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat)

	if box.MinLng <= box.MaxLng {
		query = query.Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng)
	} else {
		query = query.Where("(longitude >= ? OR longitude <= ?)", box.MinLng, box.MaxLng)
	}

	var listingModels []*model.ListingModel
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find listings within bounds")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM, false))
	}

	return listings, nil
}

// ApplyPatch writes only the columns the patch sets.
func (repo *listingRepository) ApplyPatch(ctx context.Context, externalID string, patch *entity.ListingPatch) error {
	updates := patchColumns(patch)
	updates["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("place_id = ?", externalID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to patch listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// Delete removes a listing; its children go with it through ON DELETE CASCADE.
func (repo *listingRepository) Delete(ctx context.Context, externalID string) error {
	result := repo.db.WithContext(ctx).
		Where("place_id = ?", externalID).
		Delete(&model.ListingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func patchColumns(patch *entity.ListingPatch) map[string]any {
	updates := make(map[string]any)
	if patch == nil {
		return updates
	}

	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.FormattedAddress != nil {
		updates["formatted_address"] = *patch.FormattedAddress
	}
	if patch.Latitude != nil {
		updates["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		updates["longitude"] = *patch.Longitude
	}
	if patch.PhoneNumber != nil {
		updates["phone_number"] = *patch.PhoneNumber
	}
	if patch.Website != nil {
		updates["website"] = *patch.Website
	}
	if patch.PrimaryType != nil {
		updates["primary_type"] = *patch.PrimaryType
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.UserRatingsTotal != nil {
		updates["user_ratings_total"] = *patch.UserRatingsTotal
	}
	if patch.EditorialSummary != nil {
		updates["editorial_summary"] = *patch.EditorialSummary
	}

	return updates
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
// Children are only mapped when they were loaded, so absent collections stay nil.
func toListingDomain(data *model.ListingModel, withChildren bool) *entity.Listing {
	if data == nil {
		return nil
	}

	listing := &entity.Listing{
		ID:               data.ID,
		ExternalID:       data.PlaceID,
		Name:             data.Name,
		FormattedAddress: data.FormattedAddress,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		PhoneNumber:      data.PhoneNumber,
		Website:          data.Website,
		PrimaryType:      data.PrimaryType,
		Types:            []string(data.Types),
		Rating:           data.Rating,
		UserRatingsTotal: data.UserRatingsTotal,
		EditorialSummary: data.EditorialSummary,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if !withChildren {
		return listing
	}

	listing.Reviews = make([]entity.Review, 0, len(data.Reviews))
	for i := range data.Reviews {
		listing.Reviews = append(listing.Reviews, toReviewDomain(&data.Reviews[i]))
	}

	listing.Photos = make([]entity.Photo, 0, len(data.Photos))
	for i := range data.Photos {
		listing.Photos = append(listing.Photos, toPhotoDomain(&data.Photos[i]))
	}

	listing.OpeningPeriods = make([]entity.OpeningPeriod, 0, len(data.OpeningPeriods))
	for i := range data.OpeningPeriods {
		listing.OpeningPeriods = append(listing.OpeningPeriods, toOpeningPeriodDomain(&data.OpeningPeriods[i]))
	}

	return listing
}

func toReviewDomain(data *model.ListingReviewModel) entity.Review {
	return entity.Review{
		AuthorName:              data.AuthorName,
		Rating:                  data.Rating,
		RelativeTimeDescription: data.RelativeTimeDescription,
		Time:                    data.ReviewTime,
		Text:                    data.Text,
		ProfilePhotoURL:         data.ProfilePhotoURL,
		AuthorURL:               data.AuthorURL,
	}
}

func fromReviewDomain(externalID string, position int, data *entity.Review) *model.ListingReviewModel {
	return &model.ListingReviewModel{
		PlaceID:                 externalID,
		Position:                position,
		AuthorName:              data.AuthorName,
		Rating:                  data.Rating,
		RelativeTimeDescription: data.RelativeTimeDescription,
		ReviewTime:              data.Time,
		Text:                    data.Text,
		ProfilePhotoURL:         data.ProfilePhotoURL,
		AuthorURL:               data.AuthorURL,
	}
}

func toPhotoDomain(data *model.ListingPhotoModel) entity.Photo {
	return entity.Photo{
		PhotoReference: data.PhotoReference,
		Height:         data.Height,
		Width:          data.Width,
		Attributions:   []string(data.Attributions),
	}
}

func fromPhotoDomain(externalID string, position int, data *entity.Photo) *model.ListingPhotoModel {
	attributions := data.Attributions
	if attributions == nil {
		attributions = []string{}
	}

	return &model.ListingPhotoModel{
		PlaceID:        externalID,
		Position:       position,
		PhotoReference: data.PhotoReference,
		Height:         data.Height,
		Width:          data.Width,
		Attributions:   datatypes.JSONSlice[string](attributions),
	}
}

func toOpeningPeriodDomain(data *model.ListingOpeningHourModel) entity.OpeningPeriod {
	return entity.OpeningPeriod{
		OpenDay:   data.OpenDay,
		OpenTime:  data.OpenTime,
		CloseDay:  data.CloseDay,
		CloseTime: data.CloseTime,
	}
}

func fromOpeningPeriodDomain(externalID string, data *entity.OpeningPeriod) *model.ListingOpeningHourModel {
	return &model.ListingOpeningHourModel{
		PlaceID:   externalID,
		OpenDay:   data.OpenDay,
		OpenTime:  data.OpenTime,
		CloseDay:  data.CloseDay,
		CloseTime: data.CloseTime,
	}
}
