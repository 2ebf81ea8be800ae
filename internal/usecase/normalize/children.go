package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bizdir/internal/domain/entity"
	"bizdir/internal/errors"
)

var errInvalidTimestamp = errors.New("must be unix seconds or an RFC 3339 date")

var (
	reviewsPaths = []string{"reviews"}
	photosPaths  = []string{"photos"}
	periodsPaths = []string{"opening_hours.periods", "openingHours.periods", "openingPeriods"}
)

// collection returns the objects stored under the first existing path.
// A missing key or a JSON null yields (nil, nil) so the caller leaves stored rows alone.
func collection(raw map[string]any, field string, paths []string) ([]map[string]any, error) {
	for _, path := range paths {
		value, ok := lookup(raw, path)
		if !ok {
			continue
		}

		if value == nil {
			return nil, nil
		}

		items, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("%s must be an array", field)
		}

		objects := make([]map[string]any, 0, len(items))
		for i, item := range items {
			object, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be an object", field, i)
			}
			objects = append(objects, object)
		}

		return objects, nil
	}

	return nil, nil
}

func reviews(raw map[string]any) ([]entity.Review, error) {
	objects, err := collection(raw, "reviews", reviewsPaths)
	if err != nil || objects == nil {
		return nil, err
	}

	result := make([]entity.Review, 0, len(objects))
	for i, object := range objects {
		rating, ok := firstFloat(object, "rating", "stars")
		if !ok {
			return nil, fmt.Errorf("reviews[%d].rating must be a number", i)
		}

		reviewTime, err := reviewTimestamp(object)
		if err != nil {
			return nil, fmt.Errorf("reviews[%d].time %w", i, err)
		}

		result = append(result, entity.Review{
			AuthorName:              firstString(object, "author_name", "authorName", "author", "name"),
			Rating:                  rating,
			RelativeTimeDescription: firstString(object, "relative_time_description", "relativeTimeDescription"),
			Time:                    reviewTime,
			Text:                    firstString(object, "text"),
			ProfilePhotoURL:         firstString(object, "profile_photo_url", "profilePhotoUrl"),
			AuthorURL:               firstString(object, "author_url", "authorUrl", "reviewerUrl"),
		})
	}

	return result, nil
}

// reviewTimestamp accepts unix seconds or an RFC 3339 date.
func reviewTimestamp(object map[string]any) (*time.Time, error) {
	for _, path := range []string{"time", "publishedAtDate"} {
		value, ok := lookup(object, path)
		if !ok || value == nil {
			continue
		}

		if s, ok := value.(string); ok {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}

			if parsed, err := time.Parse(time.RFC3339, s); err == nil {
				parsed = parsed.UTC()
				return &parsed, nil
			}

			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return nil, errInvalidTimestamp
			}
		}

		seconds, ok := toFloat(value)
		if !ok {
			return nil, errInvalidTimestamp
		}

		parsed := time.Unix(int64(seconds), 0).UTC()

		return &parsed, nil
	}

	return nil, nil
}

func photos(raw map[string]any) ([]entity.Photo, error) {
	objects, err := collection(raw, "photos", photosPaths)
	if err != nil || objects == nil {
		return nil, err
	}

	result := make([]entity.Photo, 0, len(objects))
	for i, object := range objects {
		height, ok := firstInt(object, "height")
		if !ok {
			return nil, fmt.Errorf("photos[%d].height must be an integer", i)
		}

		width, ok := firstInt(object, "width")
		if !ok {
			return nil, fmt.Errorf("photos[%d].width must be an integer", i)
		}

		photo := entity.Photo{
			PhotoReference: firstString(object, "photo_reference", "photoReference", "reference"),
			Attributions:   firstStrings(object, "html_attributions", "attributions"),
		}
		if height != nil {
			photo.Height = *height
		}
		if width != nil {
			photo.Width = *width
		}

		result = append(result, photo)
	}

	return result, nil
}

func openingPeriods(raw map[string]any) ([]entity.OpeningPeriod, error) {
	objects, err := collection(raw, "openingPeriods", periodsPaths)
	if err != nil || objects == nil {
		return nil, err
	}

	result := make([]entity.OpeningPeriod, 0, len(objects))
	for i, object := range objects {
		openDay, ok := firstInt(object, "open.day", "openDay", "open_day")
		if !ok {
			return nil, fmt.Errorf("openingPeriods[%d].openDay must be an integer", i)
		}
		if openDay == nil {
			return nil, fmt.Errorf("openingPeriods[%d].openDay is required", i)
		}

		closeDay, ok := firstInt(object, "close.day", "closeDay", "close_day")
		if !ok {
			return nil, fmt.Errorf("openingPeriods[%d].closeDay must be an integer", i)
		}

		period := entity.OpeningPeriod{
			OpenDay:  *openDay,
			OpenTime: clockTime(object, "open.time", "openTime", "open_time"),
			CloseDay: closeDay,
		}

		if closeTime := clockTime(object, "close.time", "closeTime", "close_time"); closeTime != "" {
			period.CloseTime = &closeTime
		}

		result = append(result, period)
	}

	return result, nil
}

// clockTime reads an "HHMM" value. Numeric sources lose leading zeros, so 900 becomes "0900".
func clockTime(object map[string]any, paths ...string) string {
	for _, path := range paths {
		value, ok := lookup(object, path)
		if !ok || value == nil {
			continue
		}

		if s, ok := value.(string); ok {
			return strings.ReplaceAll(strings.TrimSpace(s), ":", "")
		}

		if f, ok := toFloat(value); ok {
			return fmt.Sprintf("%04d", int(f))
		}
	}

	return ""
}
