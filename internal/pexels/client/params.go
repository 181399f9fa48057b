// Package client provides HTTP client functionality for the Pexels API
package client

import (
	"net/url"
	"strconv"
)

// Documented per_page ceiling for all list endpoints.
const (
	minPerPage = 1
	maxPerPage = 80
)

// Allowed values for the enumerated query parameters.
var (
	allowedOrientations = []string{"landscape", "portrait", "square"}
	allowedSizes        = []string{"large", "medium", "small"}
	allowedMediaTypes   = []string{"photos", "videos"}
	allowedSortOrders   = []string{"asc", "desc"}
)

// PhotoSearchParams holds the optional filters for SearchPhotos.
// Zero values are treated as omitted and never reach the wire.
type PhotoSearchParams struct {
	Orientation string // "landscape", "portrait" or "square"
	Size        string // "large" (24MP), "medium" (12MP) or "small" (4MP)
	Color       string // color name or "#rrggbb" hex code
	Locale      string // e.g. "en-US", "pt-BR"
	Page        int
	PerPage     int
}

func (p PhotoSearchParams) query() (url.Values, error) {
	if err := validateEnum("orientation", p.Orientation, allowedOrientations); err != nil {
		return nil, err
	}
	if err := validateEnum("size", p.Size, allowedSizes); err != nil {
		return nil, err
	}
	if err := validatePaging(p.Page, p.PerPage); err != nil {
		return nil, err
	}

	q := url.Values{}
	setString(q, "orientation", p.Orientation)
	setString(q, "size", p.Size)
	setString(q, "color", p.Color)
	setString(q, "locale", p.Locale)
	setPaging(q, p.Page, p.PerPage)
	return q, nil
}

// VideoSearchParams holds the optional filters for SearchVideos.
type VideoSearchParams struct {
	Orientation string // "landscape", "portrait" or "square"
	Size        string // "large" (4K), "medium" (Full HD) or "small" (HD)
	Locale      string
	Page        int
	PerPage     int
}

func (p VideoSearchParams) query() (url.Values, error) {
	if err := validateEnum("orientation", p.Orientation, allowedOrientations); err != nil {
		return nil, err
	}
	if err := validateEnum("size", p.Size, allowedSizes); err != nil {
		return nil, err
	}
	if err := validatePaging(p.Page, p.PerPage); err != nil {
		return nil, err
	}

	q := url.Values{}
	setString(q, "orientation", p.Orientation)
	setString(q, "size", p.Size)
	setString(q, "locale", p.Locale)
	setPaging(q, p.Page, p.PerPage)
	return q, nil
}

// PopularVideoParams holds the optional filters for PopularVideos.
// Dimensions are pixels, durations are seconds.
type PopularVideoParams struct {
	MinWidth    int
	MinHeight   int
	MinDuration int
	MaxDuration int
	Page        int
	PerPage     int
}

func (p PopularVideoParams) query() (url.Values, error) {
	for _, bound := range []struct {
		name  string
		value int
	}{
		{"min_width", p.MinWidth},
		{"min_height", p.MinHeight},
		{"min_duration", p.MinDuration},
		{"max_duration", p.MaxDuration},
	} {
		if bound.value < 0 {
			return nil, &ValidationError{
				Param:  bound.name,
				Value:  strconv.Itoa(bound.value),
				Reason: "must not be negative",
			}
		}
	}
	if p.MinDuration > 0 && p.MaxDuration > 0 && p.MaxDuration < p.MinDuration {
		return nil, &ValidationError{
			Param:  "max_duration",
			Value:  strconv.Itoa(p.MaxDuration),
			Reason: "must not be less than min_duration",
		}
	}
	if err := validatePaging(p.Page, p.PerPage); err != nil {
		return nil, err
	}

	q := url.Values{}
	setInt(q, "min_width", p.MinWidth)
	setInt(q, "min_height", p.MinHeight)
	setInt(q, "min_duration", p.MinDuration)
	setInt(q, "max_duration", p.MaxDuration)
	setPaging(q, p.Page, p.PerPage)
	return q, nil
}

// PageParams holds plain pagination controls for endpoints without filters.
type PageParams struct {
	Page    int
	PerPage int
}

func (p PageParams) query() (url.Values, error) {
	if err := validatePaging(p.Page, p.PerPage); err != nil {
		return nil, err
	}

	q := url.Values{}
	setPaging(q, p.Page, p.PerPage)
	return q, nil
}

// CollectionMediaParams holds the optional filters for CollectionMedia.
type CollectionMediaParams struct {
	MediaType string // "photos" or "videos"; empty returns both
	Sort      string // "asc" or "desc"
	Page      int
	PerPage   int
}

func (p CollectionMediaParams) query() (url.Values, error) {
	if err := validateEnum("type", p.MediaType, allowedMediaTypes); err != nil {
		return nil, err
	}
	if err := validateEnum("sort", p.Sort, allowedSortOrders); err != nil {
		return nil, err
	}
	if err := validatePaging(p.Page, p.PerPage); err != nil {
		return nil, err
	}

	q := url.Values{}
	setString(q, "type", p.MediaType)
	setString(q, "sort", p.Sort)
	setPaging(q, p.Page, p.PerPage)
	return q, nil
}

// validateEnum rejects values outside the allowed set. Empty means omitted.
func validateEnum(param, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{Param: param, Value: value, Allowed: allowed}
}

// validatePaging enforces page >= 1 and per_page within [1, 80] when provided.
func validatePaging(page, perPage int) error {
	if page < 0 {
		return &ValidationError{
			Param:  "page",
			Value:  strconv.Itoa(page),
			Reason: "must be a positive integer",
		}
	}
	if perPage != 0 && (perPage < minPerPage || perPage > maxPerPage) {
		return &ValidationError{
			Param:  "per_page",
			Value:  strconv.Itoa(perPage),
			Reason: "must be between 1 and 80",
		}
	}
	return nil
}

func setPaging(q url.Values, page, perPage int) {
	setInt(q, "page", page)
	setInt(q, "per_page", perPage)
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setInt(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
