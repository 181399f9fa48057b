// Package client provides HTTP client functionality for the Pexels API
package client

import (
	"context"
	"fmt"
)

// PhotoPager walks the pages of a photo list endpoint. The endpoint methods
// themselves are single-shot; the pager is an opt-in convenience that follows
// the next_page links echoed by the API.
type PhotoPager struct {
	fetch   func(ctx context.Context, page int) (*PhotoList, error)
	page    int
	started bool
	hasMore bool
}

// NewPhotoSearchPager creates a pager over SearchPhotos results.
// Paging starts at params.Page (or 1 when unset); params.PerPage controls
// the page size throughout.
func NewPhotoSearchPager(c Client, query string, params PhotoSearchParams) *PhotoPager {
	return &PhotoPager{
		fetch: func(ctx context.Context, page int) (*PhotoList, error) {
			p := params
			p.Page = page
			return c.SearchPhotos(ctx, query, p)
		},
		page: startPage(params.Page),
	}
}

// NewCuratedPager creates a pager over CuratedPhotos results
func NewCuratedPager(c Client, params PageParams) *PhotoPager {
	return &PhotoPager{
		fetch: func(ctx context.Context, page int) (*PhotoList, error) {
			p := params
			p.Page = page
			return c.CuratedPhotos(ctx, p)
		},
		page: startPage(params.Page),
	}
}

// NextPage fetches the next page of photos
func (p *PhotoPager) NextPage(ctx context.Context) (*PhotoList, error) {
	if p.started && !p.hasMore {
		return nil, fmt.Errorf("pexels: no more pages available")
	}

	list, err := p.fetch(ctx, p.page)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", p.page, err)
	}

	p.started = true
	p.hasMore = list.NextPage != ""
	p.page++

	return list, nil
}

// HasMore returns true if there are more pages to fetch
func (p *PhotoPager) HasMore() bool {
	return !p.started || p.hasMore
}

// All fetches every remaining page and returns the photos as a single slice.
// Note: this can burn through the request quota for broad queries.
func (p *PhotoPager) All(ctx context.Context) ([]Photo, error) {
	var photos []Photo

	for p.HasMore() {
		list, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		photos = append(photos, list.Photos...)
	}

	return photos, nil
}

// VideoPager walks the pages of a video list endpoint
type VideoPager struct {
	fetch   func(ctx context.Context, page int) (*VideoList, error)
	page    int
	started bool
	hasMore bool
}

// NewVideoSearchPager creates a pager over SearchVideos results
func NewVideoSearchPager(c Client, query string, params VideoSearchParams) *VideoPager {
	return &VideoPager{
		fetch: func(ctx context.Context, page int) (*VideoList, error) {
			p := params
			p.Page = page
			return c.SearchVideos(ctx, query, p)
		},
		page: startPage(params.Page),
	}
}

// NewPopularPager creates a pager over PopularVideos results
func NewPopularPager(c Client, params PopularVideoParams) *VideoPager {
	return &VideoPager{
		fetch: func(ctx context.Context, page int) (*VideoList, error) {
			p := params
			p.Page = page
			return c.PopularVideos(ctx, p)
		},
		page: startPage(params.Page),
	}
}

// NextPage fetches the next page of videos
func (p *VideoPager) NextPage(ctx context.Context) (*VideoList, error) {
	if p.started && !p.hasMore {
		return nil, fmt.Errorf("pexels: no more pages available")
	}

	list, err := p.fetch(ctx, p.page)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", p.page, err)
	}

	p.started = true
	p.hasMore = list.NextPage != ""
	p.page++

	return list, nil
}

// HasMore returns true if there are more pages to fetch
func (p *VideoPager) HasMore() bool {
	return !p.started || p.hasMore
}

// All fetches every remaining page and returns the videos as a single slice
func (p *VideoPager) All(ctx context.Context) ([]Video, error) {
	var videos []Video

	for p.HasMore() {
		list, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		videos = append(videos, list.Videos...)
	}

	return videos, nil
}

func startPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
