// Package client provides HTTP client functionality for the Pexels API
package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// EnvAPIKey is the environment variable consulted when Config.APIKey is empty.
const EnvAPIKey = "PEXELS_API_KEY"

// Client defines the interface for interacting with the Pexels API.
// Implementations are stateless per call and safe for concurrent use.
type Client interface {
	// SearchPhotos searches the photo catalog for the given query
	SearchPhotos(ctx context.Context, query string, params PhotoSearchParams) (*PhotoList, error)
	// SearchVideos searches the video catalog for the given query
	SearchVideos(ctx context.Context, query string, params VideoSearchParams) (*VideoList, error)
	// Photo fetches a single photo by ID
	Photo(ctx context.Context, id int) (*Photo, error)
	// Video fetches a single video by ID
	Video(ctx context.Context, id int) (*Video, error)
	// PopularVideos lists the currently popular videos
	PopularVideos(ctx context.Context, params PopularVideoParams) (*VideoList, error)
	// CuratedPhotos lists photos curated by the Pexels team
	CuratedPhotos(ctx context.Context, params PageParams) (*PhotoList, error)
	// FeaturedCollections lists the featured collections
	FeaturedCollections(ctx context.Context, params PageParams) (*CollectionList, error)
	// MyCollections lists the collections owned by the API key's account
	MyCollections(ctx context.Context, params PageParams) (*CollectionList, error)
	// CollectionMedia lists the media inside a collection
	CollectionMedia(ctx context.Context, id string, params CollectionMediaParams) (*MediaList, error)
}

// Config holds client configuration
type Config struct {
	// BaseURL serves the photo and collection endpoints.
	BaseURL string
	// VideoBaseURL serves the video endpoints; Pexels hosts them separately.
	VideoBaseURL string
	// APIKey authenticates every request. When empty, New falls back to the
	// EnvAPIKey environment variable.
	APIKey    string
	Timeout   time.Duration
	UserAgent string
	// HTTPClient overrides the transport. Nil builds one from Timeout.
	HTTPClient *http.Client
	// RateLimit paces outgoing requests when positive. The limiter only
	// delays requests; it never retries them.
	RateLimit rate.Limit
	RateBurst int
	Logger    Logger
}

const (
	defaultBaseURL      = "https://api.pexels.com/v1"
	defaultVideoBaseURL = "https://api.pexels.com/videos"
	defaultTimeout      = 30 * time.Second
	defaultUserAgent    = "pexels-go/1.0"
)

// defaultLogger is the default no-op logger instance
var defaultLogger = &noopLogger{}

// DefaultConfig returns a default client configuration
func DefaultConfig(apiKey string) Config {
	return Config{
		BaseURL:      defaultBaseURL,
		VideoBaseURL: defaultVideoBaseURL,
		APIKey:       apiKey,
		Timeout:      defaultTimeout,
		UserAgent:    defaultUserAgent,
		Logger:       defaultLogger,
	}
}

// client implements the Client interface
type client struct {
	httpClient *httpClient
	logger     Logger
}

// New creates a new Pexels API client. An empty Config.APIKey falls back to
// the PEXELS_API_KEY environment variable; an explicit key always wins.
func New(config Config) (Client, error) {
	if config.APIKey == "" {
		config.APIKey = os.Getenv(EnvAPIKey)
	}
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.VideoBaseURL == "" {
		config.VideoBaseURL = defaultVideoBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.Logger == nil {
		config.Logger = defaultLogger
	}

	return &client{
		httpClient: newHTTPClient(config),
		logger:     config.Logger,
	}, nil
}

// SearchPhotos implements Client.SearchPhotos
func (c *client) SearchPhotos(ctx context.Context, query string, params PhotoSearchParams) (*PhotoList, error) {
	if query == "" {
		return nil, &ValidationError{Param: "query", Reason: "must not be empty"}
	}

	q, err := params.query()
	if err != nil {
		return nil, err
	}
	q.Set("query", query)

	var list PhotoList
	if err := c.httpClient.get(ctx, c.httpClient.baseURL, "/search", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SearchVideos implements Client.SearchVideos
func (c *client) SearchVideos(ctx context.Context, query string, params VideoSearchParams) (*VideoList, error) {
	if query == "" {
		return nil, &ValidationError{Param: "query", Reason: "must not be empty"}
	}

	q, err := params.query()
	if err != nil {
		return nil, err
	}
	q.Set("query", query)

	var list VideoList
	if err := c.httpClient.get(ctx, c.httpClient.videoBaseURL, "/search", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Photo implements Client.Photo
func (c *client) Photo(ctx context.Context, id int) (*Photo, error) {
	var photo Photo
	if err := c.httpClient.get(ctx, c.httpClient.baseURL, fmt.Sprintf("/photos/%d", id), nil, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// Video implements Client.Video
func (c *client) Video(ctx context.Context, id int) (*Video, error) {
	var video Video
	if err := c.httpClient.get(ctx, c.httpClient.videoBaseURL, fmt.Sprintf("/videos/%d", id), nil, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// PopularVideos implements Client.PopularVideos
func (c *client) PopularVideos(ctx context.Context, params PopularVideoParams) (*VideoList, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}

	var list VideoList
	if err := c.httpClient.get(ctx, c.httpClient.videoBaseURL, "/popular", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CuratedPhotos implements Client.CuratedPhotos
func (c *client) CuratedPhotos(ctx context.Context, params PageParams) (*PhotoList, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}

	var list PhotoList
	if err := c.httpClient.get(ctx, c.httpClient.baseURL, "/curated", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// FeaturedCollections implements Client.FeaturedCollections
func (c *client) FeaturedCollections(ctx context.Context, params PageParams) (*CollectionList, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}

	var list CollectionList
	if err := c.httpClient.get(ctx, c.httpClient.baseURL, "/collections/featured", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// MyCollections implements Client.MyCollections
func (c *client) MyCollections(ctx context.Context, params PageParams) (*CollectionList, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}

	var list CollectionList
	if err := c.httpClient.get(ctx, c.httpClient.baseURL, "/collections", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CollectionMedia implements Client.CollectionMedia
func (c *client) CollectionMedia(ctx context.Context, id string, params CollectionMediaParams) (*MediaList, error) {
	if id == "" {
		return nil, &ValidationError{Param: "collection_id", Reason: "must not be empty"}
	}

	q, err := params.query()
	if err != nil {
		return nil, err
	}

	var list MediaList
	if err := c.httpClient.get(ctx, c.httpClient.baseURL, "/collections/"+id, q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
