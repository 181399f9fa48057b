// Package client provides HTTP client functionality for the Pexels API
package client

import (
	"encoding/json"
	"fmt"
)

// Photo represents a single photo resource
type Photo struct {
	ID              int         `json:"id"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	URL             string      `json:"url"`
	Photographer    string      `json:"photographer"`
	PhotographerURL string      `json:"photographer_url"`
	PhotographerID  int         `json:"photographer_id"`
	AvgColor        string      `json:"avg_color"`
	Src             PhotoSource `json:"src"`
	Liked           bool        `json:"liked"`
	Alt             string      `json:"alt"`
}

// PhotoSource holds the download URLs for the available renditions of a photo
type PhotoSource struct {
	Original  string `json:"original"`
	Large     string `json:"large"`
	Large2x   string `json:"large2x"`
	Medium    string `json:"medium"`
	Small     string `json:"small"`
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
	Tiny      string `json:"tiny"`
}

// User identifies the photographer or videographer who published a resource
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VideoFile is one encoded rendition of a video
type VideoFile struct {
	ID       int     `json:"id"`
	Quality  string  `json:"quality"`
	FileType string  `json:"file_type"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FPS      float64 `json:"fps"`
	Link     string  `json:"link"`
}

// VideoPicture is a preview still extracted from a video
type VideoPicture struct {
	ID      int    `json:"id"`
	Picture string `json:"picture"`
	Nr      int    `json:"nr"`
}

// Video represents a single video resource
type Video struct {
	ID            int            `json:"id"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	URL           string         `json:"url"`
	Image         string         `json:"image"`
	Duration      int            `json:"duration"`
	User          User           `json:"user"`
	VideoFiles    []VideoFile    `json:"video_files"`
	VideoPictures []VideoPicture `json:"video_pictures"`
}

// Collection represents a curated or user-owned media collection.
// Collection IDs are slug-like strings, not integers.
type Collection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	MediaCount  int    `json:"media_count"`
	PhotosCount int    `json:"photos_count"`
	VideosCount int    `json:"videos_count"`
}

// Pagination carries the page metadata echoed by every list endpoint.
// NextPage and PrevPage are full URLs when more pages exist, empty otherwise.
type Pagination struct {
	Page         int    `json:"page"`
	PerPage      int    `json:"per_page"`
	TotalResults int    `json:"total_results"`
	NextPage     string `json:"next_page,omitempty"`
	PrevPage     string `json:"prev_page,omitempty"`
}

// PhotoList is a page of photos from a list endpoint
type PhotoList struct {
	Pagination
	Photos []Photo `json:"photos"`
}

// VideoList is a page of videos from a list endpoint
type VideoList struct {
	Pagination
	Videos []Video `json:"videos"`
}

// CollectionList is a page of collections from a list endpoint
type CollectionList struct {
	Pagination
	Collections []Collection `json:"collections"`
}

// MediaList is a page of mixed media from a collection
type MediaList struct {
	Pagination
	ID    string  `json:"id"`
	Media []Media `json:"media"`
}

// Media is one item in a collection: exactly one of Photo or Video is
// non-nil, selected by the upstream "type" discriminator.
type Media struct {
	Type  string
	Photo *Photo
	Video *Video
}

// UnmarshalJSON decodes a collection media item into its concrete type.
func (m *Media) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	m.Type = probe.Type

	switch probe.Type {
	case "Photo":
		m.Photo = new(Photo)
		return json.Unmarshal(data, m.Photo)
	case "Video":
		m.Video = new(Video)
		return json.Unmarshal(data, m.Video)
	default:
		return fmt.Errorf("unknown media type %q", probe.Type)
	}
}

// MarshalJSON re-emits the concrete item with its type discriminator intact.
func (m Media) MarshalJSON() ([]byte, error) {
	switch {
	case m.Photo != nil:
		return marshalWithType(m.Photo, m.Type)
	case m.Video != nil:
		return marshalWithType(m.Video, m.Type)
	default:
		return []byte("null"), nil
	}
}

func marshalWithType(v interface{}, mediaType string) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	typeField, err := json.Marshal(mediaType)
	if err != nil {
		return nil, err
	}
	fields["type"] = typeField

	return json.Marshal(fields)
}
