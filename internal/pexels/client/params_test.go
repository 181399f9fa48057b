package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoSearchParams_Query(t *testing.T) {
	tests := []struct {
		name      string
		params    PhotoSearchParams
		want      map[string]string
		wantParam string
	}{
		{
			name:   "empty params encode nothing",
			params: PhotoSearchParams{},
			want:   map[string]string{},
		},
		{
			name: "all fields forwarded",
			params: PhotoSearchParams{
				Orientation: "square",
				Size:        "small",
				Color:       "turquoise",
				Locale:      "pt-BR",
				Page:        2,
				PerPage:     40,
			},
			want: map[string]string{
				"orientation": "square",
				"size":        "small",
				"color":       "turquoise",
				"locale":      "pt-BR",
				"page":        "2",
				"per_page":    "40",
			},
		},
		{
			name:      "bad orientation",
			params:    PhotoSearchParams{Orientation: "sideways"},
			wantParam: "orientation",
		},
		{
			name:      "bad size",
			params:    PhotoSearchParams{Size: "huge"},
			wantParam: "size",
		},
		{
			name:      "negative page",
			params:    PhotoSearchParams{Page: -3},
			wantParam: "page",
		},
		{
			name:      "per_page above ceiling",
			params:    PhotoSearchParams{PerPage: 81},
			wantParam: "per_page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := tt.params.query()
			if tt.wantParam != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantParam, validationErr.Param)
				return
			}

			require.NoError(t, err)
			assert.Len(t, q, len(tt.want))
			for key, want := range tt.want {
				assert.Equal(t, want, q.Get(key))
			}
		})
	}
}

func TestPopularVideoParams_Query(t *testing.T) {
	t.Run("bounds forwarded", func(t *testing.T) {
		q, err := PopularVideoParams{MinWidth: 1280, MaxDuration: 30}.query()
		require.NoError(t, err)
		assert.Equal(t, "1280", q.Get("min_width"))
		assert.Equal(t, "30", q.Get("max_duration"))
		_, present := q["min_height"]
		assert.False(t, present)
	})

	t.Run("negative bound rejected", func(t *testing.T) {
		_, err := PopularVideoParams{MinHeight: -1}.query()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "min_height", validationErr.Param)
	})

	t.Run("inverted duration window rejected", func(t *testing.T) {
		_, err := PopularVideoParams{MinDuration: 60, MaxDuration: 10}.query()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "max_duration", validationErr.Param)
	})
}

func TestCollectionMediaParams_Query(t *testing.T) {
	t.Run("allowed values forwarded", func(t *testing.T) {
		q, err := CollectionMediaParams{MediaType: "videos", Sort: "asc", PerPage: 15}.query()
		require.NoError(t, err)
		assert.Equal(t, "videos", q.Get("type"))
		assert.Equal(t, "asc", q.Get("sort"))
		assert.Equal(t, "15", q.Get("per_page"))
	})

	t.Run("bad media type names allowed set", func(t *testing.T) {
		_, err := CollectionMediaParams{MediaType: "gifs"}.query()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "type", validationErr.Param)
		assert.Equal(t, []string{"photos", "videos"}, validationErr.Allowed)
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Param: "sort", Value: "random", Allowed: []string{"asc", "desc"}}
	assert.Contains(t, err.Error(), "sort")
	assert.Contains(t, err.Error(), "random")
	assert.Contains(t, err.Error(), "asc, desc")

	err = &ValidationError{Param: "per_page", Value: "81", Reason: "must be between 1 and 80"}
	assert.Contains(t, err.Error(), "must be between 1 and 80")
}
