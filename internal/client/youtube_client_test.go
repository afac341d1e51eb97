package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractYoutubeID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare video id",
			input: "dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "bare id with surrounding whitespace",
			input: "  dQw4w9WgXcQ  ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch url",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch url without www",
			input: "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "mobile url",
			input: "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "short link",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "short link with query",
			input: "https://youtu.be/dQw4w9WgXcQ?si=abcdef",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "shorts url",
			input: "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "embed url",
			input: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "live url",
			input: "https://www.youtube.com/live/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:    "id with wrong length",
			input:   "abc123",
			wantErr: true,
		},
		{
			name:    "id with invalid characters",
			input:   "dQw4w9WgXc!",
			wantErr: true,
		},
		{
			name:    "non-youtube host",
			input:   "https://vimeo.com/dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "watch url without v parameter",
			input:   "https://www.youtube.com/watch?list=PLabc",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "plain text",
			input:   "not a video",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractYoutubeID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseISO8601Duration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"PT3M33S", 213},
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT0S", 0},
		{"", 0},
		{"P1DT2H", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseISO8601Duration(tt.input))
		})
	}
}

func TestYouTubeClientDisabledWithoutAPIKey(t *testing.T) {
	c := NewYouTubeClient("https://example.invalid", "", time.Second, time.Minute, nil, zap.NewNop(), nil)
	assert.False(t, c.Enabled())

	_, err := c.GetVideos(context.Background(), []string{"dQw4w9WgXcQ"})
	assert.Error(t, err)
}

func TestYouTubeClientGetVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"id": "dQw4w9WgXcQ",
				"snippet": {
					"title": "Never Gonna Give You Up",
					"channelId": "UCuAXFkgsw1L7xaCfnd5JJOw",
					"channelTitle": "Rick Astley",
					"publishedAt": "2009-10-25T06:57:33Z",
					"thumbnails": {
						"default": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg"},
						"medium": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/mqdefault.jpg"}
					}
				},
				"contentDetails": {"duration": "PT3M33S"}
			}]
		}`))
	}))
	defer server.Close()

	c := NewYouTubeClient(server.URL, "test-key", time.Second, time.Minute, nil, zap.NewNop(), nil)
	require.True(t, c.Enabled())

	results, err := c.GetVideos(context.Background(), []string{"dQw4w9WgXcQ"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	meta := results["dQw4w9WgXcQ"]
	require.NotNil(t, meta)
	assert.Equal(t, "Never Gonna Give You Up", meta.Title)
	assert.Equal(t, "Rick Astley", meta.ChannelTitle)
	assert.Equal(t, 213, meta.DurationSeconds)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/mqdefault.jpg", meta.ThumbnailURL)
	require.NotNil(t, meta.PublishedAt)
	assert.Equal(t, 2009, meta.PublishedAt.Year())
}

func TestYouTubeClientGetVideoMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	c := NewYouTubeClient(server.URL, "test-key", time.Second, time.Minute, nil, zap.NewNop(), nil)

	_, err := c.GetVideo(context.Background(), "zzzzzzzzzzz")
	assert.Error(t, err)
}

func TestYouTubeClientRejectsOversizedBatch(t *testing.T) {
	c := NewYouTubeClient("https://example.invalid", "test-key", time.Second, time.Minute, nil, zap.NewNop(), nil)

	ids := make([]string, 51)
	for i := range ids {
		ids[i] = "dQw4w9WgXcQ"
	}
	_, err := c.GetVideos(context.Background(), ids)
	assert.Error(t, err)
}

func TestYouTubeClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewYouTubeClient(server.URL, "test-key", time.Second, time.Minute, nil, zap.NewNop(), nil)

	_, err := c.GetVideos(context.Background(), []string{"dQw4w9WgXcQ"})
	assert.Error(t, err)
}
