package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"video-list-api/internal/metrics"
)

// VideoMetadata is the subset of YouTube Data API video information
// the service stores alongside a bookmark
type VideoMetadata struct {
	YoutubeID       string     `json:"youtubeId"`
	Title           string     `json:"title"`
	ChannelID       string     `json:"channelId"`
	ChannelTitle    string     `json:"channelTitle"`
	ThumbnailURL    string     `json:"thumbnailUrl"`
	DurationSeconds int        `json:"durationSeconds"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
}

// YouTubeClient defines the interface for YouTube Data API communication
type YouTubeClient interface {
	// GetVideo fetches metadata for a single video
	GetVideo(ctx context.Context, youtubeID string) (*VideoMetadata, error)
	// GetVideos fetches metadata for up to 50 videos in one API call
	GetVideos(ctx context.Context, youtubeIDs []string) (map[string]*VideoMetadata, error)
	// Enabled reports whether an API key is configured
	Enabled() bool
}

// youtubeClient implements YouTubeClient against the v3 REST API,
// caching responses in Redis when a client is available
type youtubeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewYouTubeClient creates a new YouTube Data API client
// cache may be nil, which disables caching
func NewYouTubeClient(baseURL, apiKey string, timeout, cacheTTL time.Duration, cache *redis.Client, logger *zap.Logger, m *metrics.Metrics) YouTubeClient {
	return &youtubeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		metrics:  m,
	}
}

// Enabled reports whether an API key is configured
func (c *youtubeClient) Enabled() bool {
	return c.apiKey != ""
}

// GetVideo fetches metadata for a single video
func (c *youtubeClient) GetVideo(ctx context.Context, youtubeID string) (*VideoMetadata, error) {
	results, err := c.GetVideos(ctx, []string{youtubeID})
	if err != nil {
		return nil, err
	}
	meta, ok := results[youtubeID]
	if !ok {
		return nil, fmt.Errorf("video '%s' not found on YouTube", youtubeID)
	}
	return meta, nil
}

// GetVideos fetches metadata for up to 50 videos in one batched API call,
// serving cached entries from Redis and only requesting the misses
func (c *youtubeClient) GetVideos(ctx context.Context, youtubeIDs []string) (map[string]*VideoMetadata, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("youtube client is not configured")
	}
	if len(youtubeIDs) == 0 {
		return map[string]*VideoMetadata{}, nil
	}
	if len(youtubeIDs) > 50 {
		return nil, fmt.Errorf("at most 50 video ids per request, got %d", len(youtubeIDs))
	}

	results := make(map[string]*VideoMetadata, len(youtubeIDs))
	var misses []string
	for _, id := range youtubeIDs {
		if meta := c.cacheGet(ctx, id); meta != nil {
			results[id] = meta
		} else {
			misses = append(misses, id)
		}
	}
	if len(misses) == 0 {
		return results, nil
	}

	fetched, err := c.fetch(ctx, misses)
	if err != nil {
		return nil, err
	}
	for id, meta := range fetched {
		results[id] = meta
		c.cacheSet(ctx, id, meta)
	}
	return results, nil
}

// fetch performs the actual videos.list API call
func (c *youtubeClient) fetch(ctx context.Context, youtubeIDs []string) (map[string]*VideoMetadata, error) {
	endpoint := fmt.Sprintf("%s/videos", c.baseURL)
	query := url.Values{}
	query.Set("part", "snippet,contentDetails")
	query.Set("id", strings.Join(youtubeIDs, ","))
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(endpoint, http.MethodGet, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("YouTube API request failed", zap.Error(err))
		return nil, fmt.Errorf("youtube api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("YouTube API returned non-200 status",
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("youtube api returned status %d", resp.StatusCode)
	}

	var body videoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode youtube response: %w", err)
	}

	results := make(map[string]*VideoMetadata, len(body.Items))
	for _, item := range body.Items {
		meta := &VideoMetadata{
			YoutubeID:       item.ID,
			Title:           item.Snippet.Title,
			ChannelID:       item.Snippet.ChannelID,
			ChannelTitle:    item.Snippet.ChannelTitle,
			DurationSeconds: parseISO8601Duration(item.ContentDetails.Duration),
		}
		if item.Snippet.Thumbnails.Medium.URL != "" {
			meta.ThumbnailURL = item.Snippet.Thumbnails.Medium.URL
		} else {
			meta.ThumbnailURL = item.Snippet.Thumbnails.Default.URL
		}
		if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			meta.PublishedAt = &t
		}
		results[item.ID] = meta
	}
	return results, nil
}

// videoListResponse mirrors the videos.list API response shape
type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

func (c *youtubeClient) cacheKey(youtubeID string) string {
	return "yt:video:" + youtubeID
}

func (c *youtubeClient) cacheGet(ctx context.Context, youtubeID string) *VideoMetadata {
	if c.cache == nil {
		return nil
	}
	data, err := c.cache.Get(ctx, c.cacheKey(youtubeID)).Bytes()
	if err != nil {
		return nil
	}
	var meta VideoMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil
	}
	return &meta
}

func (c *youtubeClient) cacheSet(ctx context.Context, youtubeID string, meta *VideoMetadata) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, c.cacheKey(youtubeID), data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("Failed to cache video metadata", zap.Error(err))
	}
}

var iso8601Duration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISO8601Duration converts the API's PT#H#M#S duration format to
// seconds; unparseable input yields 0
func parseISO8601Duration(s string) int {
	m := iso8601Duration.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	seconds := 0
	for i, mult := range []int{3600, 60, 1} {
		if m[i+1] != "" {
			var n int
			fmt.Sscanf(m[i+1], "%d", &n)
			seconds += n * mult
		}
	}
	return seconds
}

var youtubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractYoutubeID normalizes user input into the 11-character video id
// Accepts a bare id, watch URLs, youtu.be short links and /shorts/ URLs
func ExtractYoutubeID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if youtubeIDPattern.MatchString(input) {
		return input, nil
	}

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("'%s' is not a youtube video id or url", input)
	}

	host := strings.TrimPrefix(u.Host, "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); youtubeIDPattern.MatchString(id) {
			return id, nil
		}
		for _, prefix := range []string{"/shorts/", "/embed/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id := strings.TrimPrefix(u.Path, prefix)
				if idx := strings.IndexByte(id, '/'); idx >= 0 {
					id = id[:idx]
				}
				if youtubeIDPattern.MatchString(id) {
					return id, nil
				}
			}
		}
	case "youtu.be":
		id := strings.TrimPrefix(u.Path, "/")
		if youtubeIDPattern.MatchString(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not extract a video id from '%s'", input)
}
