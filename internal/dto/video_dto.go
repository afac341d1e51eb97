package dto

import (
	"time"

	"github.com/google/uuid"
)

// VideoResponse represents the video response
type VideoResponse struct {
	VideoID         uuid.UUID     `json:"videoId"`
	ListID          uuid.UUID     `json:"listId"`
	YoutubeID       string        `json:"youtubeId"`
	Title           string        `json:"title"`
	ChannelID       string        `json:"channelId,omitempty"`
	ChannelTitle    string        `json:"channelTitle,omitempty"`
	ThumbnailURL    string        `json:"thumbnailUrl,omitempty"`
	DurationSeconds int           `json:"durationSeconds"`
	PublishedAt     *time.Time    `json:"publishedAt,omitempty"`
	Note            string        `json:"note,omitempty"`
	Tags            []TagResponse `json:"tags,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// VideoDetailResponse is the video response extended with the resolved
// field union: stored values plus every field the video exposes through
// its tags' schemas, grouped by schema for display
type VideoDetailResponse struct {
	VideoResponse
	FieldGroups []FieldGroupResponse `json:"fieldGroups"`
}

// CreateVideoRequest represents the request to bookmark a video
// Either the bare 11-character YouTube ID or a full watch/short URL
// is accepted
type CreateVideoRequest struct {
	YoutubeID string `json:"youtubeId" binding:"required,max=200"`
	Title     string `json:"title" binding:"max=500"`
	Note      string `json:"note" binding:"max=5000"`
}

// UpdateVideoRequest represents the request to update a video
type UpdateVideoRequest struct {
	Title *string `json:"title" binding:"omitempty,max=500"`
	Note  *string `json:"note" binding:"omitempty,max=5000"`
}

// ImportRowError describes one CSV row that could not be imported
type ImportRowError struct {
	Row    int    `json:"row"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// ImportVideosResponse summarizes a CSV import
type ImportVideosResponse struct {
	CreatedCount int              `json:"createdCount"`
	SkippedCount int              `json:"skippedCount"`
	Errors       []ImportRowError `json:"errors,omitempty"`
}
