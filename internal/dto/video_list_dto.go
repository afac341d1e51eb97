package dto

import (
	"time"

	"github.com/google/uuid"
)

// VideoListResponse represents the video list response
type VideoListResponse struct {
	ListID      uuid.UUID `json:"listId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateVideoListRequest represents the request to create a new video list
type CreateVideoListRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateVideoListRequest represents the request to update a video list
type UpdateVideoListRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}
