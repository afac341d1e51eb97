package dto

import (
	"time"

	"github.com/google/uuid"
)

// TagResponse represents the tag response
type TagResponse struct {
	TagID     uuid.UUID  `json:"tagId"`
	Name      string     `json:"name"`
	Color     *string    `json:"color,omitempty"`
	SchemaID  *uuid.UUID `json:"schemaId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CreateTagRequest represents the request to create a new tag
type CreateTagRequest struct {
	Name     string     `json:"name" binding:"required,max=100"`
	Color    *string    `json:"color" binding:"omitempty,hexcolor"`
	SchemaID *uuid.UUID `json:"schemaId"`
}

// UpdateTagRequest represents the request to update a tag
// SchemaID replaces the schema reference when present; ClearSchema
// detaches the schema without assigning a new one
type UpdateTagRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=100"`
	Color       *string    `json:"color" binding:"omitempty,hexcolor"`
	SchemaID    *uuid.UUID `json:"schemaId"`
	ClearSchema bool       `json:"clearSchema"`
}

// ReplaceVideoTagsRequest replaces the full tag set of a video
type ReplaceVideoTagsRequest struct {
	TagIDs []uuid.UUID `json:"tagIds" binding:"required"`
}

// AssignTagRequest adds one tag to a video
type AssignTagRequest struct {
	TagID uuid.UUID `json:"tagId" binding:"required"`
}
