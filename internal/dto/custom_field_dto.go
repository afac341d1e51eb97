package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CustomFieldResponse represents the custom field response
type CustomFieldResponse struct {
	FieldID   uuid.UUID       `json:"fieldId"`
	ListID    uuid.UUID       `json:"listId"`
	Name      string          `json:"name"`
	FieldType string          `json:"fieldType"`
	Config    json.RawMessage `json:"config"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CreateCustomFieldRequest represents the request to create a custom field
// Config is validated against FieldType before anything is persisted
type CreateCustomFieldRequest struct {
	Name      string          `json:"name" binding:"required,max=200"`
	FieldType string          `json:"fieldType" binding:"required,oneof=select rating text boolean"`
	Config    json.RawMessage `json:"config"`
}

// UpdateCustomFieldRequest represents the request to update a custom field
// The field type is immutable; only name and config may change
type UpdateCustomFieldRequest struct {
	Name   *string         `json:"name" binding:"omitempty,max=200"`
	Config json.RawMessage `json:"config"`
}
