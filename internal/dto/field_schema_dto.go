package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SchemaFieldResponse represents one field inside a schema response,
// carrying the per-association display metadata
type SchemaFieldResponse struct {
	FieldID      uuid.UUID       `json:"fieldId"`
	FieldName    string          `json:"fieldName"`
	FieldType    string          `json:"fieldType"`
	Config       json.RawMessage `json:"config"`
	DisplayOrder int             `json:"displayOrder"`
	ShowOnCard   bool            `json:"showOnCard"`
}

// FieldSchemaResponse represents the field schema response
type FieldSchemaResponse struct {
	SchemaID    uuid.UUID             `json:"schemaId"`
	ListID      uuid.UUID             `json:"listId"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Fields      []SchemaFieldResponse `json:"fields"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// NestedFieldRequest creates a new custom field inline while creating a schema
type NestedFieldRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	FieldType    string          `json:"fieldType" binding:"required,oneof=select rating text boolean"`
	Config       json.RawMessage `json:"config"`
	DisplayOrder int             `json:"displayOrder"`
	ShowOnCard   bool            `json:"showOnCard"`
}

// CreateFieldSchemaRequest represents the request to create a field schema,
// optionally with new fields created and attached in the same call
type CreateFieldSchemaRequest struct {
	Name        string               `json:"name" binding:"required,max=200"`
	Description string               `json:"description" binding:"max=2000"`
	Fields      []NestedFieldRequest `json:"fields" binding:"omitempty,dive"`
}

// UpdateFieldSchemaRequest represents the request to update a schema
type UpdateFieldSchemaRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// AttachFieldRequest attaches an existing field to a schema
type AttachFieldRequest struct {
	FieldID      uuid.UUID `json:"fieldId" binding:"required"`
	DisplayOrder int       `json:"displayOrder"`
	ShowOnCard   bool      `json:"showOnCard"`
}

// ReorderFieldsRequest rewrites the display order of a schema's fields
// The id set must match the schema's current fields exactly
type ReorderFieldsRequest struct {
	FieldIDs []uuid.UUID `json:"fieldIds" binding:"required,min=1"`
}
