package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// FieldValueInput is one (field, value) pair in a value write
// Value is the raw JSON value; the service validates and routes it into
// the typed column chosen by the field's type
type FieldValueInput struct {
	FieldID uuid.UUID   `json:"fieldId" binding:"required"`
	Value   interface{} `json:"value" binding:"required"`
}

// SetVideoFieldValuesRequest sets values for one video atomically
type SetVideoFieldValuesRequest struct {
	FieldValues []FieldValueInput `json:"fieldValues" binding:"required,min=1,dive"`
}

// BatchFieldValueUpdate is one (video, field, value) triple in a
// cross-video batch write
type BatchFieldValueUpdate struct {
	VideoID uuid.UUID   `json:"videoId" binding:"required"`
	FieldID uuid.UUID   `json:"fieldId" binding:"required"`
	Value   interface{} `json:"value" binding:"required"`
}

// BatchSetFieldValuesRequest sets values across many videos atomically
type BatchSetFieldValuesRequest struct {
	Updates []BatchFieldValueUpdate `json:"updates" binding:"required,min=1,dive"`
}

// BatchSetFieldValuesResponse summarizes a batch write
type BatchSetFieldValuesResponse struct {
	UpdatedCount int `json:"updatedCount"`
}

// FieldWithValueResponse is one resolved field in the union: the field,
// its display metadata, and the video's current value (null when unset)
type FieldWithValueResponse struct {
	FieldID      uuid.UUID       `json:"fieldId"`
	FieldName    string          `json:"fieldName"`
	FieldType    string          `json:"fieldType"`
	Config       json.RawMessage `json:"config"`
	Value        interface{}     `json:"value"`
	DisplayOrder int             `json:"displayOrder"`
	ShowOnCard   bool            `json:"showOnCard"`
}

// FieldGroupResponse groups resolved fields by their originating schema
type FieldGroupResponse struct {
	SchemaID   uuid.UUID                `json:"schemaId"`
	SchemaName string                   `json:"schemaName"`
	Fields     []FieldWithValueResponse `json:"fields"`
}
