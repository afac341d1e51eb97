package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FieldType represents the type of a custom field
type FieldType string

// FieldType constants
const (
	FieldTypeSelect  FieldType = "select"
	FieldTypeRating  FieldType = "rating"
	FieldTypeText    FieldType = "text"
	FieldTypeBoolean FieldType = "boolean"
)

// IsValidFieldType reports whether t is one of the supported field types
func IsValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeSelect, FieldTypeRating, FieldTypeText, FieldTypeBoolean:
		return true
	}
	return false
}

// CustomField represents a named, typed metadata slot scoped to a list
// Config holds the type-specific configuration (options, max_rating, ...)
// validated against FieldType before persisting
type CustomField struct {
	BaseModel
	ListID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_custom_fields_list_id;uniqueIndex:uq_custom_fields_list_name,priority:1" json:"list_id"`
	Name        string         `gorm:"type:varchar(200);not null;uniqueIndex:uq_custom_fields_list_name,priority:2" json:"name"`
	FieldType   FieldType      `gorm:"type:varchar(20);not null" json:"field_type"`
	Config      datatypes.JSON `gorm:"type:jsonb" json:"config"`
	List        VideoList      `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"list,omitempty"`
	SchemaLinks []SchemaField  `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"schema_links,omitempty"`
}

// TableName specifies the table name for CustomField
func (CustomField) TableName() string {
	return "custom_fields"
}
