package domain

import (
	"time"

	"github.com/google/uuid"
)

// FieldSchema represents a named, reusable bundle of custom fields scoped to a list
type FieldSchema struct {
	BaseModel
	ListID      uuid.UUID     `gorm:"type:uuid;not null;index:idx_field_schemas_list_id" json:"list_id"`
	Name        string        `gorm:"type:varchar(200);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	List        VideoList     `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"list,omitempty"`
	Fields      []SchemaField `gorm:"foreignKey:SchemaID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
}

// TableName specifies the table name for FieldSchema
func (FieldSchema) TableName() string {
	return "field_schemas"
}

// SchemaField associates a custom field with a schema, carrying the
// per-association display order and card-visibility flag
// Deleting the schema removes the association; the field itself is reusable
// across schemas and is never touched by schema deletion
type SchemaField struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SchemaID     uuid.UUID   `gorm:"type:uuid;not null;index:idx_schema_fields_schema_id;uniqueIndex:uq_schema_fields_schema_field,priority:1" json:"schema_id"`
	FieldID      uuid.UUID   `gorm:"type:uuid;not null;index:idx_schema_fields_field_id;uniqueIndex:uq_schema_fields_schema_field,priority:2" json:"field_id"`
	DisplayOrder int         `gorm:"type:int;not null;default:0;index:idx_schema_fields_display_order" json:"display_order"`
	ShowOnCard   bool        `gorm:"type:boolean;not null;default:false" json:"show_on_card"`
	CreatedAt    time.Time   `gorm:"type:timestamp;not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"type:timestamp;not null" json:"updated_at"`
	Schema       FieldSchema `gorm:"foreignKey:SchemaID;constraint:OnDelete:CASCADE" json:"schema,omitempty"`
	Field        CustomField `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"field,omitempty"`
}

// TableName specifies the table name for SchemaField
func (SchemaField) TableName() string {
	return "schema_fields"
}
