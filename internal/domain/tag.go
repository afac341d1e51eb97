package domain

import "github.com/google/uuid"

// Tag represents a user-defined label on videos
// A tag may optionally carry a field schema; when that schema is deleted
// the reference is cleared (SET NULL) and the tag itself survives
type Tag struct {
	BaseModel
	ListID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_tags_list_id;uniqueIndex:uq_tags_list_name,priority:1" json:"list_id"`
	Name     string       `gorm:"type:varchar(100);not null;uniqueIndex:uq_tags_list_name,priority:2" json:"name"`
	Color    *string      `gorm:"type:varchar(20)" json:"color"`
	SchemaID *uuid.UUID   `gorm:"type:uuid;index:idx_tags_schema_id" json:"schema_id"`
	Schema   *FieldSchema `gorm:"foreignKey:SchemaID;constraint:OnDelete:SET NULL" json:"schema,omitempty"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
