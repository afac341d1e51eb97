package domain

import (
	"time"

	"github.com/google/uuid"
)

// VideoFieldValue is the typed value a user entered for one field on one video
// Exactly one of the value columns is populated, chosen by the field's type:
// select/text use ValueText, rating uses ValueNumeric, boolean uses ValueBoolean
type VideoFieldValue struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VideoID      uuid.UUID   `gorm:"type:uuid;not null;index:idx_video_field_values_video_id;uniqueIndex:uq_video_field_values_video_field,priority:1" json:"video_id"`
	FieldID      uuid.UUID   `gorm:"type:uuid;not null;index:idx_video_field_values_field_id;uniqueIndex:uq_video_field_values_video_field,priority:2" json:"field_id"`
	ValueText    *string     `gorm:"type:text" json:"value_text"`
	ValueNumeric *float64    `gorm:"type:numeric" json:"value_numeric"`
	ValueBoolean *bool       `gorm:"type:boolean" json:"value_boolean"`
	UpdatedAt    time.Time   `gorm:"type:timestamp;not null" json:"updated_at"`
	Video        Video       `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"video,omitempty"`
	Field        CustomField `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"field,omitempty"`
}

// TableName specifies the table name for VideoFieldValue
func (VideoFieldValue) TableName() string {
	return "video_field_values"
}

// Value returns whichever typed column is populated
func (v *VideoFieldValue) Value() interface{} {
	switch {
	case v.ValueText != nil:
		return *v.ValueText
	case v.ValueNumeric != nil:
		return *v.ValueNumeric
	case v.ValueBoolean != nil:
		return *v.ValueBoolean
	}
	return nil
}
