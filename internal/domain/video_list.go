package domain

import "github.com/google/uuid"

// VideoList represents a user-owned collection of bookmarked videos
// Every video, tag, custom field and schema is scoped to exactly one list
type VideoList struct {
	BaseModel
	OwnerID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_video_lists_owner_id" json:"owner_id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Videos      []Video       `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
	Tags        []Tag         `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Fields      []CustomField `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
	Schemas     []FieldSchema `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"schemas,omitempty"`
}

// TableName specifies the table name for VideoList
func (VideoList) TableName() string {
	return "video_lists"
}
