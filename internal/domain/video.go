package domain

import (
	"time"

	"github.com/google/uuid"
)

// Video represents a bookmarked YouTube video within a list
type Video struct {
	BaseModel
	ListID          uuid.UUID         `gorm:"type:uuid;not null;index:idx_videos_list_id;uniqueIndex:uq_videos_list_youtube_id,priority:1" json:"list_id"`
	YoutubeID       string            `gorm:"type:varchar(20);not null;uniqueIndex:uq_videos_list_youtube_id,priority:2" json:"youtube_id"`
	Title           string            `gorm:"type:varchar(500);not null" json:"title"`
	ChannelID       string            `gorm:"type:varchar(50);index:idx_videos_channel_id" json:"channel_id"`
	ChannelTitle    string            `gorm:"type:varchar(255)" json:"channel_title"`
	ThumbnailURL    string            `gorm:"type:text" json:"thumbnail_url"`
	DurationSeconds int               `gorm:"type:int;not null;default:0" json:"duration_seconds"`
	PublishedAt     *time.Time        `gorm:"type:timestamp" json:"published_at"`
	Note            string            `gorm:"type:text" json:"note"`
	MetadataSyncAt  *time.Time        `gorm:"type:timestamp;index:idx_videos_metadata_sync_at" json:"metadata_sync_at"`
	List            VideoList         `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"list,omitempty"`
	Tags            []Tag             `gorm:"many2many:video_tags;" json:"tags,omitempty"`
	FieldValues     []VideoFieldValue `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"field_values,omitempty"`
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}

// VideoTag is the join row between videos and tags
// CreatedAt records assignment order, which the field-union resolver
// uses as the deterministic tie-break for duplicated fields
type VideoTag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index:idx_video_tags_video_id;uniqueIndex:uq_video_tags_video_tag,priority:1" json:"video_id"`
	TagID     uuid.UUID `gorm:"type:uuid;not null;index:idx_video_tags_tag_id;uniqueIndex:uq_video_tags_video_tag,priority:2" json:"tag_id"`
	CreatedAt time.Time `gorm:"type:timestamp;not null" json:"created_at"`
	Video     Video     `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"video,omitempty"`
	Tag       Tag       `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"tag,omitempty"`
}

// TableName specifies the table name for VideoTag
func (VideoTag) TableName() string {
	return "video_tags"
}
