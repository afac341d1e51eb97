package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"video-list-api/internal/domain"
)

// FieldUnionRow is one row of the joined field-union query: a field
// reachable from the video through one tag's schema, with the current
// value (if any) attached
type FieldUnionRow struct {
	TagID        uuid.UUID        `gorm:"column:tag_id"`
	TagName      string           `gorm:"column:tag_name"`
	AssignedAt   time.Time        `gorm:"column:assigned_at"`
	SchemaID     uuid.UUID        `gorm:"column:schema_id"`
	SchemaName   string           `gorm:"column:schema_name"`
	FieldID      uuid.UUID        `gorm:"column:field_id"`
	FieldName    string           `gorm:"column:field_name"`
	FieldType    domain.FieldType `gorm:"column:field_type"`
	Config       datatypes.JSON   `gorm:"column:config"`
	DisplayOrder int              `gorm:"column:display_order"`
	ShowOnCard   bool             `gorm:"column:show_on_card"`
	ValueText    *string          `gorm:"column:value_text"`
	ValueNumeric *float64         `gorm:"column:value_numeric"`
	ValueBoolean *bool            `gorm:"column:value_boolean"`
}

// Value returns whichever typed value column the row carries, or nil
func (r *FieldUnionRow) Value() interface{} {
	switch {
	case r.ValueText != nil:
		return *r.ValueText
	case r.ValueNumeric != nil:
		return *r.ValueNumeric
	case r.ValueBoolean != nil:
		return *r.ValueBoolean
	}
	return nil
}

// FieldValueRepository defines the interface for video field value data access
type FieldValueRepository interface {
	UpsertBatch(ctx context.Context, values []*domain.VideoFieldValue) error
	FindByVideo(ctx context.Context, videoID uuid.UUID) ([]*domain.VideoFieldValue, error)
	FindUnionRows(ctx context.Context, videoID uuid.UUID) ([]*FieldUnionRow, error)
}

// fieldValueRepositoryImpl is the GORM implementation of FieldValueRepository
type fieldValueRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldValueRepository creates a new instance of FieldValueRepository
func NewFieldValueRepository(db *gorm.DB) FieldValueRepository {
	return &fieldValueRepositoryImpl{db: db}
}

// UpsertBatch writes all value rows in one multi-row statement inside
// one transaction: INSERT ... ON CONFLICT (video_id, field_id) DO UPDATE,
// so repeated writes replace in place and a batch never half-applies
func (r *fieldValueRepositoryImpl) UpsertBatch(ctx context.Context, values []*domain.VideoFieldValue) error {
	if len(values) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, v := range values {
		v.UpdatedAt = now
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "video_id"}, {Name: "field_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"value_text", "value_numeric", "value_boolean", "updated_at",
			}),
		}).Create(&values).Error
	})
}

// FindByVideo finds all stored values for a video
func (r *fieldValueRepositoryImpl) FindByVideo(ctx context.Context, videoID uuid.UUID) ([]*domain.VideoFieldValue, error) {
	var values []*domain.VideoFieldValue
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// FindUnionRows runs the field-union read path as a single joined query:
// video_tags -> tags -> field_schemas -> schema_fields -> custom_fields,
// left-joined against the video's stored values. Rows come back ordered
// by tag assignment time then display order, which is what the resolver's
// first-tag-wins de-duplication relies on
func (r *fieldValueRepositoryImpl) FindUnionRows(ctx context.Context, videoID uuid.UUID) ([]*FieldUnionRow, error) {
	var rows []*FieldUnionRow
	err := r.db.WithContext(ctx).
		Table("video_tags").
		Select(`tags.id AS tag_id,
			tags.name AS tag_name,
			video_tags.created_at AS assigned_at,
			field_schemas.id AS schema_id,
			field_schemas.name AS schema_name,
			custom_fields.id AS field_id,
			custom_fields.name AS field_name,
			custom_fields.field_type AS field_type,
			custom_fields.config AS config,
			schema_fields.display_order AS display_order,
			schema_fields.show_on_card AS show_on_card,
			video_field_values.value_text AS value_text,
			video_field_values.value_numeric AS value_numeric,
			video_field_values.value_boolean AS value_boolean`).
		Joins("JOIN tags ON tags.id = video_tags.tag_id AND tags.deleted_at IS NULL").
		Joins("JOIN field_schemas ON field_schemas.id = tags.schema_id AND field_schemas.deleted_at IS NULL").
		Joins("JOIN schema_fields ON schema_fields.schema_id = field_schemas.id").
		Joins("JOIN custom_fields ON custom_fields.id = schema_fields.field_id AND custom_fields.deleted_at IS NULL").
		Joins("LEFT JOIN video_field_values ON video_field_values.video_id = video_tags.video_id AND video_field_values.field_id = custom_fields.id").
		Where("video_tags.video_id = ?", videoID).
		Order("video_tags.created_at ASC, schema_fields.display_order ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
