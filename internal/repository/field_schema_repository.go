package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
)

// FieldSchemaRepository defines the interface for field schema data access,
// including the schema-field association rows
type FieldSchemaRepository interface {
	Create(ctx context.Context, schema *domain.FieldSchema) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldSchema, error)
	FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.FieldSchema, error)
	Update(ctx context.Context, schema *domain.FieldSchema) error
	Delete(ctx context.Context, id uuid.UUID) error

	AttachField(ctx context.Context, link *domain.SchemaField) error
	DetachField(ctx context.Context, schemaID, fieldID uuid.UUID) error
	FindSchemaFields(ctx context.Context, schemaID uuid.UUID) ([]*domain.SchemaField, error)
	FindSchemaFieldLink(ctx context.Context, schemaID, fieldID uuid.UUID) (*domain.SchemaField, error)
	ReorderFields(ctx context.Context, schemaID uuid.UUID, orderedFieldIDs []uuid.UUID) error
}

// fieldSchemaRepositoryImpl is the GORM implementation of FieldSchemaRepository
type fieldSchemaRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldSchemaRepository creates a new instance of FieldSchemaRepository
func NewFieldSchemaRepository(db *gorm.DB) FieldSchemaRepository {
	return &fieldSchemaRepositoryImpl{db: db}
}

// Create creates a new field schema, optionally with nested association rows
func (r *fieldSchemaRepositoryImpl) Create(ctx context.Context, schema *domain.FieldSchema) error {
	return r.db.WithContext(ctx).Create(schema).Error
}

// FindByID finds a schema by ID with its field associations and the
// underlying fields preloaded, ordered by display order
func (r *fieldSchemaRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldSchema, error) {
	var schema domain.FieldSchema
	if err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("schema_fields.display_order ASC")
		}).
		Preload("Fields.Field").
		Where("id = ?", id).
		First(&schema).Error; err != nil {
		return nil, err
	}
	return &schema, nil
}

// FindByList finds all schemas in a list with fields preloaded
func (r *fieldSchemaRepositoryImpl) FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.FieldSchema, error) {
	var schemas []*domain.FieldSchema
	if err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("schema_fields.display_order ASC")
		}).
		Preload("Fields.Field").
		Where("list_id = ?", listID).
		Order("name ASC").
		Find(&schemas).Error; err != nil {
		return nil, err
	}
	return schemas, nil
}

// Update updates a schema
func (r *fieldSchemaRepositoryImpl) Update(ctx context.Context, schema *domain.FieldSchema) error {
	return r.db.WithContext(ctx).Save(schema).Error
}

// Delete removes a schema with its association rows and clears the
// schema reference on any tag that carried it, all in one transaction
// The underlying custom fields are reusable across schemas and are
// deliberately left untouched
func (r *fieldSchemaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schema_id = ?", id).Delete(&domain.SchemaField{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Tag{}).
			Where("schema_id = ?", id).
			Update("schema_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.FieldSchema{}, id).Error
	})
}

// AttachField inserts a schema-field association row; the unique
// constraint on (schema_id, field_id) rejects duplicates
func (r *fieldSchemaRepositoryImpl) AttachField(ctx context.Context, link *domain.SchemaField) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// DetachField deletes the association row only; deleting an absent
// association is a no-op so the operation is idempotent
func (r *fieldSchemaRepositoryImpl) DetachField(ctx context.Context, schemaID, fieldID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("schema_id = ? AND field_id = ?", schemaID, fieldID).
		Delete(&domain.SchemaField{}).Error
}

// FindSchemaFields finds all association rows of a schema in display order
func (r *fieldSchemaRepositoryImpl) FindSchemaFields(ctx context.Context, schemaID uuid.UUID) ([]*domain.SchemaField, error) {
	var links []*domain.SchemaField
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Where("schema_id = ?", schemaID).
		Order("display_order ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// FindSchemaFieldLink finds one association row
// Returns (nil, nil) when the pair is not associated
func (r *fieldSchemaRepositoryImpl) FindSchemaFieldLink(ctx context.Context, schemaID, fieldID uuid.UUID) (*domain.SchemaField, error) {
	var link domain.SchemaField
	err := r.db.WithContext(ctx).
		Where("schema_id = ? AND field_id = ?", schemaID, fieldID).
		First(&link).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ReorderFields rewrites display_order for every association row of a
// schema to match the given sequence (0-based), in one transaction
// Callers validate that the id set matches the schema's fields exactly
func (r *fieldSchemaRepositoryImpl) ReorderFields(ctx context.Context, schemaID uuid.UUID, orderedFieldIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, fieldID := range orderedFieldIDs {
			if err := tx.Model(&domain.SchemaField{}).
				Where("schema_id = ? AND field_id = ?", schemaID, fieldID).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
