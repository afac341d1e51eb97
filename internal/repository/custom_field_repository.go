package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
)

// CustomFieldRepository defines the interface for custom field data access
type CustomFieldRepository interface {
	Create(ctx context.Context, field *domain.CustomField) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.CustomField, error)
	FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.CustomField, error)
	FindByListAndName(ctx context.Context, listID uuid.UUID, name string) (*domain.CustomField, error)
	Update(ctx context.Context, field *domain.CustomField) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// customFieldRepositoryImpl is the GORM implementation of CustomFieldRepository
type customFieldRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomFieldRepository creates a new instance of CustomFieldRepository
func NewCustomFieldRepository(db *gorm.DB) CustomFieldRepository {
	return &customFieldRepositoryImpl{db: db}
}

// Create creates a new custom field
func (r *customFieldRepositoryImpl) Create(ctx context.Context, field *domain.CustomField) error {
	return r.db.WithContext(ctx).Create(field).Error
}

// FindByID finds a custom field by ID
func (r *customFieldRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
	var field domain.CustomField
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// FindByIDs finds multiple custom fields by their IDs in a single query
func (r *customFieldRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.CustomField, error) {
	if len(ids) == 0 {
		return []*domain.CustomField{}, nil
	}
	var fields []*domain.CustomField
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// FindByList finds all custom fields in a list ordered by name
func (r *customFieldRepositoryImpl) FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.CustomField, error) {
	var fields []*domain.CustomField
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("name ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// FindByListAndName finds a custom field by name within a list
// Returns (nil, nil) when no such field exists
func (r *customFieldRepositoryImpl) FindByListAndName(ctx context.Context, listID uuid.UUID, name string) (*domain.CustomField, error) {
	var field domain.CustomField
	err := r.db.WithContext(ctx).
		Where("list_id = ? AND name = ?", listID, name).
		First(&field).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &field, nil
}

// Update updates a custom field
func (r *customFieldRepositoryImpl) Update(ctx context.Context, field *domain.CustomField) error {
	return r.db.WithContext(ctx).Save(field).Error
}

// Delete removes a field together with every value and schema
// association referencing it, in one transaction
// A field's values are meaningless without the field, so they cascade;
// schemas themselves survive losing one field
func (r *customFieldRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_id = ?", id).Delete(&domain.VideoFieldValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("field_id = ?", id).Delete(&domain.SchemaField{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.CustomField{}, id).Error
	})
}
