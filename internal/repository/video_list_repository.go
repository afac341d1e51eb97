package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
)

// VideoListRepository defines the interface for video list data access
type VideoListRepository interface {
	Create(ctx context.Context, list *domain.VideoList) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.VideoList, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.VideoList, error)
	Update(ctx context.Context, list *domain.VideoList) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// videoListRepositoryImpl is the GORM implementation of VideoListRepository
type videoListRepositoryImpl struct {
	db *gorm.DB
}

// NewVideoListRepository creates a new instance of VideoListRepository
func NewVideoListRepository(db *gorm.DB) VideoListRepository {
	return &videoListRepositoryImpl{db: db}
}

// Create creates a new video list
func (r *videoListRepositoryImpl) Create(ctx context.Context, list *domain.VideoList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

// FindByID finds a video list by ID
func (r *videoListRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.VideoList, error) {
	var list domain.VideoList
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByOwner finds all lists owned by a user, most recently created first
func (r *videoListRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.VideoList, error) {
	var lists []*domain.VideoList
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// Update updates a video list
func (r *videoListRepositoryImpl) Update(ctx context.Context, list *domain.VideoList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

// Delete soft deletes a list and everything scoped to it in one transaction
func (r *videoListRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var videoIDs []uuid.UUID
		if err := tx.Model(&domain.Video{}).Where("list_id = ?", id).Pluck("id", &videoIDs).Error; err != nil {
			return err
		}
		if len(videoIDs) > 0 {
			if err := tx.Where("video_id IN ?", videoIDs).Delete(&domain.VideoTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("video_id IN ?", videoIDs).Delete(&domain.VideoFieldValue{}).Error; err != nil {
				return err
			}
		}

		var schemaIDs []uuid.UUID
		if err := tx.Model(&domain.FieldSchema{}).Where("list_id = ?", id).Pluck("id", &schemaIDs).Error; err != nil {
			return err
		}
		if len(schemaIDs) > 0 {
			if err := tx.Where("schema_id IN ?", schemaIDs).Delete(&domain.SchemaField{}).Error; err != nil {
				return err
			}
		}

		for _, model := range []interface{}{
			&domain.Video{}, &domain.Tag{}, &domain.CustomField{}, &domain.FieldSchema{},
		} {
			if err := tx.Where("list_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.VideoList{}, id).Error
	})
}

// Count returns the total number of lists (for business metrics)
func (r *videoListRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.VideoList{}).Count(&count).Error
	return count, err
}
