package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"video-list-api/internal/domain"
)

// TagRepository defines the interface for tag data access
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.Tag, error)
	FindByListAndName(ctx context.Context, listID uuid.UUID, name string) (*domain.Tag, error)
	FindByVideo(ctx context.Context, videoID uuid.UUID) ([]*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	AssignToVideo(ctx context.Context, videoID, tagID uuid.UUID) error
	RemoveFromVideo(ctx context.Context, videoID, tagID uuid.UUID) error
	ReplaceVideoTags(ctx context.Context, videoID uuid.UUID, tagIDs []uuid.UUID) error
}

// tagRepositoryImpl is the GORM implementation of TagRepository
type tagRepositoryImpl struct {
	db *gorm.DB
}

// NewTagRepository creates a new instance of TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepositoryImpl{db: db}
}

// Create creates a new tag
func (r *tagRepositoryImpl) Create(ctx context.Context, tag *domain.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// FindByID finds a tag by ID
func (r *tagRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByList finds all tags in a list ordered by name
func (r *tagRepositoryImpl) FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByListAndName finds a tag by name within a list
// Returns (nil, nil) when no such tag exists
func (r *tagRepositoryImpl) FindByListAndName(ctx context.Context, listID uuid.UUID, name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.WithContext(ctx).
		Where("list_id = ? AND name = ?", listID, name).
		First(&tag).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByVideo finds all tags assigned to a video in assignment order
func (r *tagRepositoryImpl) FindByVideo(ctx context.Context, videoID uuid.UUID) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := r.db.WithContext(ctx).
		Joins("JOIN video_tags ON video_tags.tag_id = tags.id").
		Where("video_tags.video_id = ?", videoID).
		Order("video_tags.created_at ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Update updates a tag
func (r *tagRepositoryImpl) Update(ctx context.Context, tag *domain.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

// Delete soft deletes a tag and removes its video assignments
func (r *tagRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&domain.VideoTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Tag{}, id).Error
	})
}

// AssignToVideo adds a tag to a video. Re-assigning an existing tag is
// a no-op that keeps the original assignment time.
func (r *tagRepositoryImpl) AssignToVideo(ctx context.Context, videoID, tagID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "video_id"}, {Name: "tag_id"}},
			DoNothing: true,
		}).
		Create(&domain.VideoTag{
			VideoID:   videoID,
			TagID:     tagID,
			CreatedAt: time.Now().UTC(),
		}).Error
}

// RemoveFromVideo removes a tag from a video; removing an absent
// assignment is a no-op
func (r *tagRepositoryImpl) RemoveFromVideo(ctx context.Context, videoID, tagID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("video_id = ? AND tag_id = ?", videoID, tagID).
		Delete(&domain.VideoTag{}).Error
}

// ReplaceVideoTags replaces the full tag set of a video in one transaction,
// preserving assignment order for the tags as given
func (r *tagRepositoryImpl) ReplaceVideoTags(ctx context.Context, videoID uuid.UUID, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", videoID).Delete(&domain.VideoTag{}).Error; err != nil {
			return err
		}
		if len(tagIDs) == 0 {
			return nil
		}
		now := time.Now().UTC()
		assignments := make([]*domain.VideoTag, len(tagIDs))
		for i, tagID := range tagIDs {
			// Stagger timestamps so assignment order stays deterministic
			assignments[i] = &domain.VideoTag{
				VideoID:   videoID,
				TagID:     tagID,
				CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			}
		}
		return tx.Create(&assignments).Error
	})
}
