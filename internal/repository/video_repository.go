package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
)

// TagFilter controls tag-based video filtering
// Names are tag names within the list; MatchAll selects AND semantics
// (every named tag present) instead of the default OR (any tag present)
type TagFilter struct {
	Names    []string
	MatchAll bool
}

// VideoRepository defines the interface for video data access
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	CreateBatch(ctx context.Context, videos []*domain.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindByListAndYoutubeID(ctx context.Context, listID uuid.UUID, youtubeID string) (*domain.Video, error)
	FindByList(ctx context.Context, listID uuid.UUID, filter *TagFilter) ([]*domain.Video, error)
	FindStaleMetadata(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Video, error)
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// videoRepositoryImpl is the GORM implementation of VideoRepository
type videoRepositoryImpl struct {
	db *gorm.DB
}

// NewVideoRepository creates a new instance of VideoRepository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepositoryImpl{db: db}
}

// Create creates a new video
func (r *videoRepositoryImpl) Create(ctx context.Context, video *domain.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

// CreateBatch creates multiple videos in a single statement
func (r *videoRepositoryImpl) CreateBatch(ctx context.Context, videos []*domain.Video) error {
	if len(videos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&videos).Error
}

// FindByID finds a video by ID with its tags preloaded
func (r *videoRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	var video domain.Video
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("id = ?", id).
		First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// FindByListAndYoutubeID finds a video by its YouTube ID within a list
// Returns (nil, nil) when no such video exists
func (r *videoRepositoryImpl) FindByListAndYoutubeID(ctx context.Context, listID uuid.UUID, youtubeID string) (*domain.Video, error) {
	var video domain.Video
	err := r.db.WithContext(ctx).
		Where("list_id = ? AND youtube_id = ?", listID, youtubeID).
		First(&video).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// FindByList finds videos in a list, optionally filtered by tags
// OR filtering selects videos carrying any of the named tags; AND filtering
// requires every named tag (GROUP BY video, HAVING distinct-tag count match)
// Both run as a single query regardless of how many tags are named
func (r *videoRepositoryImpl) FindByList(ctx context.Context, listID uuid.UUID, filter *TagFilter) ([]*domain.Video, error) {
	var videos []*domain.Video

	query := r.db.WithContext(ctx).
		Model(&domain.Video{}).
		Preload("Tags").
		Where("videos.list_id = ?", listID)

	if filter != nil && len(filter.Names) > 0 {
		query = query.
			Joins("JOIN video_tags ON video_tags.video_id = videos.id").
			Joins("JOIN tags ON tags.id = video_tags.tag_id AND tags.deleted_at IS NULL").
			Where("tags.name IN ?", filter.Names)

		if filter.MatchAll {
			query = query.
				Group("videos.id").
				Having("COUNT(DISTINCT tags.id) = ?", len(filter.Names))
		} else {
			query = query.Distinct("videos.*")
		}
	}

	if err := query.Order("videos.created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// FindStaleMetadata finds videos whose metadata has not been refreshed
// since olderThan, oldest first
func (r *videoRepositoryImpl) FindStaleMetadata(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Video, error) {
	var videos []*domain.Video
	if err := r.db.WithContext(ctx).
		Where("metadata_sync_at IS NULL OR metadata_sync_at < ?", olderThan).
		Order("metadata_sync_at ASC").
		Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Update updates a video
func (r *videoRepositoryImpl) Update(ctx context.Context, video *domain.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

// Delete soft deletes a video and removes its tag assignments and
// field values in one transaction
func (r *videoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&domain.VideoTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&domain.VideoFieldValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Video{}, id).Error
	})
}

// Count returns the total number of videos (for business metrics)
func (r *videoRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Video{}).Count(&count).Error
	return count, err
}

// PurgeDeletedBefore permanently removes soft-deleted videos older than cutoff
func (r *videoRepositoryImpl) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&domain.Video{})
	return result.RowsAffected, result.Error
}
