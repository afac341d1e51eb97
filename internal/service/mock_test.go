package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-list-api/internal/client"
	"video-list-api/internal/domain"
	"video-list-api/internal/repository"
)

// MockVideoListRepository is a mock implementation of VideoListRepository
type MockVideoListRepository struct {
	CreateFunc      func(ctx context.Context, list *domain.VideoList) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.VideoList, error)
	FindByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]*domain.VideoList, error)
	UpdateFunc      func(ctx context.Context, list *domain.VideoList) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *MockVideoListRepository) Create(ctx context.Context, list *domain.VideoList) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, list)
	}
	return nil
}

func (m *MockVideoListRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.VideoList, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockVideoListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.VideoList, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockVideoListRepository) Update(ctx context.Context, list *domain.VideoList) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, list)
	}
	return nil
}

func (m *MockVideoListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockVideoListRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockVideoRepository is a mock implementation of VideoRepository
type MockVideoRepository struct {
	CreateFunc                 func(ctx context.Context, video *domain.Video) error
	CreateBatchFunc            func(ctx context.Context, videos []*domain.Video) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindByListAndYoutubeIDFunc func(ctx context.Context, listID uuid.UUID, youtubeID string) (*domain.Video, error)
	FindByListFunc             func(ctx context.Context, listID uuid.UUID, filter *repository.TagFilter) ([]*domain.Video, error)
	FindStaleMetadataFunc      func(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Video, error)
	UpdateFunc                 func(ctx context.Context, video *domain.Video) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
	CountFunc                  func(ctx context.Context) (int64, error)
	PurgeDeletedBeforeFunc     func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, video)
	}
	return nil
}

func (m *MockVideoRepository) CreateBatch(ctx context.Context, videos []*domain.Video) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, videos)
	}
	return nil
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockVideoRepository) FindByListAndYoutubeID(ctx context.Context, listID uuid.UUID, youtubeID string) (*domain.Video, error) {
	if m.FindByListAndYoutubeIDFunc != nil {
		return m.FindByListAndYoutubeIDFunc(ctx, listID, youtubeID)
	}
	return nil, nil
}

func (m *MockVideoRepository) FindByList(ctx context.Context, listID uuid.UUID, filter *repository.TagFilter) ([]*domain.Video, error) {
	if m.FindByListFunc != nil {
		return m.FindByListFunc(ctx, listID, filter)
	}
	return nil, nil
}

func (m *MockVideoRepository) FindStaleMetadata(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Video, error) {
	if m.FindStaleMetadataFunc != nil {
		return m.FindStaleMetadataFunc(ctx, olderThan, limit)
	}
	return nil, nil
}

func (m *MockVideoRepository) Update(ctx context.Context, video *domain.Video) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, video)
	}
	return nil
}

func (m *MockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockVideoRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockVideoRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.PurgeDeletedBeforeFunc != nil {
		return m.PurgeDeletedBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	CreateFunc            func(ctx context.Context, tag *domain.Tag) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	FindByListFunc        func(ctx context.Context, listID uuid.UUID) ([]*domain.Tag, error)
	FindByListAndNameFunc func(ctx context.Context, listID uuid.UUID, name string) (*domain.Tag, error)
	FindByVideoFunc       func(ctx context.Context, videoID uuid.UUID) ([]*domain.Tag, error)
	UpdateFunc            func(ctx context.Context, tag *domain.Tag) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	AssignToVideoFunc     func(ctx context.Context, videoID, tagID uuid.UUID) error
	RemoveFromVideoFunc   func(ctx context.Context, videoID, tagID uuid.UUID) error
	ReplaceVideoTagsFunc  func(ctx context.Context, videoID uuid.UUID, tagIDs []uuid.UUID) error
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTagRepository) FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.Tag, error) {
	if m.FindByListFunc != nil {
		return m.FindByListFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByListAndName(ctx context.Context, listID uuid.UUID, name string) (*domain.Tag, error) {
	if m.FindByListAndNameFunc != nil {
		return m.FindByListAndNameFunc(ctx, listID, name)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByVideo(ctx context.Context, videoID uuid.UUID) ([]*domain.Tag, error) {
	if m.FindByVideoFunc != nil {
		return m.FindByVideoFunc(ctx, videoID)
	}
	return nil, nil
}

func (m *MockTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTagRepository) AssignToVideo(ctx context.Context, videoID, tagID uuid.UUID) error {
	if m.AssignToVideoFunc != nil {
		return m.AssignToVideoFunc(ctx, videoID, tagID)
	}
	return nil
}

func (m *MockTagRepository) RemoveFromVideo(ctx context.Context, videoID, tagID uuid.UUID) error {
	if m.RemoveFromVideoFunc != nil {
		return m.RemoveFromVideoFunc(ctx, videoID, tagID)
	}
	return nil
}

func (m *MockTagRepository) ReplaceVideoTags(ctx context.Context, videoID uuid.UUID, tagIDs []uuid.UUID) error {
	if m.ReplaceVideoTagsFunc != nil {
		return m.ReplaceVideoTagsFunc(ctx, videoID, tagIDs)
	}
	return nil
}

// MockCustomFieldRepository is a mock implementation of CustomFieldRepository
type MockCustomFieldRepository struct {
	CreateFunc            func(ctx context.Context, field *domain.CustomField) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.CustomField, error)
	FindByIDsFunc         func(ctx context.Context, ids []uuid.UUID) ([]*domain.CustomField, error)
	FindByListFunc        func(ctx context.Context, listID uuid.UUID) ([]*domain.CustomField, error)
	FindByListAndNameFunc func(ctx context.Context, listID uuid.UUID, name string) (*domain.CustomField, error)
	UpdateFunc            func(ctx context.Context, field *domain.CustomField) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCustomFieldRepository) Create(ctx context.Context, field *domain.CustomField) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, field)
	}
	return nil
}

func (m *MockCustomFieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCustomFieldRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.CustomField, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockCustomFieldRepository) FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.CustomField, error) {
	if m.FindByListFunc != nil {
		return m.FindByListFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockCustomFieldRepository) FindByListAndName(ctx context.Context, listID uuid.UUID, name string) (*domain.CustomField, error) {
	if m.FindByListAndNameFunc != nil {
		return m.FindByListAndNameFunc(ctx, listID, name)
	}
	return nil, nil
}

func (m *MockCustomFieldRepository) Update(ctx context.Context, field *domain.CustomField) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, field)
	}
	return nil
}

func (m *MockCustomFieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockFieldSchemaRepository is a mock implementation of FieldSchemaRepository
type MockFieldSchemaRepository struct {
	CreateFunc              func(ctx context.Context, schema *domain.FieldSchema) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.FieldSchema, error)
	FindByListFunc          func(ctx context.Context, listID uuid.UUID) ([]*domain.FieldSchema, error)
	UpdateFunc              func(ctx context.Context, schema *domain.FieldSchema) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	AttachFieldFunc         func(ctx context.Context, link *domain.SchemaField) error
	DetachFieldFunc         func(ctx context.Context, schemaID, fieldID uuid.UUID) error
	FindSchemaFieldsFunc    func(ctx context.Context, schemaID uuid.UUID) ([]*domain.SchemaField, error)
	FindSchemaFieldLinkFunc func(ctx context.Context, schemaID, fieldID uuid.UUID) (*domain.SchemaField, error)
	ReorderFieldsFunc       func(ctx context.Context, schemaID uuid.UUID, orderedFieldIDs []uuid.UUID) error
}

func (m *MockFieldSchemaRepository) Create(ctx context.Context, schema *domain.FieldSchema) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, schema)
	}
	return nil
}

func (m *MockFieldSchemaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldSchema, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockFieldSchemaRepository) FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.FieldSchema, error) {
	if m.FindByListFunc != nil {
		return m.FindByListFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockFieldSchemaRepository) Update(ctx context.Context, schema *domain.FieldSchema) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, schema)
	}
	return nil
}

func (m *MockFieldSchemaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockFieldSchemaRepository) AttachField(ctx context.Context, link *domain.SchemaField) error {
	if m.AttachFieldFunc != nil {
		return m.AttachFieldFunc(ctx, link)
	}
	return nil
}

func (m *MockFieldSchemaRepository) DetachField(ctx context.Context, schemaID, fieldID uuid.UUID) error {
	if m.DetachFieldFunc != nil {
		return m.DetachFieldFunc(ctx, schemaID, fieldID)
	}
	return nil
}

func (m *MockFieldSchemaRepository) FindSchemaFields(ctx context.Context, schemaID uuid.UUID) ([]*domain.SchemaField, error) {
	if m.FindSchemaFieldsFunc != nil {
		return m.FindSchemaFieldsFunc(ctx, schemaID)
	}
	return nil, nil
}

func (m *MockFieldSchemaRepository) FindSchemaFieldLink(ctx context.Context, schemaID, fieldID uuid.UUID) (*domain.SchemaField, error) {
	if m.FindSchemaFieldLinkFunc != nil {
		return m.FindSchemaFieldLinkFunc(ctx, schemaID, fieldID)
	}
	return nil, nil
}

func (m *MockFieldSchemaRepository) ReorderFields(ctx context.Context, schemaID uuid.UUID, orderedFieldIDs []uuid.UUID) error {
	if m.ReorderFieldsFunc != nil {
		return m.ReorderFieldsFunc(ctx, schemaID, orderedFieldIDs)
	}
	return nil
}

// MockFieldValueRepository is a mock implementation of FieldValueRepository
type MockFieldValueRepository struct {
	UpsertBatchFunc   func(ctx context.Context, values []*domain.VideoFieldValue) error
	FindByVideoFunc   func(ctx context.Context, videoID uuid.UUID) ([]*domain.VideoFieldValue, error)
	FindUnionRowsFunc func(ctx context.Context, videoID uuid.UUID) ([]*repository.FieldUnionRow, error)
}

func (m *MockFieldValueRepository) UpsertBatch(ctx context.Context, values []*domain.VideoFieldValue) error {
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, values)
	}
	return nil
}

func (m *MockFieldValueRepository) FindByVideo(ctx context.Context, videoID uuid.UUID) ([]*domain.VideoFieldValue, error) {
	if m.FindByVideoFunc != nil {
		return m.FindByVideoFunc(ctx, videoID)
	}
	return nil, nil
}

func (m *MockFieldValueRepository) FindUnionRows(ctx context.Context, videoID uuid.UUID) ([]*repository.FieldUnionRow, error) {
	if m.FindUnionRowsFunc != nil {
		return m.FindUnionRowsFunc(ctx, videoID)
	}
	return nil, nil
}

// MockYouTubeClient is a mock implementation of client.YouTubeClient
type MockYouTubeClient struct {
	GetVideoFunc  func(ctx context.Context, youtubeID string) (*client.VideoMetadata, error)
	GetVideosFunc func(ctx context.Context, youtubeIDs []string) (map[string]*client.VideoMetadata, error)
	EnabledFunc   func() bool
}

func (m *MockYouTubeClient) GetVideo(ctx context.Context, youtubeID string) (*client.VideoMetadata, error) {
	if m.GetVideoFunc != nil {
		return m.GetVideoFunc(ctx, youtubeID)
	}
	return nil, nil
}

func (m *MockYouTubeClient) GetVideos(ctx context.Context, youtubeIDs []string) (map[string]*client.VideoMetadata, error) {
	if m.GetVideosFunc != nil {
		return m.GetVideosFunc(ctx, youtubeIDs)
	}
	return map[string]*client.VideoMetadata{}, nil
}

func (m *MockYouTubeClient) Enabled() bool {
	if m.EnabledFunc != nil {
		return m.EnabledFunc()
	}
	return true
}
