package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
	"video-list-api/internal/dto"
	"video-list-api/internal/repository"
	"video-list-api/internal/response"
)

// TagService defines the interface for tag business logic
type TagService interface {
	CreateTag(ctx context.Context, listID uuid.UUID, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	GetTagsByList(ctx context.Context, listID uuid.UUID) ([]*dto.TagResponse, error)
	UpdateTag(ctx context.Context, listID, tagID uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	DeleteTag(ctx context.Context, listID, tagID uuid.UUID) error

	AssignTag(ctx context.Context, listID, videoID uuid.UUID, req *dto.AssignTagRequest) error
	RemoveTag(ctx context.Context, listID, videoID, tagID uuid.UUID) error
	ReplaceVideoTags(ctx context.Context, listID, videoID uuid.UUID, req *dto.ReplaceVideoTagsRequest) ([]*dto.TagResponse, error)
}

// tagServiceImpl is the implementation of TagService
type tagServiceImpl struct {
	tagRepo    repository.TagRepository
	videoRepo  repository.VideoRepository
	schemaRepo repository.FieldSchemaRepository
	listRepo   repository.VideoListRepository
}

// NewTagService creates a new instance of TagService
func NewTagService(
	tagRepo repository.TagRepository,
	videoRepo repository.VideoRepository,
	schemaRepo repository.FieldSchemaRepository,
	listRepo repository.VideoListRepository,
) TagService {
	return &tagServiceImpl{
		tagRepo:    tagRepo,
		videoRepo:  videoRepo,
		schemaRepo: schemaRepo,
		listRepo:   listRepo,
	}
}

// CreateTag creates a new tag. Tag names are unique per list; the
// optional schema reference must point at a schema in the same list.
func (s *tagServiceImpl) CreateTag(ctx context.Context, listID uuid.UUID, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Tag name must not be empty", "")
	}

	existing, err := s.tagRepo.FindByListAndName(ctx, listID, name)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicates", err.Error())
	}
	if existing != nil {
		return nil, response.NewConflictError(fmt.Sprintf("Tag '%s' already exists in this list", name), "")
	}

	if req.SchemaID != nil {
		if err := s.validateSchemaRef(ctx, listID, *req.SchemaID); err != nil {
			return nil, err
		}
	}

	tag := &domain.Tag{
		ListID:   listID,
		Name:     name,
		Color:    req.Color,
		SchemaID: req.SchemaID,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create tag", err.Error())
	}

	return toTagResponse(tag), nil
}

// GetTagsByList retrieves all tags of a list
func (s *tagServiceImpl) GetTagsByList(ctx context.Context, listID uuid.UUID) ([]*dto.TagResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.FindByList(ctx, listID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tags", err.Error())
	}

	responses := make([]*dto.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = toTagResponse(tag)
	}
	return responses, nil
}

// UpdateTag updates a tag's name, color or schema reference
func (s *tagServiceImpl) UpdateTag(ctx context.Context, listID, tagID uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	tag, err := s.findListTag(ctx, listID, tagID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewValidationError("Tag name must not be empty", "")
		}
		if name != tag.Name {
			existing, err := s.tagRepo.FindByListAndName(ctx, listID, name)
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicates", err.Error())
			}
			if existing != nil && existing.ID != tag.ID {
				return nil, response.NewConflictError(fmt.Sprintf("Tag '%s' already exists in this list", name), "")
			}
			tag.Name = name
		}
	}
	if req.Color != nil {
		tag.Color = req.Color
	}
	if req.ClearSchema {
		tag.SchemaID = nil
	} else if req.SchemaID != nil {
		if err := s.validateSchemaRef(ctx, listID, *req.SchemaID); err != nil {
			return nil, err
		}
		tag.SchemaID = req.SchemaID
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update tag", err.Error())
	}

	return toTagResponse(tag), nil
}

// DeleteTag deletes a tag and its video assignments. Videos keep any
// field values they stored; the values simply stop being exposed until
// another tag brings the same fields back.
func (s *tagServiceImpl) DeleteTag(ctx context.Context, listID, tagID uuid.UUID) error {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return err
	}
	if _, err := s.findListTag(ctx, listID, tagID); err != nil {
		return err
	}

	if err := s.tagRepo.Delete(ctx, tagID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete tag", err.Error())
	}
	return nil
}

// AssignTag adds a tag to a video. Assigning an already assigned tag
// succeeds without effect.
func (s *tagServiceImpl) AssignTag(ctx context.Context, listID, videoID uuid.UUID, req *dto.AssignTagRequest) error {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return err
	}
	if _, err := s.findListVideo(ctx, listID, videoID); err != nil {
		return err
	}
	if _, err := s.findListTag(ctx, listID, req.TagID); err != nil {
		return err
	}

	if err := s.tagRepo.AssignToVideo(ctx, videoID, req.TagID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to assign tag", err.Error())
	}
	return nil
}

// RemoveTag removes a tag from a video. Removing an unassigned tag
// succeeds without effect.
func (s *tagServiceImpl) RemoveTag(ctx context.Context, listID, videoID, tagID uuid.UUID) error {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return err
	}
	if _, err := s.findListVideo(ctx, listID, videoID); err != nil {
		return err
	}
	if _, err := s.findListTag(ctx, listID, tagID); err != nil {
		return err
	}

	if err := s.tagRepo.RemoveFromVideo(ctx, videoID, tagID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove tag", err.Error())
	}
	return nil
}

// ReplaceVideoTags replaces the full tag set of a video in one atomic
// operation and returns the new set in assignment order
func (s *tagServiceImpl) ReplaceVideoTags(ctx context.Context, listID, videoID uuid.UUID, req *dto.ReplaceVideoTagsRequest) ([]*dto.TagResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}
	if _, err := s.findListVideo(ctx, listID, videoID); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(req.TagIDs))
	for _, tagID := range req.TagIDs {
		if _, dup := seen[tagID]; dup {
			return nil, response.NewValidationError(fmt.Sprintf("Tag %s appears more than once", tagID), "")
		}
		seen[tagID] = struct{}{}
		if _, err := s.findListTag(ctx, listID, tagID); err != nil {
			return nil, err
		}
	}

	if err := s.tagRepo.ReplaceVideoTags(ctx, videoID, req.TagIDs); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to replace tags", err.Error())
	}

	tags, err := s.tagRepo.FindByVideo(ctx, videoID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tags", err.Error())
	}
	responses := make([]*dto.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = toTagResponse(tag)
	}
	return responses, nil
}

// validateSchemaRef verifies a schema exists and belongs to the list
func (s *tagServiceImpl) validateSchemaRef(ctx context.Context, listID, schemaID uuid.UUID) error {
	schema, err := s.schemaRepo.FindByID(ctx, schemaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Schema not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch schema", err.Error())
	}
	if schema.ListID != listID {
		return response.NewValidationError("Schema belongs to a different list", "")
	}
	return nil
}

// findListTag fetches a tag and verifies it belongs to the list
func (s *tagServiceImpl) findListTag(ctx context.Context, listID, tagID uuid.UUID) (*domain.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Tag not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tag", err.Error())
	}
	if tag == nil || tag.ListID != listID {
		return nil, response.NewNotFoundError("Tag not found", "")
	}
	return tag, nil
}

// findListVideo fetches a video and verifies it belongs to the list
func (s *tagServiceImpl) findListVideo(ctx context.Context, listID, videoID uuid.UUID) (*domain.Video, error) {
	video, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Video not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch video", err.Error())
	}
	if video == nil || video.ListID != listID {
		return nil, response.NewNotFoundError("Video not found", "")
	}
	return video, nil
}

// toTagResponse converts domain.Tag to dto.TagResponse
func toTagResponse(tag *domain.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		TagID:     tag.ID,
		Name:      tag.Name,
		Color:     tag.Color,
		SchemaID:  tag.SchemaID,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}
