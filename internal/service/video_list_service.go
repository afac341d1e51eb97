package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
	"video-list-api/internal/dto"
	"video-list-api/internal/metrics"
	"video-list-api/internal/repository"
	"video-list-api/internal/response"
)

// VideoListService defines the interface for video list business logic
type VideoListService interface {
	CreateList(ctx context.Context, req *dto.CreateVideoListRequest) (*dto.VideoListResponse, error)
	GetList(ctx context.Context, listID uuid.UUID) (*dto.VideoListResponse, error)
	GetMyLists(ctx context.Context) ([]*dto.VideoListResponse, error)
	UpdateList(ctx context.Context, listID uuid.UUID, req *dto.UpdateVideoListRequest) (*dto.VideoListResponse, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
}

// videoListServiceImpl is the implementation of VideoListService
type videoListServiceImpl struct {
	listRepo repository.VideoListRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewVideoListService creates a new instance of VideoListService
func NewVideoListService(listRepo repository.VideoListRepository, m *metrics.Metrics, logger *zap.Logger) VideoListService {
	return &videoListServiceImpl{
		listRepo: listRepo,
		metrics:  m,
		logger:   logger,
	}
}

// CreateList creates a new video list owned by the authenticated user
func (s *videoListServiceImpl) CreateList(ctx context.Context, req *dto.CreateVideoListRequest) (*dto.VideoListResponse, error) {
	ownerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("List name must not be empty", "")
	}

	list := &domain.VideoList{
		OwnerID:     ownerID,
		Name:        name,
		Description: req.Description,
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create list", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementListCreated()
	}
	s.logger.Info("video list created",
		zap.String("list_id", list.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return toVideoListResponse(list), nil
}

// GetList retrieves a single list owned by the authenticated user
func (s *videoListServiceImpl) GetList(ctx context.Context, listID uuid.UUID) (*dto.VideoListResponse, error) {
	list, err := requireList(ctx, s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	return toVideoListResponse(list), nil
}

// GetMyLists retrieves every list owned by the authenticated user
func (s *videoListServiceImpl) GetMyLists(ctx context.Context) ([]*dto.VideoListResponse, error) {
	ownerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	lists, err := s.listRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch lists", err.Error())
	}

	responses := make([]*dto.VideoListResponse, len(lists))
	for i, list := range lists {
		responses[i] = toVideoListResponse(list)
	}
	return responses, nil
}

// UpdateList updates a list's name or description
func (s *videoListServiceImpl) UpdateList(ctx context.Context, listID uuid.UUID, req *dto.UpdateVideoListRequest) (*dto.VideoListResponse, error) {
	list, err := requireList(ctx, s.listRepo, listID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewValidationError("List name must not be empty", "")
		}
		list.Name = name
	}
	if req.Description != nil {
		list.Description = *req.Description
	}

	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update list", err.Error())
	}

	return toVideoListResponse(list), nil
}

// DeleteList deletes a list and everything it contains: videos, tags,
// fields, schemas, values and tag assignments
func (s *videoListServiceImpl) DeleteList(ctx context.Context, listID uuid.UUID) error {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return err
	}

	if err := s.listRepo.Delete(ctx, listID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete list", err.Error())
	}

	s.logger.Info("video list deleted", zap.String("list_id", listID.String()))
	return nil
}

// userIDFromContext extracts the authenticated user id placed in the
// context by the auth middleware
func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, response.NewAppError(response.ErrCodeUnauthorized, "User ID not found in context", "")
	}
	return userID, nil
}

// requireList fetches a list and verifies the authenticated user owns it.
// Every list scoped operation goes through this check.
func requireList(ctx context.Context, listRepo repository.VideoListRepository, listID uuid.UUID) (*domain.VideoList, error) {
	list, err := listRepo.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("List not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch list", err.Error())
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if list.OwnerID != userID {
		return nil, response.NewForbiddenError("You do not have access to this list", "")
	}
	return list, nil
}

// toVideoListResponse converts domain.VideoList to dto.VideoListResponse
func toVideoListResponse(list *domain.VideoList) *dto.VideoListResponse {
	return &dto.VideoListResponse{
		ListID:      list.ID,
		Name:        list.Name,
		Description: list.Description,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}
