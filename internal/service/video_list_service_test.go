package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
	"video-list-api/internal/dto"
	"video-list-api/internal/metrics"
	"video-list-api/internal/response"
)

func testMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func authedContext(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), "user_id", userID)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected *response.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateList(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()

	mockListRepo := &MockVideoListRepository{
		CreateFunc: func(ctx context.Context, list *domain.VideoList) error {
			assert.Equal(t, userID, list.OwnerID)
			list.ID = listID
			return nil
		},
	}

	svc := NewVideoListService(mockListRepo, testMetrics(), zap.NewNop())

	resp, err := svc.CreateList(authedContext(userID), &dto.CreateVideoListRequest{
		Name:        "Watch Later",
		Description: "queue",
	})

	require.NoError(t, err)
	assert.Equal(t, listID, resp.ListID)
	assert.Equal(t, "Watch Later", resp.Name)
	assert.Equal(t, "queue", resp.Description)
}

func TestCreateListRequiresAuth(t *testing.T) {
	svc := NewVideoListService(&MockVideoListRepository{}, testMetrics(), zap.NewNop())

	_, err := svc.CreateList(context.Background(), &dto.CreateVideoListRequest{Name: "x"})

	assertAppErrorCode(t, err, response.ErrCodeUnauthorized)
}

func TestGetListNotFound(t *testing.T) {
	mockListRepo := &MockVideoListRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.VideoList, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewVideoListService(mockListRepo, testMetrics(), zap.NewNop())

	_, err := svc.GetList(authedContext(uuid.New()), uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestGetListForbiddenForOtherOwner(t *testing.T) {
	listID := uuid.New()
	mockListRepo := &MockVideoListRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.VideoList, error) {
			return &domain.VideoList{
				BaseModel: domain.BaseModel{ID: listID},
				OwnerID:   uuid.New(),
				Name:      "someone else's list",
			}, nil
		},
	}
	svc := NewVideoListService(mockListRepo, testMetrics(), zap.NewNop())

	_, err := svc.GetList(authedContext(uuid.New()), listID)

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestGetMyLists(t *testing.T) {
	userID := uuid.New()
	mockListRepo := &MockVideoListRepository{
		FindByOwnerFunc: func(ctx context.Context, ownerID uuid.UUID) ([]*domain.VideoList, error) {
			assert.Equal(t, userID, ownerID)
			return []*domain.VideoList{
				{BaseModel: domain.BaseModel{ID: uuid.New()}, OwnerID: userID, Name: "a"},
				{BaseModel: domain.BaseModel{ID: uuid.New()}, OwnerID: userID, Name: "b"},
			}, nil
		},
	}
	svc := NewVideoListService(mockListRepo, testMetrics(), zap.NewNop())

	lists, err := svc.GetMyLists(authedContext(userID))

	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "a", lists[0].Name)
	assert.Equal(t, "b", lists[1].Name)
}

func TestUpdateListPartial(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	var saved *domain.VideoList

	mockListRepo := &MockVideoListRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.VideoList, error) {
			return &domain.VideoList{
				BaseModel:   domain.BaseModel{ID: listID},
				OwnerID:     userID,
				Name:        "old name",
				Description: "old description",
			}, nil
		},
		UpdateFunc: func(ctx context.Context, list *domain.VideoList) error {
			saved = list
			return nil
		},
	}
	svc := NewVideoListService(mockListRepo, testMetrics(), zap.NewNop())

	newName := "new name"
	resp, err := svc.UpdateList(authedContext(userID), listID, &dto.UpdateVideoListRequest{Name: &newName})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "new name", saved.Name)
	assert.Equal(t, "old description", saved.Description, "omitted fields keep their value")
	assert.Equal(t, "new name", resp.Name)
}

func TestDeleteList(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	deleted := false

	mockListRepo := &MockVideoListRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.VideoList, error) {
			return &domain.VideoList{BaseModel: domain.BaseModel{ID: listID}, OwnerID: userID}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, listID, id)
			deleted = true
			return nil
		},
	}
	svc := NewVideoListService(mockListRepo, testMetrics(), zap.NewNop())

	err := svc.DeleteList(authedContext(userID), listID)

	require.NoError(t, err)
	assert.True(t, deleted)
}
