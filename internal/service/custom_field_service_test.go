package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
	"video-list-api/internal/dto"
	"video-list-api/internal/response"
)

func ownedListRepo(userID, listID uuid.UUID) *MockVideoListRepository {
	return &MockVideoListRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.VideoList, error) {
			if id != listID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.VideoList{BaseModel: domain.BaseModel{ID: listID}, OwnerID: userID}, nil
		},
	}
}

func TestCreateField(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	fieldID := uuid.New()

	mockFieldRepo := &MockCustomFieldRepository{
		FindByListAndNameFunc: func(ctx context.Context, lID uuid.UUID, name string) (*domain.CustomField, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, field *domain.CustomField) error {
			assert.Equal(t, listID, field.ListID)
			assert.Equal(t, domain.FieldTypeSelect, field.FieldType)
			field.ID = fieldID
			return nil
		},
	}
	svc := NewCustomFieldService(mockFieldRepo, ownedListRepo(userID, listID))

	resp, err := svc.CreateField(authedContext(userID), listID, &dto.CreateCustomFieldRequest{
		Name:      "Watch status",
		FieldType: "select",
		Config:    json.RawMessage(`{"options":["queued","watching","done"]}`),
	})

	require.NoError(t, err)
	assert.Equal(t, fieldID, resp.FieldID)
	assert.Equal(t, "select", resp.FieldType)

	var cfg domain.SelectConfig
	require.NoError(t, json.Unmarshal(resp.Config, &cfg))
	assert.Equal(t, []string{"queued", "watching", "done"}, cfg.Options)
}

func TestCreateFieldDuplicateName(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()

	mockFieldRepo := &MockCustomFieldRepository{
		FindByListAndNameFunc: func(ctx context.Context, lID uuid.UUID, name string) (*domain.CustomField, error) {
			return &domain.CustomField{BaseModel: domain.BaseModel{ID: uuid.New()}, ListID: listID, Name: name}, nil
		},
	}
	svc := NewCustomFieldService(mockFieldRepo, ownedListRepo(userID, listID))

	_, err := svc.CreateField(authedContext(userID), listID, &dto.CreateCustomFieldRequest{
		Name:      "Rating",
		FieldType: "rating",
		Config:    json.RawMessage(`{"max_rating":5}`),
	})

	assertAppErrorCode(t, err, response.ErrCodeAlreadyExists)
}

func TestCreateFieldInvalidConfig(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	svc := NewCustomFieldService(&MockCustomFieldRepository{}, ownedListRepo(userID, listID))

	tests := []struct {
		name      string
		fieldType string
		config    string
	}{
		{"select without options", "select", `{"options":[]}`},
		{"rating out of range", "rating", `{"max_rating":11}`},
		{"config keys of another type", "rating", `{"options":["a"]}`},
		{"boolean with settings", "boolean", `{"max_rating":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateField(authedContext(userID), listID, &dto.CreateCustomFieldRequest{
				Name:      "field",
				FieldType: tt.fieldType,
				Config:    json.RawMessage(tt.config),
			})
			assertAppErrorCode(t, err, response.ErrCodeValidation)
		})
	}
}

func TestUpdateFieldKeepsType(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	fieldID := uuid.New()
	var saved *domain.CustomField

	mockFieldRepo := &MockCustomFieldRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
			return &domain.CustomField{
				BaseModel: domain.BaseModel{ID: fieldID},
				ListID:    listID,
				Name:      "Rating",
				FieldType: domain.FieldTypeRating,
				Config:    datatypes.JSON(`{"max_rating":5}`),
			}, nil
		},
		UpdateFunc: func(ctx context.Context, field *domain.CustomField) error {
			saved = field
			return nil
		},
	}
	svc := NewCustomFieldService(mockFieldRepo, ownedListRepo(userID, listID))

	// Widening max_rating reinterprets stored values without rewriting them
	resp, err := svc.UpdateField(authedContext(userID), listID, fieldID, &dto.UpdateCustomFieldRequest{
		Config: json.RawMessage(`{"max_rating":10}`),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, domain.FieldTypeRating, saved.FieldType)
	assert.Equal(t, "rating", resp.FieldType)

	var cfg domain.RatingConfig
	require.NoError(t, json.Unmarshal(resp.Config, &cfg))
	assert.Equal(t, 10, cfg.MaxRating)
}

func TestUpdateFieldRejectsConfigOfAnotherType(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	fieldID := uuid.New()

	mockFieldRepo := &MockCustomFieldRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
			return &domain.CustomField{
				BaseModel: domain.BaseModel{ID: fieldID},
				ListID:    listID,
				Name:      "Rating",
				FieldType: domain.FieldTypeRating,
				Config:    datatypes.JSON(`{"max_rating":5}`),
			}, nil
		},
	}
	svc := NewCustomFieldService(mockFieldRepo, ownedListRepo(userID, listID))

	_, err := svc.UpdateField(authedContext(userID), listID, fieldID, &dto.UpdateCustomFieldRequest{
		Config: json.RawMessage(`{"options":["a","b"]}`),
	})

	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestGetFieldScopedToList(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	fieldID := uuid.New()

	mockFieldRepo := &MockCustomFieldRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
			// Field exists but belongs to a different list
			return &domain.CustomField{
				BaseModel: domain.BaseModel{ID: fieldID},
				ListID:    uuid.New(),
				Name:      "foreign",
				FieldType: domain.FieldTypeText,
			}, nil
		},
	}
	svc := NewCustomFieldService(mockFieldRepo, ownedListRepo(userID, listID))

	_, err := svc.GetField(authedContext(userID), listID, fieldID)

	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestDeleteField(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	fieldID := uuid.New()
	deleted := false

	mockFieldRepo := &MockCustomFieldRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
			return &domain.CustomField{
				BaseModel: domain.BaseModel{ID: fieldID},
				ListID:    listID,
				Name:      "Rating",
				FieldType: domain.FieldTypeRating,
			}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, fieldID, id)
			deleted = true
			return nil
		},
	}
	svc := NewCustomFieldService(mockFieldRepo, ownedListRepo(userID, listID))

	require.NoError(t, svc.DeleteField(authedContext(userID), listID, fieldID))
	assert.True(t, deleted)
}
