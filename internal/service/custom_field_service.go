package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
	"video-list-api/internal/dto"
	"video-list-api/internal/repository"
	"video-list-api/internal/response"
)

// CustomFieldService defines the interface for custom field business logic
type CustomFieldService interface {
	CreateField(ctx context.Context, listID uuid.UUID, req *dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error)
	GetField(ctx context.Context, listID, fieldID uuid.UUID) (*dto.CustomFieldResponse, error)
	GetFieldsByList(ctx context.Context, listID uuid.UUID) ([]*dto.CustomFieldResponse, error)
	UpdateField(ctx context.Context, listID, fieldID uuid.UUID, req *dto.UpdateCustomFieldRequest) (*dto.CustomFieldResponse, error)
	DeleteField(ctx context.Context, listID, fieldID uuid.UUID) error
}

// customFieldServiceImpl is the implementation of CustomFieldService
type customFieldServiceImpl struct {
	fieldRepo repository.CustomFieldRepository
	listRepo  repository.VideoListRepository
}

// NewCustomFieldService creates a new instance of CustomFieldService
func NewCustomFieldService(fieldRepo repository.CustomFieldRepository, listRepo repository.VideoListRepository) CustomFieldService {
	return &customFieldServiceImpl{
		fieldRepo: fieldRepo,
		listRepo:  listRepo,
	}
}

// CreateField creates a new custom field after validating its type
// specific configuration. Field names are unique per list.
func (s *customFieldServiceImpl) CreateField(ctx context.Context, listID uuid.UUID, req *dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	fieldType := domain.FieldType(req.FieldType)
	if !domain.IsValidFieldType(fieldType) {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid field type: %s", req.FieldType), "")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Field name must not be empty", "")
	}

	config, err := normalizeConfig(fieldType, req.Config)
	if err != nil {
		return nil, err
	}

	// Duplicate names conflict rather than silently shadow each other
	existing, err := s.fieldRepo.FindByListAndName(ctx, listID, name)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicates", err.Error())
	}
	if existing != nil {
		return nil, response.NewConflictError(fmt.Sprintf("Field '%s' already exists in this list", name), "")
	}

	field := &domain.CustomField{
		ListID:    listID,
		Name:      name,
		FieldType: fieldType,
		Config:    config,
	}

	if err := s.fieldRepo.Create(ctx, field); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create field", err.Error())
	}

	return toCustomFieldResponse(field), nil
}

// GetField retrieves a single custom field scoped to its list
func (s *customFieldServiceImpl) GetField(ctx context.Context, listID, fieldID uuid.UUID) (*dto.CustomFieldResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	field, err := s.findListField(ctx, listID, fieldID)
	if err != nil {
		return nil, err
	}

	return toCustomFieldResponse(field), nil
}

// GetFieldsByList retrieves all custom fields of a list
func (s *customFieldServiceImpl) GetFieldsByList(ctx context.Context, listID uuid.UUID) ([]*dto.CustomFieldResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	fields, err := s.fieldRepo.FindByList(ctx, listID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch fields", err.Error())
	}

	responses := make([]*dto.CustomFieldResponse, len(fields))
	for i, field := range fields {
		responses[i] = toCustomFieldResponse(field)
	}

	return responses, nil
}

// UpdateField updates a field's name or configuration. The field type
// is immutable once created; stored values are only reinterpreted, never
// rewritten, when the configuration changes.
func (s *customFieldServiceImpl) UpdateField(ctx context.Context, listID, fieldID uuid.UUID, req *dto.UpdateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	field, err := s.findListField(ctx, listID, fieldID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewValidationError("Field name must not be empty", "")
		}
		if name != field.Name {
			existing, err := s.fieldRepo.FindByListAndName(ctx, listID, name)
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicates", err.Error())
			}
			if existing != nil && existing.ID != field.ID {
				return nil, response.NewConflictError(fmt.Sprintf("Field '%s' already exists in this list", name), "")
			}
			field.Name = name
		}
	}

	if len(req.Config) > 0 {
		config, err := normalizeConfig(field.FieldType, req.Config)
		if err != nil {
			return nil, err
		}
		field.Config = config
	}

	if err := s.fieldRepo.Update(ctx, field); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update field", err.Error())
	}

	return toCustomFieldResponse(field), nil
}

// DeleteField deletes a field together with its stored values and its
// schema memberships
func (s *customFieldServiceImpl) DeleteField(ctx context.Context, listID, fieldID uuid.UUID) error {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return err
	}

	if _, err := s.findListField(ctx, listID, fieldID); err != nil {
		return err
	}

	if err := s.fieldRepo.Delete(ctx, fieldID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete field", err.Error())
	}

	return nil
}

// findListField fetches a field and verifies it belongs to the list
func (s *customFieldServiceImpl) findListField(ctx context.Context, listID, fieldID uuid.UUID) (*domain.CustomField, error) {
	field, err := s.fieldRepo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Field not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field", err.Error())
	}
	if field.ListID != listID {
		return nil, response.NewNotFoundError("Field not found", "")
	}
	return field, nil
}

// normalizeConfig parses and validates a raw config document against the
// field type and returns its canonical JSON encoding
func normalizeConfig(fieldType domain.FieldType, raw json.RawMessage) (datatypes.JSON, error) {
	config, err := domain.ParseFieldConfig(fieldType, datatypes.JSON(raw))
	if err != nil {
		return nil, response.NewValidationError("Invalid field configuration", err.Error())
	}
	if err := config.Validate(); err != nil {
		return nil, response.NewValidationError("Invalid field configuration", err.Error())
	}

	encoded, err := json.Marshal(config)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode field configuration", err.Error())
	}
	return datatypes.JSON(encoded), nil
}

// toCustomFieldResponse converts domain.CustomField to dto.CustomFieldResponse
func toCustomFieldResponse(field *domain.CustomField) *dto.CustomFieldResponse {
	return &dto.CustomFieldResponse{
		FieldID:   field.ID,
		ListID:    field.ListID,
		Name:      field.Name,
		FieldType: string(field.FieldType),
		Config:    json.RawMessage(field.Config),
		CreatedAt: field.CreatedAt,
		UpdatedAt: field.UpdatedAt,
	}
}
