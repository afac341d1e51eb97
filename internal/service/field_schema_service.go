package service

import (
	"context"
	"encoding/json"
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

// FieldSchemaService defines the interface for field schema business logic
type FieldSchemaService interface {
	CreateSchema(ctx context.Context, listID uuid.UUID, req *dto.CreateFieldSchemaRequest) (*dto.FieldSchemaResponse, error)
	GetSchema(ctx context.Context, listID, schemaID uuid.UUID) (*dto.FieldSchemaResponse, error)
	GetSchemasByList(ctx context.Context, listID uuid.UUID) ([]*dto.FieldSchemaResponse, error)
	UpdateSchema(ctx context.Context, listID, schemaID uuid.UUID, req *dto.UpdateFieldSchemaRequest) (*dto.FieldSchemaResponse, error)
	DeleteSchema(ctx context.Context, listID, schemaID uuid.UUID) error

	AttachField(ctx context.Context, listID, schemaID uuid.UUID, req *dto.AttachFieldRequest) (*dto.FieldSchemaResponse, error)
	DetachField(ctx context.Context, listID, schemaID, fieldID uuid.UUID) error
	ReorderFields(ctx context.Context, listID, schemaID uuid.UUID, req *dto.ReorderFieldsRequest) (*dto.FieldSchemaResponse, error)
}

// fieldSchemaServiceImpl is the implementation of FieldSchemaService
type fieldSchemaServiceImpl struct {
	schemaRepo repository.FieldSchemaRepository
	fieldRepo  repository.CustomFieldRepository
	listRepo   repository.VideoListRepository
}

// NewFieldSchemaService creates a new instance of FieldSchemaService
func NewFieldSchemaService(
	schemaRepo repository.FieldSchemaRepository,
	fieldRepo repository.CustomFieldRepository,
	listRepo repository.VideoListRepository,
) FieldSchemaService {
	return &fieldSchemaServiceImpl{
		schemaRepo: schemaRepo,
		fieldRepo:  fieldRepo,
		listRepo:   listRepo,
	}
}

// CreateSchema creates a new field schema, optionally creating and
// attaching new custom fields in the same request. Nested fields follow
// the same validation as standalone field creation.
func (s *fieldSchemaServiceImpl) CreateSchema(ctx context.Context, listID uuid.UUID, req *dto.CreateFieldSchemaRequest) (*dto.FieldSchemaResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Schema name must not be empty", "")
	}

	// Validate every nested field before creating anything
	type pendingField struct {
		field *domain.CustomField
		order int
		show  bool
	}
	pending := make([]pendingField, 0, len(req.Fields))
	seen := make(map[string]struct{}, len(req.Fields))
	for i, nf := range req.Fields {
		fieldType := domain.FieldType(nf.FieldType)
		if !domain.IsValidFieldType(fieldType) {
			return nil, response.NewValidationError(fmt.Sprintf("fields[%d]: invalid field type: %s", i, nf.FieldType), "")
		}
		fieldName := strings.TrimSpace(nf.Name)
		if fieldName == "" {
			return nil, response.NewValidationError(fmt.Sprintf("fields[%d]: field name must not be empty", i), "")
		}
		if _, dup := seen[strings.ToLower(fieldName)]; dup {
			return nil, response.NewValidationError(fmt.Sprintf("fields[%d]: duplicate field name '%s'", i, fieldName), "")
		}
		seen[strings.ToLower(fieldName)] = struct{}{}

		config, err := normalizeConfig(fieldType, nf.Config)
		if err != nil {
			return nil, err
		}

		existing, err := s.fieldRepo.FindByListAndName(ctx, listID, fieldName)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicates", err.Error())
		}
		if existing != nil {
			return nil, response.NewConflictError(fmt.Sprintf("Field '%s' already exists in this list", fieldName), "")
		}

		pending = append(pending, pendingField{
			field: &domain.CustomField{
				ListID:    listID,
				Name:      fieldName,
				FieldType: fieldType,
				Config:    config,
			},
			order: nf.DisplayOrder,
			show:  nf.ShowOnCard,
		})
	}

	schema := &domain.FieldSchema{
		ListID:      listID,
		Name:        name,
		Description: req.Description,
	}
	if err := s.schemaRepo.Create(ctx, schema); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create schema", err.Error())
	}

	for _, p := range pending {
		if err := s.fieldRepo.Create(ctx, p.field); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create field", err.Error())
		}
		link := &domain.SchemaField{
			SchemaID:     schema.ID,
			FieldID:      p.field.ID,
			DisplayOrder: p.order,
			ShowOnCard:   p.show,
		}
		if err := s.schemaRepo.AttachField(ctx, link); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to attach field", err.Error())
		}
	}

	return s.loadSchemaResponse(ctx, schema.ID)
}

// GetSchema retrieves a single schema with its fields in display order
func (s *fieldSchemaServiceImpl) GetSchema(ctx context.Context, listID, schemaID uuid.UUID) (*dto.FieldSchemaResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}
	if _, err := s.findListSchema(ctx, listID, schemaID); err != nil {
		return nil, err
	}
	return s.loadSchemaResponse(ctx, schemaID)
}

// GetSchemasByList retrieves all schemas of a list
func (s *fieldSchemaServiceImpl) GetSchemasByList(ctx context.Context, listID uuid.UUID) ([]*dto.FieldSchemaResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	schemas, err := s.schemaRepo.FindByList(ctx, listID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch schemas", err.Error())
	}

	responses := make([]*dto.FieldSchemaResponse, len(schemas))
	for i, schema := range schemas {
		responses[i] = toFieldSchemaResponse(schema)
	}
	return responses, nil
}

// UpdateSchema updates a schema's name or description
func (s *fieldSchemaServiceImpl) UpdateSchema(ctx context.Context, listID, schemaID uuid.UUID, req *dto.UpdateFieldSchemaRequest) (*dto.FieldSchemaResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	schema, err := s.findListSchema(ctx, listID, schemaID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewValidationError("Schema name must not be empty", "")
		}
		schema.Name = name
	}
	if req.Description != nil {
		schema.Description = *req.Description
	}

	if err := s.schemaRepo.Update(ctx, schema); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update schema", err.Error())
	}

	return s.loadSchemaResponse(ctx, schemaID)
}

// DeleteSchema deletes a schema. Tags referencing it lose the reference
// but survive; the fields it grouped survive as well.
func (s *fieldSchemaServiceImpl) DeleteSchema(ctx context.Context, listID, schemaID uuid.UUID) error {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return err
	}
	if _, err := s.findListSchema(ctx, listID, schemaID); err != nil {
		return err
	}

	if err := s.schemaRepo.Delete(ctx, schemaID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete schema", err.Error())
	}
	return nil
}

// AttachField attaches an existing field to a schema with display metadata
func (s *fieldSchemaServiceImpl) AttachField(ctx context.Context, listID, schemaID uuid.UUID, req *dto.AttachFieldRequest) (*dto.FieldSchemaResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}
	if _, err := s.findListSchema(ctx, listID, schemaID); err != nil {
		return nil, err
	}

	field, err := s.fieldRepo.FindByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Field not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field", err.Error())
	}
	if field.ListID != listID {
		return nil, response.NewValidationError("Field belongs to a different list", "")
	}

	existing, err := s.schemaRepo.FindSchemaFieldLink(ctx, schemaID, req.FieldID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check schema membership", err.Error())
	}
	if existing != nil {
		return nil, response.NewConflictError("Field is already attached to this schema", "")
	}

	link := &domain.SchemaField{
		SchemaID:     schemaID,
		FieldID:      req.FieldID,
		DisplayOrder: req.DisplayOrder,
		ShowOnCard:   req.ShowOnCard,
	}
	if err := s.schemaRepo.AttachField(ctx, link); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to attach field", err.Error())
	}

	return s.loadSchemaResponse(ctx, schemaID)
}

// DetachField removes a field from a schema. The field itself and any
// stored values are untouched; detaching a field that is not attached
// succeeds without effect.
func (s *fieldSchemaServiceImpl) DetachField(ctx context.Context, listID, schemaID, fieldID uuid.UUID) error {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return err
	}
	if _, err := s.findListSchema(ctx, listID, schemaID); err != nil {
		return err
	}

	if err := s.schemaRepo.DetachField(ctx, schemaID, fieldID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to detach field", err.Error())
	}
	return nil
}

// ReorderFields rewrites the display order of a schema's fields. The
// given id set must contain exactly the schema's current fields.
func (s *fieldSchemaServiceImpl) ReorderFields(ctx context.Context, listID, schemaID uuid.UUID, req *dto.ReorderFieldsRequest) (*dto.FieldSchemaResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}
	if _, err := s.findListSchema(ctx, listID, schemaID); err != nil {
		return nil, err
	}

	links, err := s.schemaRepo.FindSchemaFields(ctx, schemaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch schema fields", err.Error())
	}

	current := make(map[uuid.UUID]struct{}, len(links))
	for _, link := range links {
		current[link.FieldID] = struct{}{}
	}

	if len(req.FieldIDs) != len(links) {
		return nil, response.NewValidationError(
			fmt.Sprintf("Reorder must list all %d fields of the schema, got %d", len(links), len(req.FieldIDs)), "")
	}
	seen := make(map[uuid.UUID]struct{}, len(req.FieldIDs))
	for _, id := range req.FieldIDs {
		if _, ok := current[id]; !ok {
			return nil, response.NewValidationError(fmt.Sprintf("Field %s is not attached to this schema", id), "")
		}
		if _, dup := seen[id]; dup {
			return nil, response.NewValidationError(fmt.Sprintf("Field %s appears more than once", id), "")
		}
		seen[id] = struct{}{}
	}

	if err := s.schemaRepo.ReorderFields(ctx, schemaID, req.FieldIDs); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reorder fields", err.Error())
	}

	return s.loadSchemaResponse(ctx, schemaID)
}

// findListSchema fetches a schema and verifies it belongs to the list
func (s *fieldSchemaServiceImpl) findListSchema(ctx context.Context, listID, schemaID uuid.UUID) (*domain.FieldSchema, error) {
	schema, err := s.schemaRepo.FindByID(ctx, schemaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Schema not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch schema", err.Error())
	}
	if schema.ListID != listID {
		return nil, response.NewNotFoundError("Schema not found", "")
	}
	return schema, nil
}

// loadSchemaResponse re-reads a schema with its fields preloaded in
// display order and converts it
func (s *fieldSchemaServiceImpl) loadSchemaResponse(ctx context.Context, schemaID uuid.UUID) (*dto.FieldSchemaResponse, error) {
	schema, err := s.schemaRepo.FindByID(ctx, schemaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch schema", err.Error())
	}
	return toFieldSchemaResponse(schema), nil
}

// toFieldSchemaResponse converts domain.FieldSchema to dto.FieldSchemaResponse
func toFieldSchemaResponse(schema *domain.FieldSchema) *dto.FieldSchemaResponse {
	fields := make([]dto.SchemaFieldResponse, len(schema.Fields))
	for i, link := range schema.Fields {
		fields[i] = dto.SchemaFieldResponse{
			FieldID:      link.FieldID,
			FieldName:    link.Field.Name,
			FieldType:    string(link.Field.FieldType),
			Config:       json.RawMessage(link.Field.Config),
			DisplayOrder: link.DisplayOrder,
			ShowOnCard:   link.ShowOnCard,
		}
	}
	return &dto.FieldSchemaResponse{
		SchemaID:    schema.ID,
		ListID:      schema.ListID,
		Name:        schema.Name,
		Description: schema.Description,
		Fields:      fields,
		CreatedAt:   schema.CreatedAt,
		UpdatedAt:   schema.UpdatedAt,
	}
}
