package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
	"video-list-api/internal/dto"
	"video-list-api/internal/repository"
	"video-list-api/internal/response"
)

// FieldValueService defines the interface for field value business logic
type FieldValueService interface {
	SetVideoFieldValues(ctx context.Context, listID, videoID uuid.UUID, req *dto.SetVideoFieldValuesRequest) ([]dto.FieldGroupResponse, error)
	BatchSetFieldValues(ctx context.Context, listID uuid.UUID, req *dto.BatchSetFieldValuesRequest) (*dto.BatchSetFieldValuesResponse, error)
	ResolveFieldUnion(ctx context.Context, videoID uuid.UUID) ([]dto.FieldGroupResponse, error)
}

// fieldValueServiceImpl is the implementation of FieldValueService
type fieldValueServiceImpl struct {
	valueRepo repository.FieldValueRepository
	fieldRepo repository.CustomFieldRepository
	videoRepo repository.VideoRepository
	listRepo  repository.VideoListRepository
}

// NewFieldValueService creates a new instance of FieldValueService
func NewFieldValueService(
	valueRepo repository.FieldValueRepository,
	fieldRepo repository.CustomFieldRepository,
	videoRepo repository.VideoRepository,
	listRepo repository.VideoListRepository,
) FieldValueService {
	return &fieldValueServiceImpl{
		valueRepo: valueRepo,
		fieldRepo: fieldRepo,
		videoRepo: videoRepo,
		listRepo:  listRepo,
	}
}

// SetVideoFieldValues validates and stores field values for one video.
// The whole batch is validated up front and written in one transaction:
// either every value lands or none does. Values may target any field of
// the list, whether or not a tag currently exposes it.
func (s *fieldValueServiceImpl) SetVideoFieldValues(ctx context.Context, listID, videoID uuid.UUID, req *dto.SetVideoFieldValuesRequest) ([]dto.FieldGroupResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Video not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch video", err.Error())
	}
	if video.ListID != listID {
		return nil, response.NewNotFoundError("Video not found", "")
	}

	rows, fieldErrs, err := s.validateInputs(ctx, listID, videoID, req.FieldValues)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, response.NewFieldValidationError("One or more values are invalid", fieldErrs)
	}

	if err := s.valueRepo.UpsertBatch(ctx, rows); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store values", err.Error())
	}

	return s.ResolveFieldUnion(ctx, videoID)
}

// BatchSetFieldValues validates and stores values across many videos of
// one list atomically
func (s *fieldValueServiceImpl) BatchSetFieldValues(ctx context.Context, listID uuid.UUID, req *dto.BatchSetFieldValuesRequest) (*dto.BatchSetFieldValuesResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	// Verify each referenced video once
	checked := make(map[uuid.UUID]bool, len(req.Updates))
	for _, u := range req.Updates {
		if checked[u.VideoID] {
			continue
		}
		video, err := s.videoRepo.FindByID(ctx, u.VideoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError(fmt.Sprintf("Video %s not found", u.VideoID), "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch video", err.Error())
		}
		if video.ListID != listID {
			return nil, response.NewNotFoundError(fmt.Sprintf("Video %s not found", u.VideoID), "")
		}
		checked[u.VideoID] = true
	}

	inputs := make([]dto.FieldValueInput, len(req.Updates))
	for i, u := range req.Updates {
		inputs[i] = dto.FieldValueInput{FieldID: u.FieldID, Value: u.Value}
	}

	// Validate every pair first so the write is all-or-nothing
	rows := make([]*domain.VideoFieldValue, 0, len(req.Updates))
	var fieldErrs []response.FieldError
	fields, err := s.loadFields(ctx, listID, inputs)
	if err != nil {
		return nil, err
	}
	seen := make(map[[2]uuid.UUID]int, len(req.Updates))
	for i, u := range req.Updates {
		key := [2]uuid.UUID{u.VideoID, u.FieldID}
		if prev, dup := seen[key]; dup {
			fieldErrs = append(fieldErrs, response.FieldError{
				Field:  u.FieldID.String(),
				Reason: fmt.Sprintf("duplicate update for video %s (first at index %d)", u.VideoID, prev),
			})
			continue
		}
		seen[key] = i

		row, ferr := buildValueRow(fields, u.VideoID, u.FieldID, u.Value)
		if ferr != nil {
			fieldErrs = append(fieldErrs, *ferr)
			continue
		}
		rows = append(rows, row)
	}
	if len(fieldErrs) > 0 {
		return nil, response.NewFieldValidationError("One or more values are invalid", fieldErrs)
	}

	if err := s.valueRepo.UpsertBatch(ctx, rows); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store values", err.Error())
	}

	return &dto.BatchSetFieldValuesResponse{UpdatedCount: len(rows)}, nil
}

// ResolveFieldUnion computes the set of fields a video exposes through
// its tags' schemas, merged with the video's stored values.
//
// One joined query returns a row per (tag, schema field) pair, ordered
// by tag assignment time then display order. A field attached to several
// schemas appears once: the occurrence reached through the earliest
// assigned tag wins, which also decides which schema group claims it.
func (s *fieldValueServiceImpl) ResolveFieldUnion(ctx context.Context, videoID uuid.UUID) ([]dto.FieldGroupResponse, error) {
	rows, err := s.valueRepo.FindUnionRows(ctx, videoID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve fields", err.Error())
	}

	// Tags assigned at the same instant have no defined database order,
	// so equal timestamps fall back to a locale-aware schema name
	// comparison. Sorting the rows up front makes the comparison decide
	// both the group order and which schema claims a shared field.
	coll := collate.New(language.Und)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].AssignedAt.Equal(rows[j].AssignedAt) {
			return rows[i].AssignedAt.Before(rows[j].AssignedAt)
		}
		if c := coll.CompareString(rows[i].SchemaName, rows[j].SchemaName); c != 0 {
			return c < 0
		}
		return rows[i].DisplayOrder < rows[j].DisplayOrder
	})

	type group struct {
		schemaID   uuid.UUID
		schemaName string
		fields     []dto.FieldWithValueResponse
	}

	seenFields := make(map[uuid.UUID]struct{}, len(rows))
	groupIndex := make(map[uuid.UUID]*group)
	var groups []*group

	for _, row := range rows {
		if _, dup := seenFields[row.FieldID]; dup {
			continue
		}
		seenFields[row.FieldID] = struct{}{}

		g, ok := groupIndex[row.SchemaID]
		if !ok {
			g = &group{
				schemaID:   row.SchemaID,
				schemaName: row.SchemaName,
			}
			groupIndex[row.SchemaID] = g
			groups = append(groups, g)
		}
		g.fields = append(g.fields, dto.FieldWithValueResponse{
			FieldID:      row.FieldID,
			FieldName:    row.FieldName,
			FieldType:    string(row.FieldType),
			Config:       json.RawMessage(row.Config),
			Value:        row.Value(),
			DisplayOrder: row.DisplayOrder,
			ShowOnCard:   row.ShowOnCard,
		})
	}

	result := make([]dto.FieldGroupResponse, len(groups))
	for i, g := range groups {
		sort.SliceStable(g.fields, func(a, b int) bool {
			return g.fields[a].DisplayOrder < g.fields[b].DisplayOrder
		})
		result[i] = dto.FieldGroupResponse{
			SchemaID:   g.schemaID,
			SchemaName: g.schemaName,
			Fields:     g.fields,
		}
	}
	return result, nil
}

// validateInputs checks every (field, value) pair for one video and
// builds the rows to write. Validation failures come back as a field
// error list instead of an error so callers can report them all at once.
func (s *fieldValueServiceImpl) validateInputs(ctx context.Context, listID, videoID uuid.UUID, inputs []dto.FieldValueInput) ([]*domain.VideoFieldValue, []response.FieldError, error) {
	fields, err := s.loadFields(ctx, listID, inputs)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]*domain.VideoFieldValue, 0, len(inputs))
	var fieldErrs []response.FieldError
	seen := make(map[uuid.UUID]struct{}, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.FieldID]; dup {
			fieldErrs = append(fieldErrs, response.FieldError{
				Field:  in.FieldID.String(),
				Reason: "field appears more than once",
			})
			continue
		}
		seen[in.FieldID] = struct{}{}

		row, ferr := buildValueRow(fields, videoID, in.FieldID, in.Value)
		if ferr != nil {
			fieldErrs = append(fieldErrs, *ferr)
			continue
		}
		rows = append(rows, row)
	}
	return rows, fieldErrs, nil
}

// loadFields fetches the referenced fields in one query and keeps only
// those belonging to the list
func (s *fieldValueServiceImpl) loadFields(ctx context.Context, listID uuid.UUID, inputs []dto.FieldValueInput) (map[uuid.UUID]*domain.CustomField, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	dedup := make(map[uuid.UUID]struct{}, len(inputs))
	for _, in := range inputs {
		if _, ok := dedup[in.FieldID]; ok {
			continue
		}
		dedup[in.FieldID] = struct{}{}
		ids = append(ids, in.FieldID)
	}

	fields, err := s.fieldRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch fields", err.Error())
	}

	byID := make(map[uuid.UUID]*domain.CustomField, len(fields))
	for _, f := range fields {
		if f.ListID == listID {
			byID[f.ID] = f
		}
	}
	return byID, nil
}

// buildValueRow validates one raw value against its field's config and
// routes it into the typed column
func buildValueRow(fields map[uuid.UUID]*domain.CustomField, videoID, fieldID uuid.UUID, raw interface{}) (*domain.VideoFieldValue, *response.FieldError) {
	field, ok := fields[fieldID]
	if !ok {
		return nil, &response.FieldError{Field: fieldID.String(), Reason: "field not found in this list"}
	}

	config, err := domain.ParseFieldConfig(field.FieldType, field.Config)
	if err != nil {
		return nil, &response.FieldError{Field: fieldID.String(), Reason: err.Error()}
	}
	if err := config.ValidateValue(raw); err != nil {
		return nil, &response.FieldError{Field: fieldID.String(), Reason: err.Error()}
	}

	row := &domain.VideoFieldValue{
		VideoID: videoID,
		FieldID: fieldID,
	}
	if err := domain.RouteValue(field.FieldType, raw, row); err != nil {
		return nil, &response.FieldError{Field: fieldID.String(), Reason: err.Error()}
	}
	return row, nil
}
