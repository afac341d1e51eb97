package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-list-api/internal/dto"
	"video-list-api/internal/response"
	"video-list-api/internal/service"
)

type FieldSchemaHandler struct {
	schemaService service.FieldSchemaService
}

func NewFieldSchemaHandler(schemaService service.FieldSchemaService) *FieldSchemaHandler {
	return &FieldSchemaHandler{
		schemaService: schemaService,
	}
}

// CreateSchema godoc
// @Summary      Create a field schema
// @Description  Creates a named bundle of custom fields, optionally creating new fields inline
// @Tags         schemas
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.CreateFieldSchemaRequest true "Schema to create"
// @Success      201 {object} response.SuccessResponse{data=dto.FieldSchemaResponse} "Schema created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Duplicate field name"
// @Router       /{listId}/schemas [post]
func (h *FieldSchemaHandler) CreateSchema(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	var req dto.CreateFieldSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	schema, err := h.schemaService.CreateSchema(c.Request.Context(), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, schema)
}

// GetSchemas godoc
// @Summary      List field schemas
// @Description  Returns every schema of a list with fields in display order
// @Tags         schemas
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldSchemaResponse} "Schemas"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /{listId}/schemas [get]
func (h *FieldSchemaHandler) GetSchemas(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	schemas, err := h.schemaService.GetSchemasByList(c.Request.Context(), listID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, schemas)
}

// GetSchema godoc
// @Summary      Get a field schema
// @Description  Returns one schema with its fields in display order
// @Tags         schemas
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        schemaId path string true "Schema ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldSchemaResponse} "Schema"
// @Failure      404 {object} response.ErrorResponse "Schema not found"
// @Router       /{listId}/schemas/{schemaId} [get]
func (h *FieldSchemaHandler) GetSchema(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	schemaID, ok := parseUUIDParam(c, "schemaId")
	if !ok {
		return
	}

	schema, err := h.schemaService.GetSchema(c.Request.Context(), listID, schemaID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, schema)
}

// UpdateSchema godoc
// @Summary      Update a field schema
// @Description  Updates a schema's name or description
// @Tags         schemas
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        schemaId path string true "Schema ID (UUID)"
// @Param        request body dto.UpdateFieldSchemaRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldSchemaResponse} "Schema updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Schema not found"
// @Router       /{listId}/schemas/{schemaId} [patch]
func (h *FieldSchemaHandler) UpdateSchema(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	schemaID, ok := parseUUIDParam(c, "schemaId")
	if !ok {
		return
	}

	var req dto.UpdateFieldSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	schema, err := h.schemaService.UpdateSchema(c.Request.Context(), listID, schemaID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, schema)
}

// DeleteSchema godoc
// @Summary      Delete a field schema
// @Description  Deletes a schema; referencing tags lose the reference, the bundled fields survive
// @Tags         schemas
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        schemaId path string true "Schema ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Schema deleted"
// @Failure      404 {object} response.ErrorResponse "Schema not found"
// @Router       /{listId}/schemas/{schemaId} [delete]
func (h *FieldSchemaHandler) DeleteSchema(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	schemaID, ok := parseUUIDParam(c, "schemaId")
	if !ok {
		return
	}

	if err := h.schemaService.DeleteSchema(c.Request.Context(), listID, schemaID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// AttachField godoc
// @Summary      Attach a field to a schema
// @Description  Adds an existing custom field to a schema with display metadata
// @Tags         schemas
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        schemaId path string true "Schema ID (UUID)"
// @Param        request body dto.AttachFieldRequest true "Field to attach"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldSchemaResponse} "Field attached"
// @Failure      404 {object} response.ErrorResponse "Schema or field not found"
// @Failure      409 {object} response.ErrorResponse "Field already attached"
// @Router       /{listId}/schemas/{schemaId}/fields [post]
func (h *FieldSchemaHandler) AttachField(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	schemaID, ok := parseUUIDParam(c, "schemaId")
	if !ok {
		return
	}

	var req dto.AttachFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	schema, err := h.schemaService.AttachField(c.Request.Context(), listID, schemaID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, schema)
}

// DetachField godoc
// @Summary      Detach a field from a schema
// @Description  Removes a field from a schema; the field and stored values survive
// @Tags         schemas
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        schemaId path string true "Schema ID (UUID)"
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Field detached"
// @Failure      404 {object} response.ErrorResponse "Schema not found"
// @Router       /{listId}/schemas/{schemaId}/fields/{fieldId} [delete]
func (h *FieldSchemaHandler) DetachField(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	schemaID, ok := parseUUIDParam(c, "schemaId")
	if !ok {
		return
	}
	fieldID, ok := parseUUIDParam(c, "fieldId")
	if !ok {
		return
	}

	if err := h.schemaService.DetachField(c.Request.Context(), listID, schemaID, fieldID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"detached": true})
}

// ReorderFields godoc
// @Summary      Reorder a schema's fields
// @Description  Rewrites display order; the id set must match the schema's fields exactly
// @Tags         schemas
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        schemaId path string true "Schema ID (UUID)"
// @Param        request body dto.ReorderFieldsRequest true "Field ids in the new order"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldSchemaResponse} "Fields reordered"
// @Failure      400 {object} response.ErrorResponse "Id set does not match"
// @Failure      404 {object} response.ErrorResponse "Schema not found"
// @Router       /{listId}/schemas/{schemaId}/fields/order [put]
func (h *FieldSchemaHandler) ReorderFields(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	schemaID, ok := parseUUIDParam(c, "schemaId")
	if !ok {
		return
	}

	var req dto.ReorderFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	schema, err := h.schemaService.ReorderFields(c.Request.Context(), listID, schemaID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, schema)
}
