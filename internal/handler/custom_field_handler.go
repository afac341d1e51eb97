package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-list-api/internal/dto"
	"video-list-api/internal/response"
	"video-list-api/internal/service"
)

type CustomFieldHandler struct {
	fieldService service.CustomFieldService
}

func NewCustomFieldHandler(fieldService service.CustomFieldService) *CustomFieldHandler {
	return &CustomFieldHandler{
		fieldService: fieldService,
	}
}

// CreateField godoc
// @Summary      Create a custom field
// @Description  Creates a typed custom field (select, rating, text or boolean) with a type specific configuration
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.CreateCustomFieldRequest true "Field to create"
// @Success      201 {object} response.SuccessResponse{data=dto.CustomFieldResponse} "Field created"
// @Failure      400 {object} response.ErrorResponse "Invalid type or configuration"
// @Failure      409 {object} response.ErrorResponse "Duplicate field name"
// @Router       /{listId}/fields [post]
func (h *CustomFieldHandler) CreateField(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	var req dto.CreateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	field, err := h.fieldService.CreateField(c.Request.Context(), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, field)
}

// GetFields godoc
// @Summary      List custom fields
// @Description  Returns every custom field of a list
// @Tags         fields
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CustomFieldResponse} "Fields"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /{listId}/fields [get]
func (h *CustomFieldHandler) GetFields(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	fields, err := h.fieldService.GetFieldsByList(c.Request.Context(), listID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, fields)
}

// GetField godoc
// @Summary      Get a custom field
// @Description  Returns one custom field with its configuration
// @Tags         fields
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CustomFieldResponse} "Field"
// @Failure      404 {object} response.ErrorResponse "Field not found"
// @Router       /{listId}/fields/{fieldId} [get]
func (h *CustomFieldHandler) GetField(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	fieldID, ok := parseUUIDParam(c, "fieldId")
	if !ok {
		return
	}

	field, err := h.fieldService.GetField(c.Request.Context(), listID, fieldID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, field)
}

// UpdateField godoc
// @Summary      Update a custom field
// @Description  Updates a field's name or configuration; the type is immutable
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        fieldId path string true "Field ID (UUID)"
// @Param        request body dto.UpdateCustomFieldRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.CustomFieldResponse} "Field updated"
// @Failure      400 {object} response.ErrorResponse "Invalid configuration"
// @Failure      404 {object} response.ErrorResponse "Field not found"
// @Router       /{listId}/fields/{fieldId} [patch]
func (h *CustomFieldHandler) UpdateField(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	fieldID, ok := parseUUIDParam(c, "fieldId")
	if !ok {
		return
	}

	var req dto.UpdateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	field, err := h.fieldService.UpdateField(c.Request.Context(), listID, fieldID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, field)
}

// DeleteField godoc
// @Summary      Delete a custom field
// @Description  Deletes a field together with its stored values and schema memberships
// @Tags         fields
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Field deleted"
// @Failure      404 {object} response.ErrorResponse "Field not found"
// @Router       /{listId}/fields/{fieldId} [delete]
func (h *CustomFieldHandler) DeleteField(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	fieldID, ok := parseUUIDParam(c, "fieldId")
	if !ok {
		return
	}

	if err := h.fieldService.DeleteField(c.Request.Context(), listID, fieldID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
