package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-list-api/internal/dto"
	"video-list-api/internal/response"
	"video-list-api/internal/service"
)

type FieldValueHandler struct {
	valueService service.FieldValueService
}

func NewFieldValueHandler(valueService service.FieldValueService) *FieldValueHandler {
	return &FieldValueHandler{
		valueService: valueService,
	}
}

// SetVideoFieldValues godoc
// @Summary      Set field values for a video
// @Description  Validates every value against its field's configuration and stores the batch atomically. Any invalid value rejects the whole batch with a per-field error list.
// @Tags         field-values
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        videoId path string true "Video ID (UUID)"
// @Param        request body dto.SetVideoFieldValuesRequest true "Values to store"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldGroupResponse} "Resolved fields after the write"
// @Failure      400 {object} response.ErrorResponse "One or more values are invalid"
// @Failure      404 {object} response.ErrorResponse "Video not found"
// @Router       /{listId}/videos/{videoId}/field-values [put]
func (h *FieldValueHandler) SetVideoFieldValues(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	videoID, ok := parseUUIDParam(c, "videoId")
	if !ok {
		return
	}

	var req dto.SetVideoFieldValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	groups, err := h.valueService.SetVideoFieldValues(c.Request.Context(), listID, videoID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, groups)
}

// BatchSetFieldValues godoc
// @Summary      Set field values across videos
// @Description  Stores (video, field, value) triples across many videos of one list in a single atomic batch
// @Tags         field-values
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.BatchSetFieldValuesRequest true "Updates to apply"
// @Success      200 {object} response.SuccessResponse{data=dto.BatchSetFieldValuesResponse} "Batch summary"
// @Failure      400 {object} response.ErrorResponse "One or more values are invalid"
// @Failure      404 {object} response.ErrorResponse "A referenced video was not found"
// @Router       /{listId}/field-values/batch [post]
func (h *FieldValueHandler) BatchSetFieldValues(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	var req dto.BatchSetFieldValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.valueService.BatchSetFieldValues(c.Request.Context(), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
