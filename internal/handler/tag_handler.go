package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-list-api/internal/dto"
	"video-list-api/internal/response"
	"video-list-api/internal/service"
)

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// CreateTag godoc
// @Summary      Create a tag
// @Description  Creates a tag in a list, optionally bound to a field schema
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.CreateTagRequest true "Tag to create"
// @Success      201 {object} response.SuccessResponse{data=dto.TagResponse} "Tag created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Duplicate tag name"
// @Router       /{listId}/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, tag)
}

// GetTags godoc
// @Summary      List tags
// @Description  Returns every tag of a list
// @Tags         tags
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.TagResponse} "Tags"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /{listId}/tags [get]
func (h *TagHandler) GetTags(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	tags, err := h.tagService.GetTagsByList(c.Request.Context(), listID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tags)
}

// UpdateTag godoc
// @Summary      Update a tag
// @Description  Updates a tag's name, color or schema reference
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        tagId path string true "Tag ID (UUID)"
// @Param        request body dto.UpdateTagRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.TagResponse} "Tag updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Tag not found"
// @Router       /{listId}/tags/{tagId} [patch]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	tagID, ok := parseUUIDParam(c, "tagId")
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), listID, tagID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tag)
}

// DeleteTag godoc
// @Summary      Delete a tag
// @Description  Deletes a tag and removes it from every video; stored field values survive
// @Tags         tags
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        tagId path string true "Tag ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Tag deleted"
// @Failure      404 {object} response.ErrorResponse "Tag not found"
// @Router       /{listId}/tags/{tagId} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	tagID, ok := parseUUIDParam(c, "tagId")
	if !ok {
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), listID, tagID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// AssignTag godoc
// @Summary      Assign a tag to a video
// @Description  Adds one tag to a video; assigning an already assigned tag is a no-op
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        videoId path string true "Video ID (UUID)"
// @Param        request body dto.AssignTagRequest true "Tag to assign"
// @Success      200 {object} response.SuccessResponse "Tag assigned"
// @Failure      404 {object} response.ErrorResponse "Video or tag not found"
// @Router       /{listId}/videos/{videoId}/tags [post]
func (h *TagHandler) AssignTag(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	videoID, ok := parseUUIDParam(c, "videoId")
	if !ok {
		return
	}

	var req dto.AssignTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.tagService.AssignTag(c.Request.Context(), listID, videoID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"assigned": true})
}

// RemoveTag godoc
// @Summary      Remove a tag from a video
// @Description  Removes one tag from a video; removing an unassigned tag is a no-op
// @Tags         tags
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        videoId path string true "Video ID (UUID)"
// @Param        tagId path string true "Tag ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Tag removed"
// @Failure      404 {object} response.ErrorResponse "Video or tag not found"
// @Router       /{listId}/videos/{videoId}/tags/{tagId} [delete]
func (h *TagHandler) RemoveTag(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	videoID, ok := parseUUIDParam(c, "videoId")
	if !ok {
		return
	}
	tagID, ok := parseUUIDParam(c, "tagId")
	if !ok {
		return
	}

	if err := h.tagService.RemoveTag(c.Request.Context(), listID, videoID, tagID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"removed": true})
}

// ReplaceVideoTags godoc
// @Summary      Replace a video's tags
// @Description  Replaces the full tag set of a video atomically and returns the new set in assignment order
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        videoId path string true "Video ID (UUID)"
// @Param        request body dto.ReplaceVideoTagsRequest true "New tag set"
// @Success      200 {object} response.SuccessResponse{data=[]dto.TagResponse} "Tags replaced"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Video or tag not found"
// @Router       /{listId}/videos/{videoId}/tags [put]
func (h *TagHandler) ReplaceVideoTags(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	videoID, ok := parseUUIDParam(c, "videoId")
	if !ok {
		return
	}

	var req dto.ReplaceVideoTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	tags, err := h.tagService.ReplaceVideoTags(c.Request.Context(), listID, videoID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tags)
}
