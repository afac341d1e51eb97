package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-list-api/internal/dto"
	"video-list-api/internal/response"
	"video-list-api/internal/service"
)

type VideoListHandler struct {
	listService service.VideoListService
}

func NewVideoListHandler(listService service.VideoListService) *VideoListHandler {
	return &VideoListHandler{
		listService: listService,
	}
}

// CreateList godoc
// @Summary      Create a video list
// @Description  Creates a new video list owned by the authenticated user
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateVideoListRequest true "List to create"
// @Success      201 {object} response.SuccessResponse{data=dto.VideoListResponse} "List created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      401 {object} response.ErrorResponse "Not authenticated"
// @Router       / [post]
func (h *VideoListHandler) CreateList(c *gin.Context) {
	var req dto.CreateVideoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, list)
}

// GetMyLists godoc
// @Summary      List my video lists
// @Description  Returns every list owned by the authenticated user
// @Tags         lists
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.VideoListResponse} "Lists"
// @Failure      401 {object} response.ErrorResponse "Not authenticated"
// @Router       / [get]
func (h *VideoListHandler) GetMyLists(c *gin.Context) {
	lists, err := h.listService.GetMyLists(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, lists)
}

// GetList godoc
// @Summary      Get a video list
// @Description  Returns one list by id
// @Tags         lists
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.VideoListResponse} "List"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /{listId} [get]
func (h *VideoListHandler) GetList(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	list, err := h.listService.GetList(c.Request.Context(), listID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// UpdateList godoc
// @Summary      Update a video list
// @Description  Updates a list's name or description
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.UpdateVideoListRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.VideoListResponse} "List updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /{listId} [patch]
func (h *VideoListHandler) UpdateList(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	var req dto.UpdateVideoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	list, err := h.listService.UpdateList(c.Request.Context(), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// DeleteList godoc
// @Summary      Delete a video list
// @Description  Deletes a list together with its videos, tags, fields, schemas and values
// @Tags         lists
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Success      200 {object} response.SuccessResponse "List deleted"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /{listId} [delete]
func (h *VideoListHandler) DeleteList(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	if err := h.listService.DeleteList(c.Request.Context(), listID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
