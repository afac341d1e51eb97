package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"video-list-api/internal/dto"
	"video-list-api/internal/repository"
	"video-list-api/internal/response"
	"video-list-api/internal/service"
)

type VideoHandler struct {
	videoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// CreateVideo godoc
// @Summary      Bookmark a video
// @Description  Adds a YouTube video to a list by id or URL; metadata is fetched when an API key is configured
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.CreateVideoRequest true "Video to bookmark"
// @Success      201 {object} response.SuccessResponse{data=dto.VideoResponse} "Video bookmarked"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Video already in the list"
// @Router       /{listId}/videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	var req dto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	video, err := h.videoService.CreateVideo(c.Request.Context(), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, video)
}

// GetVideos godoc
// @Summary      List videos
// @Description  Returns a list's videos, optionally filtered by tag names. tagsAll requires every named tag; tags (alias tagsAny) requires at least one.
// @Tags         videos
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        tagsAll query string false "Comma-separated tag names, all required"
// @Param        tags query string false "Comma-separated tag names, any qualifies"
// @Param        tagsAny query string false "Alias for tags"
// @Success      200 {object} response.SuccessResponse{data=[]dto.VideoResponse} "Videos"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Router       /{listId}/videos [get]
func (h *VideoHandler) GetVideos(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	tagsAll := splitTagNames(c.Query("tagsAll"))
	// tags is the documented OR parameter; tagsAny is kept as an alias
	tagsAny := splitTagNames(c.Query("tags"))
	if len(tagsAny) == 0 {
		tagsAny = splitTagNames(c.Query("tagsAny"))
	}
	if len(tagsAll) > 0 && len(tagsAny) > 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation,
			"tagsAll cannot be combined with tags or tagsAny")
		return
	}

	var filter *repository.TagFilter
	if len(tagsAll) > 0 {
		filter = &repository.TagFilter{Names: tagsAll, MatchAll: true}
	} else if len(tagsAny) > 0 {
		filter = &repository.TagFilter{Names: tagsAny}
	}

	videos, err := h.videoService.GetVideosByList(c.Request.Context(), listID, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, videos)
}

// GetVideo godoc
// @Summary      Get a video
// @Description  Returns one video with its tags and the fields resolved through them, grouped by schema
// @Tags         videos
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        videoId path string true "Video ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.VideoDetailResponse} "Video with resolved fields"
// @Failure      404 {object} response.ErrorResponse "Video not found"
// @Router       /{listId}/videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	videoID, ok := parseUUIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoService.GetVideo(c.Request.Context(), listID, videoID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, video)
}

// UpdateVideo godoc
// @Summary      Update a video
// @Description  Updates a video's title or note
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        videoId path string true "Video ID (UUID)"
// @Param        request body dto.UpdateVideoRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.VideoResponse} "Video updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Video not found"
// @Router       /{listId}/videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	videoID, ok := parseUUIDParam(c, "videoId")
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	video, err := h.videoService.UpdateVideo(c.Request.Context(), listID, videoID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Description  Removes a video with its tag assignments and field values
// @Tags         videos
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        videoId path string true "Video ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Video deleted"
// @Failure      404 {object} response.ErrorResponse "Video not found"
// @Router       /{listId}/videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	videoID, ok := parseUUIDParam(c, "videoId")
	if !ok {
		return
	}

	if err := h.videoService.DeleteVideo(c.Request.Context(), listID, videoID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// RefreshMetadata godoc
// @Summary      Refresh video metadata
// @Description  Re-fetches title, channel, duration and thumbnail from the YouTube Data API
// @Tags         videos
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        videoId path string true "Video ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.VideoResponse} "Metadata refreshed"
// @Failure      400 {object} response.ErrorResponse "No API key configured"
// @Failure      404 {object} response.ErrorResponse "Video not found"
// @Router       /{listId}/videos/{videoId}/metadata [post]
func (h *VideoHandler) RefreshMetadata(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}
	videoID, ok := parseUUIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoService.RefreshMetadata(c.Request.Context(), listID, videoID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, video)
}

// ImportVideos godoc
// @Summary      Import videos from CSV
// @Description  Bulk-imports bookmarks from an uploaded CSV file. Each row holds a video id or URL, optionally followed by title and note.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        listId path string true "List ID (UUID)"
// @Param        file formData file true "CSV file"
// @Success      200 {object} response.SuccessResponse{data=dto.ImportVideosResponse} "Import summary"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Router       /{listId}/videos/import [post]
func (h *VideoHandler) ImportVideos(c *gin.Context) {
	listID, ok := parseUUIDParam(c, "listId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "file form field is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.videoService.ImportVideosCSV(c.Request.Context(), listID, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// splitTagNames parses a comma-separated tag name list, dropping blanks
func splitTagNames(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}
