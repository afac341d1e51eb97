package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"video-list-api/internal/client"
	"video-list-api/internal/domain"
	"video-list-api/internal/dto"
	"video-list-api/internal/metrics"
	"video-list-api/internal/repository"
	"video-list-api/internal/response"
)

// importMaxRows caps one CSV import request
const importMaxRows = 500

// VideoService defines the interface for video business logic
type VideoService interface {
	CreateVideo(ctx context.Context, listID uuid.UUID, req *dto.CreateVideoRequest) (*dto.VideoResponse, error)
	GetVideo(ctx context.Context, listID, videoID uuid.UUID) (*dto.VideoDetailResponse, error)
	GetVideosByList(ctx context.Context, listID uuid.UUID, filter *repository.TagFilter) ([]*dto.VideoResponse, error)
	UpdateVideo(ctx context.Context, listID, videoID uuid.UUID, req *dto.UpdateVideoRequest) (*dto.VideoResponse, error)
	DeleteVideo(ctx context.Context, listID, videoID uuid.UUID) error
	RefreshMetadata(ctx context.Context, listID, videoID uuid.UUID) (*dto.VideoResponse, error)
	ImportVideosCSV(ctx context.Context, listID uuid.UUID, r io.Reader) (*dto.ImportVideosResponse, error)
}

// videoServiceImpl is the implementation of VideoService
type videoServiceImpl struct {
	videoRepo    repository.VideoRepository
	listRepo     repository.VideoListRepository
	valueService FieldValueService
	youtube      client.YouTubeClient
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewVideoService creates a new instance of VideoService
func NewVideoService(
	videoRepo repository.VideoRepository,
	listRepo repository.VideoListRepository,
	valueService FieldValueService,
	youtube client.YouTubeClient,
	m *metrics.Metrics,
	logger *zap.Logger,
) VideoService {
	return &videoServiceImpl{
		videoRepo:    videoRepo,
		listRepo:     listRepo,
		valueService: valueService,
		youtube:      youtube,
		metrics:      m,
		logger:       logger,
	}
}

// CreateVideo bookmarks a YouTube video in a list. The input may be a
// bare video id or a full URL. Metadata comes from the YouTube Data API
// when the client is configured; a metadata failure degrades to a bare
// bookmark rather than failing the request.
func (s *videoServiceImpl) CreateVideo(ctx context.Context, listID uuid.UUID, req *dto.CreateVideoRequest) (*dto.VideoResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	youtubeID, err := client.ExtractYoutubeID(req.YoutubeID)
	if err != nil {
		return nil, response.NewValidationError("Invalid YouTube video id or URL", err.Error())
	}

	existing, err := s.videoRepo.FindByListAndYoutubeID(ctx, listID, youtubeID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicates", err.Error())
	}
	if existing != nil {
		return nil, response.NewConflictError(fmt.Sprintf("Video '%s' is already in this list", youtubeID), "")
	}

	video := &domain.Video{
		ListID:    listID,
		YoutubeID: youtubeID,
		Title:     strings.TrimSpace(req.Title),
		Note:      req.Note,
	}
	s.applyMetadata(ctx, video)
	if video.Title == "" {
		video.Title = youtubeID
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create video", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementVideoCreated()
	}
	s.logger.Info("video bookmarked",
		zap.String("video_id", video.ID.String()),
		zap.String("youtube_id", youtubeID),
		zap.String("list_id", listID.String()))

	return toVideoResponse(video), nil
}

// GetVideo retrieves a video with its tags and the resolved field union
func (s *videoServiceImpl) GetVideo(ctx context.Context, listID, videoID uuid.UUID) (*dto.VideoDetailResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	video, err := s.findListVideo(ctx, listID, videoID)
	if err != nil {
		return nil, err
	}

	groups, err := s.valueService.ResolveFieldUnion(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &dto.VideoDetailResponse{
		VideoResponse: *toVideoResponse(video),
		FieldGroups:   groups,
	}, nil
}

// GetVideosByList retrieves a list's videos, optionally filtered by tag
// names. MatchAll requires every named tag (AND); otherwise any match
// qualifies (OR).
func (s *videoServiceImpl) GetVideosByList(ctx context.Context, listID uuid.UUID, filter *repository.TagFilter) ([]*dto.VideoResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	videos, err := s.videoRepo.FindByList(ctx, listID, filter)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch videos", err.Error())
	}

	responses := make([]*dto.VideoResponse, len(videos))
	for i, video := range videos {
		responses[i] = toVideoResponse(video)
	}
	return responses, nil
}

// UpdateVideo updates a video's title or note
func (s *videoServiceImpl) UpdateVideo(ctx context.Context, listID, videoID uuid.UUID, req *dto.UpdateVideoRequest) (*dto.VideoResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	video, err := s.findListVideo(ctx, listID, videoID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewValidationError("Title must not be empty", "")
		}
		video.Title = title
	}
	if req.Note != nil {
		video.Note = *req.Note
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update video", err.Error())
	}

	return toVideoResponse(video), nil
}

// DeleteVideo deletes a video with its tag assignments and field values
func (s *videoServiceImpl) DeleteVideo(ctx context.Context, listID, videoID uuid.UUID) error {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return err
	}
	if _, err := s.findListVideo(ctx, listID, videoID); err != nil {
		return err
	}

	if err := s.videoRepo.Delete(ctx, videoID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete video", err.Error())
	}
	return nil
}

// RefreshMetadata re-fetches metadata for one video from the YouTube
// Data API on demand
func (s *videoServiceImpl) RefreshMetadata(ctx context.Context, listID, videoID uuid.UUID) (*dto.VideoResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	video, err := s.findListVideo(ctx, listID, videoID)
	if err != nil {
		return nil, err
	}

	if s.youtube == nil || !s.youtube.Enabled() {
		return nil, response.NewValidationError("Metadata refresh is not available: no API key configured", "")
	}

	meta, err := s.youtube.GetVideo(ctx, video.YoutubeID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch video metadata", err.Error())
	}
	applyVideoMetadata(video, meta)

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update video", err.Error())
	}

	return toVideoResponse(video), nil
}

// ImportVideosCSV bulk-imports bookmarks from a CSV stream. Each record
// is a video id or URL, optionally followed by title and note columns.
// Bad rows and duplicates are skipped and reported; good rows are
// inserted in one batch.
func (s *videoServiceImpl) ImportVideosCSV(ctx context.Context, listID uuid.UUID, r io.Reader) (*dto.ImportVideosResponse, error) {
	if _, err := requireList(ctx, s.listRepo, listID); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &dto.ImportVideosResponse{}
	var pending []*domain.Video
	seen := make(map[string]int)

	rowNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			result.SkippedCount++
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row: rowNum, Input: "", Reason: fmt.Sprintf("malformed CSV row: %v", err),
			})
			continue
		}
		if rowNum > importMaxRows {
			return nil, response.NewValidationError(
				fmt.Sprintf("Import exceeds the maximum of %d rows", importMaxRows), "")
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		input := strings.TrimSpace(record[0])
		// A header row is tolerated in the first position
		if rowNum == 1 && strings.EqualFold(input, "youtube_id") {
			continue
		}

		youtubeID, err := client.ExtractYoutubeID(input)
		if err != nil {
			result.SkippedCount++
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row: rowNum, Input: input, Reason: "not a valid YouTube video id or URL",
			})
			continue
		}
		if firstRow, dup := seen[youtubeID]; dup {
			result.SkippedCount++
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row: rowNum, Input: input, Reason: fmt.Sprintf("duplicate of row %d", firstRow),
			})
			continue
		}
		seen[youtubeID] = rowNum

		existing, err := s.videoRepo.FindByListAndYoutubeID(ctx, listID, youtubeID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicates", err.Error())
		}
		if existing != nil {
			result.SkippedCount++
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row: rowNum, Input: input, Reason: "already in this list",
			})
			continue
		}

		video := &domain.Video{ListID: listID, YoutubeID: youtubeID}
		if len(record) > 1 {
			video.Title = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			video.Note = strings.TrimSpace(record[2])
		}
		pending = append(pending, video)
	}

	if len(pending) == 0 {
		return result, nil
	}

	s.applyMetadataBatch(ctx, pending)
	for _, video := range pending {
		if video.Title == "" {
			video.Title = video.YoutubeID
		}
	}

	if err := s.videoRepo.CreateBatch(ctx, pending); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to import videos", err.Error())
	}

	result.CreatedCount = len(pending)
	if s.metrics != nil {
		for range pending {
			s.metrics.IncrementVideoCreated()
		}
	}
	s.logger.Info("videos imported",
		zap.String("list_id", listID.String()),
		zap.Int("created", result.CreatedCount),
		zap.Int("skipped", result.SkippedCount))

	return result, nil
}

// applyMetadata fetches metadata for one video, logging and moving on
// when the API is unavailable
func (s *videoServiceImpl) applyMetadata(ctx context.Context, video *domain.Video) {
	if s.youtube == nil || !s.youtube.Enabled() {
		return
	}
	meta, err := s.youtube.GetVideo(ctx, video.YoutubeID)
	if err != nil {
		s.logger.Warn("metadata fetch failed, storing bare bookmark",
			zap.String("youtube_id", video.YoutubeID),
			zap.Error(err))
		return
	}
	applyVideoMetadata(video, meta)
}

// metadataBatchSize is the videos.list API limit per call
const metadataBatchSize = 50

// applyMetadataBatch fetches metadata for many videos in chunked calls,
// at most metadataBatchSize ids per API request
func (s *videoServiceImpl) applyMetadataBatch(ctx context.Context, videos []*domain.Video) {
	if s.youtube == nil || !s.youtube.Enabled() {
		return
	}
	metas := make(map[string]*client.VideoMetadata, len(videos))
	for start := 0; start < len(videos); start += metadataBatchSize {
		end := start + metadataBatchSize
		if end > len(videos) {
			end = len(videos)
		}
		ids := make([]string, 0, end-start)
		for _, video := range videos[start:end] {
			ids = append(ids, video.YoutubeID)
		}
		chunk, err := s.youtube.GetVideos(ctx, ids)
		if err != nil {
			s.logger.Warn("batch metadata fetch failed, storing bare bookmarks",
				zap.Int("batch_start", start),
				zap.Error(err))
			continue
		}
		for id, meta := range chunk {
			metas[id] = meta
		}
	}
	for _, video := range videos {
		if meta, ok := metas[video.YoutubeID]; ok {
			applyVideoMetadata(video, meta)
		}
	}
}

// applyVideoMetadata copies API metadata onto a video without clobbering
// a user-chosen title
func applyVideoMetadata(video *domain.Video, meta *client.VideoMetadata) {
	if video.Title == "" {
		video.Title = meta.Title
	}
	video.ChannelID = meta.ChannelID
	video.ChannelTitle = meta.ChannelTitle
	video.ThumbnailURL = meta.ThumbnailURL
	video.DurationSeconds = meta.DurationSeconds
	video.PublishedAt = meta.PublishedAt
	now := time.Now().UTC()
	video.MetadataSyncAt = &now
}

// findListVideo fetches a video and verifies it belongs to the list
func (s *videoServiceImpl) findListVideo(ctx context.Context, listID, videoID uuid.UUID) (*domain.Video, error) {
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
	return video, nil
}

// toVideoResponse converts domain.Video to dto.VideoResponse
func toVideoResponse(video *domain.Video) *dto.VideoResponse {
	tags := make([]dto.TagResponse, len(video.Tags))
	for i := range video.Tags {
		tags[i] = *toTagResponse(&video.Tags[i])
	}
	return &dto.VideoResponse{
		VideoID:         video.ID,
		ListID:          video.ListID,
		YoutubeID:       video.YoutubeID,
		Title:           video.Title,
		ChannelID:       video.ChannelID,
		ChannelTitle:    video.ChannelTitle,
		ThumbnailURL:    video.ThumbnailURL,
		DurationSeconds: video.DurationSeconds,
		PublishedAt:     video.PublishedAt,
		Note:            video.Note,
		Tags:            tags,
		CreatedAt:       video.CreatedAt,
		UpdatedAt:       video.UpdatedAt,
	}
}
