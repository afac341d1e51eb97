package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"video-list-api/internal/client"
	"video-list-api/internal/domain"
	"video-list-api/internal/repository"
)

// refreshBatchSize caps the number of videos refreshed per run, which
// also bounds YouTube API quota spent by the job
const refreshBatchSize = 50

// MaintenanceJob purges soft-deleted videos past the retention window
// and refreshes stale YouTube metadata in the background
type MaintenanceJob struct {
	videoRepo        repository.VideoRepository
	youtube          client.YouTubeClient
	logger           *zap.Logger
	purgeRetention   time.Duration
	metadataStaleAge time.Duration
}

// NewMaintenanceJob creates a new MaintenanceJob instance
func NewMaintenanceJob(
	videoRepo repository.VideoRepository,
	youtube client.YouTubeClient,
	logger *zap.Logger,
	purgeRetention time.Duration,
	metadataStaleAge time.Duration,
) *MaintenanceJob {
	return &MaintenanceJob{
		videoRepo:        videoRepo,
		youtube:          youtube,
		logger:           logger,
		purgeRetention:   purgeRetention,
		metadataStaleAge: metadataStaleAge,
	}
}

// Run executes one maintenance pass
func (j *MaintenanceJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting maintenance job")
	j.purgeDeleted(ctx)
	j.refreshStaleMetadata(ctx)
	j.logger.Info("Maintenance job completed")
}

// purgeDeleted permanently removes soft-deleted videos older than the
// retention window
func (j *MaintenanceJob) purgeDeleted(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.purgeRetention)

	purged, err := j.videoRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to purge soft-deleted videos", zap.Error(err))
		return
	}
	if purged > 0 {
		j.logger.Info("Purged soft-deleted videos",
			zap.Int64("count", purged),
			zap.Time("cutoff", cutoff),
		)
	}
}

// refreshStaleMetadata re-fetches metadata for videos that have not been
// synced within the stale age. Skipped entirely when no API key is
// configured.
func (j *MaintenanceJob) refreshStaleMetadata(ctx context.Context) {
	if j.youtube == nil || !j.youtube.Enabled() {
		return
	}

	olderThan := time.Now().UTC().Add(-j.metadataStaleAge)
	videos, err := j.videoRepo.FindStaleMetadata(ctx, olderThan, refreshBatchSize)
	if err != nil {
		j.logger.Error("Failed to find videos with stale metadata", zap.Error(err))
		return
	}
	if len(videos) == 0 {
		return
	}

	ids := make([]string, len(videos))
	byYoutubeID := make(map[string]*domain.Video, len(videos))
	for i, video := range videos {
		ids[i] = video.YoutubeID
		byYoutubeID[video.YoutubeID] = video
	}

	metas, err := j.youtube.GetVideos(ctx, ids)
	if err != nil {
		j.logger.Error("Failed to fetch metadata batch", zap.Error(err))
		return
	}

	now := time.Now().UTC()
	refreshed := 0
	for youtubeID, meta := range metas {
		video, ok := byYoutubeID[youtubeID]
		if !ok {
			continue
		}
		video.Title = meta.Title
		video.ChannelID = meta.ChannelID
		video.ChannelTitle = meta.ChannelTitle
		video.ThumbnailURL = meta.ThumbnailURL
		video.DurationSeconds = meta.DurationSeconds
		video.PublishedAt = meta.PublishedAt
		syncAt := now
		video.MetadataSyncAt = &syncAt

		if err := j.videoRepo.Update(ctx, video); err != nil {
			j.logger.Error("Failed to store refreshed metadata",
				zap.String("video_id", video.ID.String()),
				zap.Error(err),
			)
			continue
		}
		refreshed++
	}

	// Videos the API no longer returns (removed or private) still get a
	// sync timestamp so the job does not retry them every run
	for youtubeID, video := range byYoutubeID {
		if _, ok := metas[youtubeID]; ok {
			continue
		}
		syncAt := now
		video.MetadataSyncAt = &syncAt
		if err := j.videoRepo.Update(ctx, video); err != nil {
			j.logger.Error("Failed to mark unavailable video",
				zap.String("video_id", video.ID.String()),
				zap.Error(err),
			)
		}
	}

	j.logger.Info("Refreshed stale video metadata",
		zap.Int("candidates", len(videos)),
		zap.Int("refreshed", refreshed),
	)
}
