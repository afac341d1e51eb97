package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		// Collect once immediately, then on the ticker
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Count lists
	var listCount int64
	if err := c.db.WithContext(ctx).Table("video_lists").Where("deleted_at IS NULL").Count(&listCount).Error; err != nil {
		c.logger.Error("Failed to count lists", zap.Error(err))
	} else {
		c.metrics.SetListsTotal(listCount)
	}

	// Count videos
	var videoCount int64
	if err := c.db.WithContext(ctx).Table("videos").Where("deleted_at IS NULL").Count(&videoCount).Error; err != nil {
		c.logger.Error("Failed to count videos", zap.Error(err))
	} else {
		c.metrics.SetVideosTotal(videoCount)
	}
}
