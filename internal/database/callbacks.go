package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// startTimer stamps the query start time on the statement instance
func startTimer(db *gorm.DB) {
	db.InstanceSet("query_start_time", time.Now())
}

// recordAfter builds the after-hook that reports elapsed time for one operation
func recordAfter(operation string, recorder MetricsRecorder) func(*gorm.DB) {
	return func(db *gorm.DB) {
		startTime, ok := db.InstanceGet("query_start_time")
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
	}
}

// RegisterMetricsCallbacks registers GORM callbacks that time every
// query/create/update/delete and report it to the recorder
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	db.Callback().Query().Before("gorm:query").Register("metrics:select_before", startTimer)
	db.Callback().Query().After("gorm:query").Register("metrics:select_after", recordAfter("select", recorder))

	db.Callback().Create().Before("gorm:create").Register("metrics:insert_before", startTimer)
	db.Callback().Create().After("gorm:create").Register("metrics:insert_after", recordAfter("insert", recorder))

	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", startTimer)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", recordAfter("update", recorder))

	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", startTimer)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", recordAfter("delete", recorder))
}

// StartDBStatsCollector starts periodic connection pool stats collection
// Closing the returned channel stops the collector
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
