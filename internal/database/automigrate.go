package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"video-list-api/internal/domain"
)

// models lists every domain model in dependency order; join and value
// tables come after the tables they reference so foreign keys resolve
func models() []interface{} {
	return []interface{}{
		&domain.VideoList{},
		&domain.Video{},
		&domain.FieldSchema{},
		&domain.CustomField{},
		&domain.SchemaField{},
		&domain.Tag{},
		&domain.VideoTag{},
		&domain.VideoFieldValue{},
	}
}

// SetupJoinTables wires the video_tags model as the join table for
// Video.Tags so the assignment timestamp column is kept
func SetupJoinTables(db *gorm.DB) error {
	return db.SetupJoinTable(&domain.Video{}, "Tags", &domain.VideoTag{})
}

// AutoMigrate runs GORM auto-migration for all domain models
// Tables, indexes and the CASCADE / SET NULL foreign keys come from
// the struct tags in the domain package
func AutoMigrate(db *gorm.DB) error {
	if err := SetupJoinTables(db); err != nil {
		return fmt.Errorf("failed to set up join tables: %w", err)
	}
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates one model at a time so a single failing
// table does not abort the whole migration silently
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	if err := SetupJoinTables(db); err != nil {
		return fmt.Errorf("failed to set up join tables: %w", err)
	}
	for _, m := range models() {
		exists := db.Migrator().HasTable(m)
		if err := db.AutoMigrate(m); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("model", fmt.Sprintf("%T", m)),
				zap.Bool("table_existed", exists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}
	logger.Info("Auto-migration completed")
	return nil
}
