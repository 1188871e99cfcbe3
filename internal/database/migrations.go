package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds the indexes used by listing, stats and the activity feed
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task indexes for stats and newest-first listing
		{"tasks", "idx_tasks_stage", "stage"},
		{"tasks", "idx_tasks_created_at", "created_at, id"},

		// Activity indexes for the feed and per-task history
		{"activity_log", "idx_activity_log_created_at", "created_at, id"},
		{"activity_log", "idx_activity_log_task_id", "task_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
