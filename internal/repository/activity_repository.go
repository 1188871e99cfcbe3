package repository

import (
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository.
// It exposes no update or delete path.
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Append inserts a new entry
func (r *GormActivityRepository) Append(entry *models.ActivityEntry) error {
	return r.db.Create(entry).Error
}

// ListRecent retrieves the newest entries
func (r *GormActivityRepository) ListRecent(limit int) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	err := r.db.
		Scopes(database.NewestFirst, database.Limit(limit)).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByTask retrieves the history of a single task
func (r *GormActivityRepository) ListByTask(taskID uint64) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	err := r.db.
		Where("task_id = ?", taskID).
		Scopes(database.NewestFirst).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
