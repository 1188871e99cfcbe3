package repository

import (
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByIDForUpdate finds a task by ID with a row lock.
// SQLite has no row locks; its dialect drops the clause and relies on the
// database-wide write lock instead.
func (r *GormTaskRepository) FindByIDForUpdate(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// List retrieves all tasks, most recently created first
func (r *GormTaskRepository) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.NewestFirst).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Snapshot retrieves all tasks in one statement
func (r *GormTaskRepository) Snapshot() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
