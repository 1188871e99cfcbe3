package repository

import (
	"github.com/yukikurage/taskboard-api/internal/models"
)

// Store groups the repositories that must commit together.
type Store interface {
	// Tasks returns the task repository bound to this store
	Tasks() TaskRepository

	// Activity returns the activity log repository bound to this store
	Activity() ActivityRepository

	// Transaction runs fn against a store bound to a single transaction.
	// A non-nil error from fn rolls back every write made through it.
	Transaction(fn func(tx Store) error) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task and fills in its ID
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindByIDForUpdate finds a task by ID and locks the row until the
	// surrounding transaction ends
	FindByIDForUpdate(id uint64) (*models.Task, error)

	// Update writes every column of an existing task
	Update(task *models.Task) error

	// List returns tasks newest first, ties broken by ID descending
	List() ([]models.Task, error)

	// Snapshot returns every task read by a single statement
	Snapshot() ([]models.Task, error)
}

// ActivityRepository defines the interface for the append-only activity log
type ActivityRepository interface {
	// Append inserts an entry and fills in its ID
	Append(entry *models.ActivityEntry) error

	// ListRecent returns at most limit entries, newest first
	ListRecent(limit int) ([]models.ActivityEntry, error)

	// ListByTask returns every entry referencing a task, newest first
	ListByTask(taskID uint64) ([]models.ActivityEntry, error)
}
