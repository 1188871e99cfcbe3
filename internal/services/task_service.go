package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/taskboard-api/internal/constants"
	"github.com/yukikurage/taskboard-api/internal/lifecycle"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/stats"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrDetailsRequired  = errors.New("details are required")
)

// TaskService handles task business logic
type TaskService struct {
	store    repository.Store
	recorder *ActivityRecorder
	now      func() time.Time
}

// NewTaskService creates a new TaskService. A nil clock reads UTC wall time.
func NewTaskService(store repository.Store, now func() time.Time) *TaskService {
	if now == nil {
		now = defaultClock
	}
	return &TaskService{
		store:    store,
		recorder: NewActivityRecorder(now),
		now:      now,
	}
}

// CreateTask validates the draft, then inserts the task and its "created"
// entry in one transaction
func (s *TaskService) CreateTask(draft lifecycle.Draft) (*models.Task, error) {
	task, activity, err := lifecycle.NewTask(draft, s.now())
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(func(tx repository.Store) error {
		if err := tx.Tasks().Create(&task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		taskID := task.ID
		activity.TaskID = &taskID
		_, err := s.recorder.Record(tx, activity)
		return err
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return &task, nil
}

// UpdateTask applies a patch to an existing task. The row is locked for the
// duration of the transaction so racing updates see each other's result.
func (s *TaskService) UpdateTask(taskID uint64, patch lifecycle.Patch) (*models.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated models.Task

	err := s.store.Transaction(func(tx repository.Store) error {
		current, err := tx.Tasks().FindByIDForUpdate(taskID)
		if err != nil {
			return err
		}

		next, activity, err := lifecycle.Apply(*current, patch, s.now())
		if err != nil {
			return err
		}

		if err := tx.Tasks().Update(&next); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		if activity != nil {
			if _, err := s.recorder.Record(tx, *activity); err != nil {
				return err
			}
		}

		updated = next
		return nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return &updated, nil
}

// GetTask returns a single task
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.store.Tasks().FindByID(taskID)
	if err != nil {
		return nil, classifyError(err)
	}
	return task, nil
}

// ListTasks returns every task, newest first
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.store.Tasks().List()
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to list tasks: %w", err))
	}
	return tasks, nil
}

// RecentActivity returns the newest activity entries. Out of range limits
// fall back to the default or are capped.
func (s *TaskService) RecentActivity(limit int) ([]models.ActivityEntry, error) {
	if limit < constants.MinActivityLimit {
		limit = constants.DefaultActivityLimit
	}
	if limit > constants.MaxActivityLimit {
		limit = constants.MaxActivityLimit
	}

	entries, err := s.store.Activity().ListRecent(limit)
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to list activity: %w", err))
	}
	return entries, nil
}

// TaskActivity returns the full history of one task
func (s *TaskService) TaskActivity(taskID uint64) ([]models.ActivityEntry, error) {
	if _, err := s.store.Tasks().FindByID(taskID); err != nil {
		return nil, classifyError(err)
	}

	entries, err := s.store.Activity().ListByTask(taskID)
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to list task activity: %w", err))
	}
	return entries, nil
}

// Stats computes dashboard counters from one snapshot read
func (s *TaskService) Stats() (stats.Stats, error) {
	tasks, err := s.store.Tasks().Snapshot()
	if err != nil {
		return stats.Stats{}, classifyError(fmt.Errorf("failed to read tasks: %w", err))
	}
	return stats.Compute(tasks, s.now()), nil
}

// LogExternalActivity appends an entry posted by another system. It references
// no task and never touches the tasks table.
func (s *TaskService) LogExternalActivity(source, details string) (*models.ActivityEntry, error) {
	if strings.TrimSpace(details) == "" {
		return nil, ErrDetailsRequired
	}
	if strings.TrimSpace(source) == "" {
		source = constants.ExternalActivitySource
	}

	draft := models.ActivityDraft{
		Action:  models.ActionExternal,
		Details: fmt.Sprintf("[%s] %s", source, details),
	}

	var entry *models.ActivityEntry
	err := s.store.Transaction(func(tx repository.Store) error {
		var err error
		entry, err = s.recorder.Record(tx, draft)
		return err
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return entry, nil
}

// classifyError maps store failures onto the service error taxonomy. Validation
// and not-found errors pass through untouched.
func classifyError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, lifecycle.ErrEmptyTitle),
		errors.Is(err, lifecycle.ErrInvalidStage),
		errors.Is(err, lifecycle.ErrInvalidPriority):
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
