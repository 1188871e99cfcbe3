package dto

import (
	"time"

	"github.com/yukikurage/taskboard-api/internal/lifecycle"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/stats"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Stage       models.Stage    `json:"stage"`
	Project     string          `json:"project"`
	Priority    models.Priority `json:"priority"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CompletedAt *time.Time      `json:"completed_at"`
}

// CreateTaskRequest is the body of POST /api/tasks
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Stage       string `json:"stage"`
	Project     string `json:"project"`
	Priority    string `json:"priority"`
}

// UpdateTaskRequest is the body of PUT/PATCH /api/tasks/:id.
// Absent fields stay nil and keep their stored value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Stage       *string `json:"stage"`
	Project     *string `json:"project"`
	Priority    *string `json:"priority"`
}

// StatsDTO represents dashboard counters
type StatsDTO struct {
	ThisWeek   int `json:"this_week"`
	InProgress int `json:"in_progress"`
	Total      int `json:"total"`
	Completion int `json:"completion"`
}

// Conversion functions

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Stage:       task.Stage,
		Project:     task.Project,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		CompletedAt: task.CompletedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

// ToStatsDTO converts computed stats to StatsDTO
func ToStatsDTO(s stats.Stats) StatsDTO {
	return StatsDTO{
		ThisWeek:   s.ThisWeek,
		InProgress: s.InProgress,
		Total:      s.Total,
		Completion: s.Completion,
	}
}

// ToDraft converts the request into a lifecycle draft
func (r CreateTaskRequest) ToDraft() lifecycle.Draft {
	return lifecycle.Draft{
		Title:       r.Title,
		Description: r.Description,
		Stage:       r.Stage,
		Project:     r.Project,
		Priority:    r.Priority,
	}
}

// ToPatch converts the request into a lifecycle patch
func (r UpdateTaskRequest) ToPatch() lifecycle.Patch {
	return lifecycle.Patch{
		Title:       r.Title,
		Description: r.Description,
		Stage:       r.Stage,
		Project:     r.Project,
		Priority:    r.Priority,
	}
}
