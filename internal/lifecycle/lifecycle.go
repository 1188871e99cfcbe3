// Package lifecycle holds the task state machine. Every function here is pure:
// it neither reads the clock nor touches storage, so callers decide the
// mutation timestamp and the transaction that persists the result.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
)

var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidStage    = errors.New("invalid stage")
	ErrInvalidPriority = errors.New("invalid priority")
)

// Draft carries the fields a caller supplies when creating a task.
// Empty strings fall back to defaults.
type Draft struct {
	Title       string
	Description string
	Stage       string
	Project     string
	Priority    string
}

// Patch carries the fields a caller wishes to change. Nil fields keep the
// current value.
type Patch struct {
	Title       *string
	Description *string
	Stage       *string
	Project     *string
	Priority    *string
}

// Validate checks the tokens a patch carries without needing the current
// task, so callers can reject bad input before opening a transaction.
func (p Patch) Validate() error {
	if p.Title != nil && isBlank(*p.Title) {
		return ErrEmptyTitle
	}
	if p.Stage != nil {
		if _, err := models.ParseStage(*p.Stage); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStage, err)
		}
	}
	if p.Priority != nil {
		if _, err := models.ParsePriority(*p.Priority); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPriority, err)
		}
	}
	return nil
}

// NewTask validates a draft, applies defaults and returns the task to insert
// together with its "created" activity draft. The task id is unknown until
// the row is stored, so the returned draft has no TaskID.
func NewTask(draft Draft, now time.Time) (models.Task, models.ActivityDraft, error) {
	if isBlank(draft.Title) {
		return models.Task{}, models.ActivityDraft{}, ErrEmptyTitle
	}

	stage := models.StageBacklog
	if draft.Stage != "" {
		s, err := models.ParseStage(draft.Stage)
		if err != nil {
			return models.Task{}, models.ActivityDraft{}, fmt.Errorf("%w: %v", ErrInvalidStage, err)
		}
		stage = s
	}

	priority := models.PriorityNormal
	if draft.Priority != "" {
		p, err := models.ParsePriority(draft.Priority)
		if err != nil {
			return models.Task{}, models.ActivityDraft{}, fmt.Errorf("%w: %v", ErrInvalidPriority, err)
		}
		priority = p
	}

	project := draft.Project
	if project == "" {
		project = models.DefaultProject
	}

	task := models.Task{
		Title:       draft.Title,
		Description: draft.Description,
		Stage:       stage,
		Project:     project,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if stage == models.StageDone {
		completedAt := now
		task.CompletedAt = &completedAt
	}

	activity := models.ActivityDraft{
		Action:  models.ActionCreated,
		Details: "Created: " + draft.Title,
	}

	return task, activity, nil
}

// Apply merges patch into current and decides which activity, if any, the
// change produces. A nil activity means the stage did not move.
func Apply(current models.Task, patch Patch, now time.Time) (models.Task, *models.ActivityDraft, error) {
	if err := patch.Validate(); err != nil {
		return models.Task{}, nil, err
	}

	next := current

	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Project != nil {
		next.Project = *patch.Project
	}
	if patch.Priority != nil {
		next.Priority = models.Priority(*patch.Priority)
	}
	if patch.Stage != nil {
		next.Stage = models.Stage(*patch.Stage)
	}

	if isBlank(next.Title) {
		return models.Task{}, nil, ErrEmptyTitle
	}

	next.UpdatedAt = now

	if next.Stage == current.Stage {
		return next, nil, nil
	}

	activity := transition(current, next.Stage)
	if next.Stage == models.StageDone {
		completedAt := now
		next.CompletedAt = &completedAt
	} else {
		next.CompletedAt = nil
	}

	return next, &activity, nil
}

// transition builds the activity for a stage change. Details always quote the
// title as it was before the change.
func transition(current models.Task, to models.Stage) models.ActivityDraft {
	taskID := current.ID
	draft := models.ActivityDraft{
		Action: models.ActionMoved,
		TaskID: &taskID,
	}

	switch {
	case to == models.StageDone:
		draft.Action = models.ActionCompleted
		draft.Details = "Completed: " + current.Title
	case current.Stage == models.StageBacklog && to == models.StageInProgress:
		draft.Details = "Started: " + current.Title
	default:
		draft.Details = fmt.Sprintf("Moved: %s → %s", current.Title, to)
	}

	return draft
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
