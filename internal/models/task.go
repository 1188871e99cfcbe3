package models

import (
	"fmt"
	"time"
)

type Stage string

const (
	StageBacklog    Stage = "backlog"
	StageInProgress Stage = "in_progress"
	StageReview     Stage = "review"
	StageDone       Stage = "done"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultProject is the label assigned to tasks created without one.
const DefaultProject = "general"

// Stages lists every stage in workflow order.
var Stages = []Stage{StageBacklog, StageInProgress, StageReview, StageDone}

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

// Valid reports whether s is one of the four workflow stages
func (s Stage) Valid() bool {
	switch s {
	case StageBacklog, StageInProgress, StageReview, StageDone:
		return true
	}
	return false
}

// Valid reports whether p is one of the four priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParseStage converts a raw token into a Stage
func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown stage %q", raw)
	}
	return s, nil
}

// ParsePriority converts a raw token into a Priority
func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", raw)
	}
	return p, nil
}

// Task timestamps are written by the service clock, so gorm's automatic
// create/update time tracking is turned off.
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Stage       Stage      `gorm:"type:varchar(20);not null;check:chk_tasks_stage,stage IN ('backlog','in_progress','review','done')" json:"stage"`
	Project     string     `gorm:"type:varchar(255);not null" json:"project"`
	Priority    Priority   `gorm:"type:varchar(20);not null;check:chk_tasks_priority,priority IN ('low','normal','high','urgent')" json:"priority"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

