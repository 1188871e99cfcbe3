package models

import "time"

type Action string

const (
	ActionCreated   Action = "created"
	ActionCompleted Action = "completed"
	ActionMoved     Action = "moved"
	// ActionExternal marks entries posted by other systems; they reference no task.
	ActionExternal Action = "external"
)

// ActivityEntry is an append-only audit record. Rows are never updated or deleted.
type ActivityEntry struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Action    Action    `gorm:"type:varchar(20);not null" json:"action"`
	TaskID    *uint64   `json:"task_id"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
}

func (ActivityEntry) TableName() string {
	return "activity_log"
}

// ActivityDraft is an activity entry that has not been persisted yet.
type ActivityDraft struct {
	Action  Action
	TaskID  *uint64
	Details string
}
