package dto

import (
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
)

// ActivityDTO represents an activity entry in API responses
type ActivityDTO struct {
	ID        uint64        `json:"id"`
	Action    models.Action `json:"action"`
	TaskID    *uint64       `json:"task_id"`
	Details   string        `json:"details"`
	CreatedAt time.Time     `json:"created_at"`
}

// ExternalActivityRequest is the body of POST /api/activity
type ExternalActivityRequest struct {
	Action  string `json:"action"`
	Details string `json:"details"`
	Source  string `json:"source"`
}

// ToActivityDTO converts an ActivityEntry model to ActivityDTO
func ToActivityDTO(entry models.ActivityEntry) ActivityDTO {
	return ActivityDTO{
		ID:        entry.ID,
		Action:    entry.Action,
		TaskID:    entry.TaskID,
		Details:   entry.Details,
		CreatedAt: entry.CreatedAt,
	}
}

// ToActivityDTOs converts a slice of entries, never returning nil
func ToActivityDTOs(entries []models.ActivityEntry) []ActivityDTO {
	items := make([]ActivityDTO, len(entries))
	for i, entry := range entries {
		items[i] = ToActivityDTO(entry)
	}
	return items
}
