package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
)

// ActivityRecorder appends audit entries. It writes through whatever store it
// is handed, so entries recorded inside a transaction share its fate.
type ActivityRecorder struct {
	now func() time.Time
}

// NewActivityRecorder creates a new ActivityRecorder
func NewActivityRecorder(now func() time.Time) *ActivityRecorder {
	if now == nil {
		now = defaultClock
	}
	return &ActivityRecorder{now: now}
}

// Record stamps and appends an entry, returning its stored form
func (r *ActivityRecorder) Record(store repository.Store, draft models.ActivityDraft) (*models.ActivityEntry, error) {
	entry := &models.ActivityEntry{
		Action:    draft.Action,
		TaskID:    draft.TaskID,
		Details:   draft.Details,
		CreatedAt: r.now(),
	}

	if err := store.Activity().Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record %s activity: %w", draft.Action, err)
	}

	return entry, nil
}

func defaultClock() time.Time {
	return time.Now().UTC()
}
