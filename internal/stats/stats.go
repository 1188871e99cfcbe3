// Package stats derives dashboard counters from a snapshot of tasks.
package stats

import (
	"time"

	"github.com/yukikurage/taskboard-api/internal/constants"
	"github.com/yukikurage/taskboard-api/internal/models"
)

type Stats struct {
	ThisWeek   int
	InProgress int
	Total      int
	Completion int // percent of tasks done, 0-100
}

// Compute counts tasks from a single snapshot. Tasks created exactly at the
// start of the window count toward ThisWeek.
func Compute(tasks []models.Task, now time.Time) Stats {
	cutoff := now.Add(-constants.StatsWindow)

	var s Stats
	var done int
	for _, task := range tasks {
		s.Total++
		switch task.Stage {
		case models.StageInProgress:
			s.InProgress++
		case models.StageDone:
			done++
		}
		if !task.CreatedAt.Before(cutoff) {
			s.ThisWeek++
		}
	}

	s.Completion = percent(done, s.Total)
	return s
}

// percent rounds half up: 1 of 8 is 12.5% and reports 13.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}
