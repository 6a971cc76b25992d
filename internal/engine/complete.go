package engine

import (
	"time"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/models"
)

// IsCompletedOn reports whether the task counts as completed on the given
// date. Non-recurring tasks carry their own flag and ignore the date;
// recurring tasks are looked up in the per-occurrence completion log, where a
// missing entry means "not completed".
func IsCompletedOn(task models.Task, date string, log []models.RecurringCompletion) bool {
	if !task.Recurring {
		return task.Completed
	}
	for _, e := range log {
		if e.TaskID == task.ID && e.Date == date {
			return e.Completed
		}
	}
	return false
}

// Toggle flips the task's completion state for the given date and returns the
// updated task, the updated completion log, and whether this toggle was a
// transition into completed. Only that transition should award XP.
//
// For a recurring task the first toggle on a date always creates a completed
// entry; later toggles flip it in place. Entries are never removed.
//
// For a non-recurring task the date applies only on completion: a flexible
// task with no due date gets the date (or today) backfilled as its due date.
// Toggling back to incomplete clears the completion timestamp but keeps any
// backfilled due date.
func Toggle(task models.Task, date string, now time.Time, log []models.RecurringCompletion) (models.Task, []models.RecurringCompletion, bool) {
	if date == "" {
		date = now.Format(constants.DateFormat)
	}

	if task.Recurring {
		out := make([]models.RecurringCompletion, len(log))
		copy(out, log)
		for i := range out {
			if out[i].TaskID == task.ID && out[i].Date == date {
				out[i].Completed = !out[i].Completed
				return task, out, out[i].Completed
			}
		}
		out = append(out, models.RecurringCompletion{
			TaskID:    task.ID,
			Date:      date,
			Completed: true,
		})
		return task, out, true
	}

	if task.Completed {
		task.Completed = false
		task.CompletedAt = nil
		return task, log, false
	}

	task.Completed = true
	ts := now.Format(time.RFC3339)
	task.CompletedAt = &ts
	if task.Flexible && task.DueDate == "" {
		task.DueDate = date
	}
	return task, log, true
}
