package scheduler

import (
	"sort"
	"time"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/engine"
	"github.com/julianstephens/taskquest/internal/models"
	"github.com/julianstephens/taskquest/internal/utils"
)

// isoWeekday numbers weekdays 1 (Monday) through 7 (Sunday).
func isoWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

// matchesRule reports whether a recurring task's rule matches the given day.
// RecurringDay is authoritative for both weekly and monthly recurrence; when a
// task predates that field it falls back to the anchor derived from the
// effective start date. Monthly recurrence uses strict day-of-month equality:
// a task on the 31st simply never matches in shorter months.
func matchesRule(task models.Task, day time.Time, start time.Time) bool {
	switch task.RecurringType {
	case constants.RecurringDaily:
		return true
	case constants.RecurringWeekly:
		want := task.RecurringDay
		if want < 1 || want > 7 {
			want = isoWeekday(start)
		}
		return isoWeekday(day) == want
	case constants.RecurringMonthly:
		want := task.RecurringDay
		if want < 1 || want > 31 {
			want = start.Day()
		}
		return day.Day() == want
	default:
		return false
	}
}

// OccursOn reports whether the task is due on the given date. Non-recurring
// tasks are due only on their exact due date; flexible tasks with no due date
// never surface in date-based views. Recurring tasks never resurrect past
// occurrences: they only match dates from today forward, within the series'
// effective start and optional end date.
func OccursOn(task models.Task, date string, today string) bool {
	if !task.Recurring {
		return task.DueDate != "" && task.DueDate == date
	}

	// Lexicographic comparison is date order for YYYY-MM-DD strings.
	if date < today {
		return false
	}
	if task.RecurringEndDate != "" && date > task.RecurringEndDate {
		return false
	}
	start := task.EffectiveStartDate()
	if date < start {
		return false
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return false
	}
	startDay, err := utils.ParseDate(start)
	if err != nil {
		return false
	}
	return matchesRule(task, day, startDay)
}

// OccurrencesOn returns every task due on the given date, sorted with the
// general task ordering: incomplete before complete, newest created first.
func OccurrencesOn(tasks []models.Task, date string, today string, log []models.RecurringCompletion) []models.Task {
	var due []models.Task
	for _, t := range tasks {
		if OccursOn(t, date, today) {
			due = append(due, t)
		}
	}
	Sort(due, date, log)
	return due
}

// Sort orders tasks in place: incomplete before complete (relative to the
// given date for recurring tasks), ties broken by descending creation time.
// Every view applies this same ordering.
func Sort(tasks []models.Task, date string, log []models.RecurringCompletion) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di := engine.IsCompletedOn(tasks[i], date, log)
		dj := engine.IsCompletedOn(tasks[j], date, log)
		if di != dj {
			return !di
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}

// TodayTasks returns incomplete non-recurring tasks due today.
func TodayTasks(tasks []models.Task, today string) []models.Task {
	return filterSimple(tasks, today, func(t models.Task) bool {
		return t.DueDate == today
	})
}

// TomorrowTasks returns incomplete non-recurring tasks due tomorrow.
func TomorrowTasks(tasks []models.Task, today string) []models.Task {
	tomorrow, err := utils.AddDays(today, 1)
	if err != nil {
		return nil
	}
	return filterSimple(tasks, today, func(t models.Task) bool {
		return t.DueDate == tomorrow
	})
}

// OverdueTasks returns incomplete non-recurring tasks whose due date has
// passed.
func OverdueTasks(tasks []models.Task, today string) []models.Task {
	return filterSimple(tasks, today, func(t models.Task) bool {
		return t.DueDate != "" && t.DueDate < today
	})
}

// UnscheduledTasks returns incomplete non-recurring tasks with no due date.
func UnscheduledTasks(tasks []models.Task, today string) []models.Task {
	return filterSimple(tasks, today, func(t models.Task) bool {
		return t.DueDate == ""
	})
}

func filterSimple(tasks []models.Task, today string, pred func(models.Task) bool) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.Recurring || t.Completed {
			continue
		}
		if pred(t) {
			out = append(out, t)
		}
	}
	Sort(out, today, nil)
	return out
}
