package scheduler

import (
	"testing"
	"time"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/models"
)

// 2026-03-10 is a Tuesday.
const today = "2026-03-10"

func baseTask(id string) models.Task {
	return models.Task{
		ID:        id,
		Title:     "task " + id,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func dailyTask(id, dueDate string) models.Task {
	t := baseTask(id)
	t.Recurring = true
	t.RecurringType = constants.RecurringDaily
	t.DueDate = dueDate
	return t
}

func TestOccursOn_NonRecurring(t *testing.T) {
	task := baseTask("t1")
	task.DueDate = "2026-03-12"

	if !OccursOn(task, "2026-03-12", today) {
		t.Error("task not due on its due date")
	}
	if OccursOn(task, "2026-03-13", today) {
		t.Error("task due on the wrong date")
	}

	// A flexible task with no due date never surfaces in date views.
	task.DueDate = ""
	task.Flexible = true
	if OccursOn(task, today, today) {
		t.Error("undated task surfaced in a date view")
	}
}

func TestOccursOn_DailyEveryDayForward(t *testing.T) {
	task := dailyTask("r1", "2026-03-01")

	for _, date := range []string{"2026-03-10", "2026-03-11", "2026-04-01"} {
		if !OccursOn(task, date, today) {
			t.Errorf("daily task missing on %s", date)
		}
	}
}

func TestOccursOn_NeverBeforeToday(t *testing.T) {
	task := dailyTask("r1", "2026-03-01")
	if OccursOn(task, "2026-03-09", today) {
		t.Error("recurring task resurrected a past occurrence")
	}
}

func TestOccursOn_Weekly(t *testing.T) {
	task := baseTask("r1")
	task.Recurring = true
	task.RecurringType = constants.RecurringWeekly
	task.RecurringDay = 2 // Tuesday
	task.DueDate = "2026-03-01"

	if !OccursOn(task, "2026-03-10", today) {
		t.Error("weekly task missing on its weekday")
	}
	if !OccursOn(task, "2026-03-17", today) {
		t.Error("weekly task missing the following week")
	}
	if OccursOn(task, "2026-03-11", today) {
		t.Error("weekly task matched the wrong weekday")
	}
}

func TestOccursOn_WeeklyAnchorFallback(t *testing.T) {
	// No RecurringDay stored: the weekday comes from the start date,
	// 2026-03-02 being a Monday.
	task := baseTask("r1")
	task.Recurring = true
	task.RecurringType = constants.RecurringWeekly
	task.DueDate = "2026-03-02"

	if !OccursOn(task, "2026-03-16", today) {
		t.Error("weekly task missing on its anchor weekday")
	}
	if OccursOn(task, "2026-03-17", today) {
		t.Error("weekly task matched off its anchor weekday")
	}
}

func TestOccursOn_Monthly(t *testing.T) {
	task := baseTask("r1")
	task.Recurring = true
	task.RecurringType = constants.RecurringMonthly
	task.RecurringDay = 15
	task.DueDate = "2026-01-15"

	if !OccursOn(task, "2026-03-15", today) {
		t.Error("monthly task missing on its day")
	}
	if OccursOn(task, "2026-03-16", today) {
		t.Error("monthly task matched the wrong day")
	}
}

func TestOccursOn_MonthlyDay31SkipsShortMonths(t *testing.T) {
	task := baseTask("r1")
	task.Recurring = true
	task.RecurringType = constants.RecurringMonthly
	task.RecurringDay = 31
	task.DueDate = "2026-01-31"

	if !OccursOn(task, "2026-03-31", today) {
		t.Error("day-31 task missing in March")
	}
	// April has 30 days: no occurrence at all, no rollover to the 30th.
	if OccursOn(task, "2026-04-30", today) {
		t.Error("day-31 task rolled over to April 30")
	}
}

func TestOccursOn_EndDateRetires(t *testing.T) {
	task := dailyTask("r1", "2026-03-01")
	task.RecurringEndDate = "2026-03-12"

	if !OccursOn(task, "2026-03-12", today) {
		t.Error("task missing on its final day")
	}
	if OccursOn(task, "2026-03-13", today) {
		t.Error("task still occurring past its end date")
	}
}

func TestOccursOn_FutureStart(t *testing.T) {
	task := dailyTask("r1", "2026-03-20")

	if OccursOn(task, "2026-03-15", today) {
		t.Error("task occurring before its start date")
	}
	if !OccursOn(task, "2026-03-20", today) {
		t.Error("task missing on its start date")
	}
}

func TestOccurrencesOn_MixAndOrder(t *testing.T) {
	done := baseTask("t1")
	done.DueDate = today
	done.Completed = true

	pending := baseTask("t2")
	pending.DueDate = today
	pending.CreatedAt = done.CreatedAt.Add(time.Hour)

	daily := dailyTask("r1", "2026-03-01")
	daily.CreatedAt = done.CreatedAt.Add(2 * time.Hour)

	elsewhere := baseTask("t3")
	elsewhere.DueDate = "2026-03-20"

	got := OccurrencesOn([]models.Task{done, pending, daily, elsewhere}, today, today, nil)
	if len(got) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(got))
	}
	// Incomplete first, newest created first; the completed task sinks.
	wantOrder := []string{"r1", "t2", "t1"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestOccurrencesOn_RecurringCompletionSinks(t *testing.T) {
	first := dailyTask("r1", "2026-03-01")
	second := dailyTask("r2", "2026-03-01")
	second.CreatedAt = first.CreatedAt.Add(time.Hour)

	log := []models.RecurringCompletion{
		{TaskID: "r2", Date: today, Completed: true},
	}
	got := OccurrencesOn([]models.Task{first, second}, today, today, log)
	if got[0].ID != "r1" || got[1].ID != "r2" {
		t.Errorf("order = [%s %s], want [r1 r2]", got[0].ID, got[1].ID)
	}
}

func TestSimpleViews(t *testing.T) {
	dueToday := baseTask("a")
	dueToday.DueDate = today
	dueTomorrow := baseTask("b")
	dueTomorrow.DueDate = "2026-03-11"
	overdue := baseTask("c")
	overdue.DueDate = "2026-03-01"
	undated := baseTask("d")
	doneOverdue := baseTask("e")
	doneOverdue.DueDate = "2026-03-01"
	doneOverdue.Completed = true
	recurring := dailyTask("f", "2026-03-01")

	tasks := []models.Task{dueToday, dueTomorrow, overdue, undated, doneOverdue, recurring}

	checkIDs := func(t *testing.T, got []models.Task, want ...string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("got %d tasks, want %d", len(got), len(want))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
			}
		}
	}

	checkIDs(t, TodayTasks(tasks, today), "a")
	checkIDs(t, TomorrowTasks(tasks, today), "b")
	checkIDs(t, OverdueTasks(tasks, today), "c")
	checkIDs(t, UnscheduledTasks(tasks, today), "d")
}
