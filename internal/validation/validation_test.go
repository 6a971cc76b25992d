package validation

import (
	"testing"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/models"
)

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name    string
		task    models.Task
		wantErr bool
	}{
		{
			name:    "minimal valid task",
			task:    models.Task{Title: "Water plants"},
			wantErr: false,
		},
		{
			name:    "missing title",
			task:    models.Task{DueDate: "2026-03-10"},
			wantErr: true,
		},
		{
			name:    "bad due date",
			task:    models.Task{Title: "x", DueDate: "03/10/2026"},
			wantErr: true,
		},
		{
			name:    "flexible and recurring conflict",
			task:    models.Task{Title: "x", Flexible: true, Recurring: true, RecurringType: constants.RecurringDaily},
			wantErr: true,
		},
		{
			name:    "daily needs no day",
			task:    models.Task{Title: "x", Recurring: true, RecurringType: constants.RecurringDaily},
			wantErr: false,
		},
		{
			name:    "invalid recurrence type",
			task:    models.Task{Title: "x", Recurring: true, RecurringType: "fortnightly"},
			wantErr: true,
		},
		{
			name:    "weekly day in range",
			task:    models.Task{Title: "x", Recurring: true, RecurringType: constants.RecurringWeekly, RecurringDay: 7},
			wantErr: false,
		},
		{
			name:    "weekly day out of range",
			task:    models.Task{Title: "x", Recurring: true, RecurringType: constants.RecurringWeekly, RecurringDay: 8},
			wantErr: true,
		},
		{
			name:    "weekly day missing",
			task:    models.Task{Title: "x", Recurring: true, RecurringType: constants.RecurringWeekly},
			wantErr: true,
		},
		{
			name:    "monthly day in range",
			task:    models.Task{Title: "x", Recurring: true, RecurringType: constants.RecurringMonthly, RecurringDay: 31},
			wantErr: false,
		},
		{
			name:    "monthly day out of range",
			task:    models.Task{Title: "x", Recurring: true, RecurringType: constants.RecurringMonthly, RecurringDay: 32},
			wantErr: true,
		},
		{
			name: "end date before start",
			task: models.Task{
				Title: "x", DueDate: "2026-03-10",
				Recurring: true, RecurringType: constants.RecurringDaily,
				RecurringEndDate: "2026-03-01",
			},
			wantErr: true,
		},
		{
			name: "end date equals start",
			task: models.Task{
				Title: "x", DueDate: "2026-03-10",
				Recurring: true, RecurringType: constants.RecurringDaily,
				RecurringEndDate: "2026-03-10",
			},
			wantErr: false,
		},
		{
			name: "malformed end date",
			task: models.Task{
				Title: "x", Recurring: true, RecurringType: constants.RecurringDaily,
				RecurringEndDate: "soon",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTask() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeRecurringDay(t *testing.T) {
	// 2026-03-10 is a Tuesday.
	weekly := models.Task{
		Title: "x", DueDate: "2026-03-10",
		Recurring: true, RecurringType: constants.RecurringWeekly,
	}
	if got := NormalizeRecurringDay(weekly); got.RecurringDay != 2 {
		t.Errorf("weekly anchor = %d, want 2 (Tuesday)", got.RecurringDay)
	}

	monthly := models.Task{
		Title: "x", DueDate: "2026-03-10",
		Recurring: true, RecurringType: constants.RecurringMonthly,
	}
	if got := NormalizeRecurringDay(monthly); got.RecurringDay != 10 {
		t.Errorf("monthly anchor = %d, want 10", got.RecurringDay)
	}

	// An explicit day wins over the start date.
	weekly.RecurringDay = 5
	if got := NormalizeRecurringDay(weekly); got.RecurringDay != 5 {
		t.Errorf("explicit anchor overwritten: %d", got.RecurringDay)
	}

	// Non-recurring tasks pass through untouched.
	plain := models.Task{Title: "x", DueDate: "2026-03-10"}
	if got := NormalizeRecurringDay(plain); got.RecurringDay != 0 {
		t.Errorf("plain task gained an anchor: %d", got.RecurringDay)
	}
}
