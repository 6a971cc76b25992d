// Package validation checks task fields before they reach the store and
// normalizes the recurrence anchor at creation time.
package validation

import (
	"fmt"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/models"
	"github.com/julianstephens/taskquest/internal/utils"
)

// ValidateTask checks a task's fields for internal consistency.
func ValidateTask(task models.Task) error {
	if task.Title == "" {
		return fmt.Errorf("title is required")
	}
	if task.DueDate != "" {
		if _, err := utils.ParseDate(task.DueDate); err != nil {
			return err
		}
	}
	if task.Flexible && task.Recurring {
		return fmt.Errorf("a task cannot be both flexible and recurring")
	}

	if task.Recurring {
		if !task.RecurringType.IsValid() {
			return fmt.Errorf("invalid recurrence type: %q", task.RecurringType)
		}
		switch task.RecurringType {
		case constants.RecurringWeekly:
			if task.RecurringDay < 1 || task.RecurringDay > 7 {
				return fmt.Errorf("recurring day must be 1-7 (Monday-Sunday) for weekly recurrence")
			}
		case constants.RecurringMonthly:
			if task.RecurringDay < 1 || task.RecurringDay > 31 {
				return fmt.Errorf("recurring day must be 1-31 for monthly recurrence")
			}
		}
		if task.RecurringEndDate != "" {
			if _, err := utils.ParseDate(task.RecurringEndDate); err != nil {
				return err
			}
			if task.RecurringEndDate < task.EffectiveStartDate() {
				return fmt.Errorf("recurrence end date is before the series start")
			}
		}
	}

	return nil
}

// NormalizeRecurringDay fills the recurrence anchor from the effective start
// date when the user did not give one. The stored day is the single source of
// truth for both weekly and monthly matching, so it must be set at creation.
func NormalizeRecurringDay(task models.Task) models.Task {
	if !task.Recurring || task.RecurringDay != 0 {
		return task
	}
	start, err := utils.ParseDate(task.EffectiveStartDate())
	if err != nil {
		return task
	}
	switch task.RecurringType {
	case constants.RecurringWeekly:
		task.RecurringDay = (int(start.Weekday())+6)%7 + 1
	case constants.RecurringMonthly:
		task.RecurringDay = start.Day()
	}
	return task
}
