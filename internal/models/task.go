package models

import (
	"time"

	"github.com/julianstephens/taskquest/internal/constants"
)

// Task is a single unit of work. Recurring tasks act as templates: their own
// Completed/CompletedAt fields are not authoritative, per-occurrence completion
// lives in the RecurringCompletion log keyed by (TaskID, Date).
type Task struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description,omitempty"`
	DueDate          string                  `json:"due_date,omitempty"` // YYYY-MM-DD
	Flexible         bool                    `json:"flexible"`
	Recurring        bool                    `json:"recurring"`
	RecurringType    constants.RecurringType `json:"recurring_type,omitempty"`
	RecurringDay     int                     `json:"recurring_day,omitempty"`
	RecurringEndDate string                  `json:"recurring_end_date,omitempty"` // YYYY-MM-DD
	Rarity           constants.Rarity        `json:"rarity"`
	XPReward         int                     `json:"xp_reward"`
	ProjectID        string                  `json:"project_id,omitempty"`
	ClassID          string                  `json:"class_id,omitempty"`
	SkillID          string                  `json:"skill_id,omitempty"`
	Completed        bool                    `json:"completed"`
	CompletedAt      *string                 `json:"completed_at,omitempty"` // RFC3339 timestamp
	CreatedAt        time.Time               `json:"created_at"`
}

// EffectiveStartDate returns the date a recurring series is anchored to: the
// task's due date when set, otherwise its creation date.
func (t Task) EffectiveStartDate() string {
	if t.DueDate != "" {
		return t.DueDate
	}
	return t.CreatedAt.Format(constants.DateFormat)
}

// RecurringCompletion records completion of one recurring task occurrence.
// Absence of an entry for a (TaskID, Date) pair means "not completed".
type RecurringCompletion struct {
	TaskID    string `json:"task_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
}
