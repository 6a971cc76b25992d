package models

import "github.com/julianstephens/taskquest/internal/constants"

// TaskClass is a user-defined label mapping tasks to exactly one stat.
// Completing a task linked to a class advances that stat's progress counter.
type TaskClass struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	StatType constants.StatType `json:"stat_type"`
	Color    string             `json:"color,omitempty"`
}

// FindClass resolves a class id against the collection. Dangling ids resolve
// to nil, which callers treat as an absent decoration, not an error.
func FindClass(classes []TaskClass, id string) *TaskClass {
	if id == "" {
		return nil
	}
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i]
		}
	}
	return nil
}
