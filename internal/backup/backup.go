// Package backup reads and writes the portable JSON archive format: a
// versioned document holding all six collections verbatim. Import is all or
// nothing; a validated archive fully replaces local state.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/models"
)

// Data holds every collection included in an archive.
type Data struct {
	Tasks                []models.Task                `json:"tasks"`
	Projects             []models.Project             `json:"projects"`
	TaskClasses          []models.TaskClass           `json:"taskClasses"`
	Skills               []models.Skill               `json:"skills"`
	Character            models.Character             `json:"character"`
	RecurringCompletions []models.RecurringCompletion `json:"recurringCompletions"`
}

// Archive is the on-disk document shape.
type Archive struct {
	Version    string `json:"version"`
	ExportDate string `json:"exportDate"`
	Data       Data   `json:"data"`
}

// Export serializes the collections into an archive document.
func Export(data Data, now time.Time) ([]byte, error) {
	arc := Archive{
		Version:    constants.BackupVersion,
		ExportDate: now.UTC().Format(time.RFC3339),
		Data:       data,
	}
	buf, err := json.MarshalIndent(arc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return buf, nil
}

// Parse validates and decodes an archive. Version, export date, tasks, and
// character are required; any other missing collection defaults to empty.
// Anything invalid rejects the whole archive, nothing is partially applied.
func Parse(buf []byte) (Data, error) {
	var raw struct {
		Version    string `json:"version"`
		ExportDate string `json:"exportDate"`
		Data       *struct {
			Tasks                json.RawMessage `json:"tasks"`
			Projects             json.RawMessage `json:"projects"`
			TaskClasses          json.RawMessage `json:"taskClasses"`
			Skills               json.RawMessage `json:"skills"`
			Character            json.RawMessage `json:"character"`
			RecurringCompletions json.RawMessage `json:"recurringCompletions"`
		} `json:"data"`
	}

	if err := json.Unmarshal(buf, &raw); err != nil {
		return Data{}, fmt.Errorf("invalid backup file: %w", err)
	}
	if raw.Version == "" {
		return Data{}, fmt.Errorf("invalid backup file: missing version")
	}
	if raw.ExportDate == "" {
		return Data{}, fmt.Errorf("invalid backup file: missing exportDate")
	}
	if raw.Data == nil {
		return Data{}, fmt.Errorf("invalid backup file: missing data")
	}
	if raw.Data.Tasks == nil {
		return Data{}, fmt.Errorf("invalid backup file: missing data.tasks")
	}
	if raw.Data.Character == nil {
		return Data{}, fmt.Errorf("invalid backup file: missing data.character")
	}

	data := Data{
		Tasks:                []models.Task{},
		Projects:             []models.Project{},
		TaskClasses:          []models.TaskClass{},
		Skills:               []models.Skill{},
		RecurringCompletions: []models.RecurringCompletion{},
	}
	if err := json.Unmarshal(raw.Data.Tasks, &data.Tasks); err != nil {
		return Data{}, fmt.Errorf("invalid backup file: bad tasks: %w", err)
	}
	if err := json.Unmarshal(raw.Data.Character, &data.Character); err != nil {
		return Data{}, fmt.Errorf("invalid backup file: bad character: %w", err)
	}
	if raw.Data.Projects != nil {
		if err := json.Unmarshal(raw.Data.Projects, &data.Projects); err != nil {
			return Data{}, fmt.Errorf("invalid backup file: bad projects: %w", err)
		}
	}
	if raw.Data.TaskClasses != nil {
		if err := json.Unmarshal(raw.Data.TaskClasses, &data.TaskClasses); err != nil {
			return Data{}, fmt.Errorf("invalid backup file: bad taskClasses: %w", err)
		}
	}
	if raw.Data.Skills != nil {
		if err := json.Unmarshal(raw.Data.Skills, &data.Skills); err != nil {
			return Data{}, fmt.Errorf("invalid backup file: bad skills: %w", err)
		}
	}
	if raw.Data.RecurringCompletions != nil {
		if err := json.Unmarshal(raw.Data.RecurringCompletions, &data.RecurringCompletions); err != nil {
			return Data{}, fmt.Errorf("invalid backup file: bad recurringCompletions: %w", err)
		}
	}

	return data, nil
}
